package compare

// Kind is the runtime category of a Value. The comparator dispatches on it;
// branch order in Comparator.compare assumes earlier kinds were excluded.
type Kind int

const (
	KindInvalid Kind = iota
	KindNumber
	KindString
	KindBool
	KindNull
	KindAbsent
	KindSequence
	KindFloat32Buffer
	KindFloat64Buffer
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindAbsent:
		return "undefined"
	case KindSequence:
		return "array"
	case KindFloat32Buffer:
		return "float32 array"
	case KindFloat64Buffer:
		return "float64 array"
	case KindObject:
		return "object"
	default:
		return "unsupported"
	}
}

// Value is the comparison subject: a tagged union over the kinds above.
// Values are immutable once constructed.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	seq  []Value
	f32  []float32
	f64  []float64
	obj  map[string]Value
}

func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

func String(s string) Value { return Value{kind: KindString, str: s} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Null() Value { return Value{kind: KindNull} }

func Absent() Value { return Value{kind: KindAbsent} }

func Sequence(items ...Value) Value { return Value{kind: KindSequence, seq: items} }

func Float32Buffer(b []float32) Value { return Value{kind: KindFloat32Buffer, f32: b} }

func Float64Buffer(b []float64) Value { return Value{kind: KindFloat64Buffer, f64: b} }

func Object(fields map[string]Value) Value {
	return Value{kind: KindObject, obj: fields}
}

func (v Value) Kind() Kind { return v.kind }

// isSequenceLike reports whether the value is an ordinary sequence or one of
// the fixed numeric buffer kinds. All three compare element-wise.
func (v Value) isSequenceLike() bool {
	return v.kind == KindSequence || v.kind == KindFloat32Buffer || v.kind == KindFloat64Buffer
}

func (v Value) seqLen() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindFloat32Buffer:
		return len(v.f32)
	case KindFloat64Buffer:
		return len(v.f64)
	default:
		return 0
	}
}

func (v Value) seqAt(i int) Value {
	switch v.kind {
	case KindSequence:
		return v.seq[i]
	case KindFloat32Buffer:
		return Number(float64(v.f32[i]))
	case KindFloat64Buffer:
		return Number(v.f64[i])
	default:
		return Absent()
	}
}

// field returns the value of an object field; a missing key reads as Absent.
func (v Value) field(key string) Value {
	if f, ok := v.obj[key]; ok {
		return f
	}
	return Absent()
}

// Interface returns the plain Go representation of the value, suitable for
// JSON encoding and for embedding into Discrepancy.Expected/Received.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindBool:
		return v.b
	case KindSequence:
		items := make([]interface{}, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.Interface()
		}
		return items
	case KindFloat32Buffer:
		items := make([]interface{}, len(v.f32))
		for i, n := range v.f32 {
			items[i] = float64(n)
		}
		return items
	case KindFloat64Buffer:
		items := make([]interface{}, len(v.f64))
		for i, n := range v.f64 {
			items[i] = n
		}
		return items
	case KindObject:
		fields := make(map[string]interface{}, len(v.obj))
		for k, f := range v.obj {
			fields[k] = f.Interface()
		}
		return fields
	default:
		// null, absent, invalid
		return nil
	}
}

// FromAny converts a plain Go value (typically the result of JSON decoding)
// into a Value. Unrecognized types map to KindInvalid, which the comparator
// reports through its unsupported-type branch.
func FromAny(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case []float32:
		return Float32Buffer(t)
	case []float64:
		return Float64Buffer(t)
	case []interface{}:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return Sequence(items...)
	case map[string]interface{}:
		fields := make(map[string]Value, len(t))
		for k, f := range t {
			fields[k] = FromAny(f)
		}
		return Object(fields)
	default:
		return Value{kind: KindInvalid}
	}
}
