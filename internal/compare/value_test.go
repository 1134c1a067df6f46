package compare

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAnyScalars(t *testing.T) {
	assert.Equal(t, KindNull, FromAny(nil).Kind())
	assert.Equal(t, KindBool, FromAny(true).Kind())
	assert.Equal(t, KindString, FromAny("x").Kind())
	assert.Equal(t, KindNumber, FromAny(1.5).Kind())
	assert.Equal(t, KindNumber, FromAny(7).Kind())
	assert.Equal(t, KindNumber, FromAny(int64(7)).Kind())
	assert.Equal(t, KindNumber, FromAny(uint32(7)).Kind())
}

func TestFromAnyBuffers(t *testing.T) {
	assert.Equal(t, KindFloat32Buffer, FromAny([]float32{1}).Kind())
	assert.Equal(t, KindFloat64Buffer, FromAny([]float64{1}).Kind())
}

func TestFromAnyDecodedJSON(t *testing.T) {
	var decoded interface{}
	err := json.Unmarshal([]byte(`{"a":[1,"two",null],"b":{"c":true}}`), &decoded)
	require.NoError(t, err)

	v := FromAny(decoded)
	require.Equal(t, KindObject, v.Kind())

	a := v.field("a")
	require.Equal(t, KindSequence, a.Kind())
	assert.Equal(t, 3, a.seqLen())
	assert.Equal(t, KindNumber, a.seqAt(0).Kind())
	assert.Equal(t, KindString, a.seqAt(1).Kind())
	assert.Equal(t, KindNull, a.seqAt(2).Kind())

	b := v.field("b")
	require.Equal(t, KindObject, b.Kind())
	assert.Equal(t, KindBool, b.field("c").Kind())
}

func TestFromAnyPassthroughAndUnsupported(t *testing.T) {
	v := Number(1)
	assert.Equal(t, v, FromAny(v))
	assert.Equal(t, KindInvalid, FromAny(struct{}{}).Kind())
	assert.Equal(t, KindInvalid, FromAny(make(chan int)).Kind())
}

func TestFromAnyMissingObjectFieldReadsAbsent(t *testing.T) {
	v := Object(map[string]Value{"a": Number(1)})
	assert.Equal(t, KindAbsent, v.field("b").Kind())
}

func TestValueInterfaceRoundTrip(t *testing.T) {
	v := Object(map[string]Value{
		"nums":  Sequence(Number(1), Number(2)),
		"f32":   Float32Buffer([]float32{1.5}),
		"label": String("x"),
		"on":    Bool(true),
		"nix":   Null(),
	})

	assert.Equal(t, map[string]interface{}{
		"nums":  []interface{}{1.0, 2.0},
		"f32":   []interface{}{1.5},
		"label": "x",
		"on":    true,
		"nix":   nil,
	}, v.Interface())
}

func TestKindLabels(t *testing.T) {
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "boolean", KindBool.String())
	assert.Equal(t, "undefined", KindAbsent.String())
	assert.Equal(t, "array", KindSequence.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "unsupported", KindInvalid.String())
}
