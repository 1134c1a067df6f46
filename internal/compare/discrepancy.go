package compare

import (
	"encoding/json"

	"github.com/gammazero/deque"
)

// Mismatch reasons reported through Discrepancy.Reason.
const (
	ReasonExpected    = "Expected"
	ReasonArrayLength = "the arrays length does not match"
	ReasonObjectKeys  = "the objects do not have similar keys"
	ReasonUnsupported = "the current data type is not supported or they do not match"
)

// PathEntry is one step of the root-to-leaf path to the mismatching value:
// either a sequence index or an object key.
type PathEntry struct {
	index int
	key   string
	isKey bool
}

func indexEntry(i int) PathEntry  { return PathEntry{index: i} }
func keyEntry(k string) PathEntry { return PathEntry{key: k, isKey: true} }

func (e PathEntry) IsKey() bool { return e.isKey }
func (e PathEntry) Index() int  { return e.index }
func (e PathEntry) Key() string { return e.key }

func (e PathEntry) MarshalJSON() ([]byte, error) {
	if e.isKey {
		return json.Marshal(e.key)
	}
	return json.Marshal(e.index)
}

func (e *PathEntry) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		*e = keyEntry(key)
		return nil
	}
	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return err
	}
	*e = indexEntry(index)
	return nil
}

// Discrepancy describes the single first mismatch found by a comparison.
// A nil *Discrepancy is the no-failure sentinel.
type Discrepancy struct {
	Reason   string      `json:"reason"`
	Expected interface{} `json:"expected"`
	Received interface{} `json:"received"`
	// Diff is set only on finite numeric tolerance failures.
	Diff float64 `json:"diff,omitempty"`
	// Index and Key hold the annotation of the outermost enclosing sequence
	// frame and object frame respectively; Path has the full trail.
	Index *int        `json:"index,omitempty"`
	Key   *string     `json:"key,omitempty"`
	Path  []PathEntry `json:"path,omitempty"`

	// trail collects path entries while the discrepancy propagates outward.
	// Enclosing frames prepend, so the deque reads root-to-leaf.
	trail *deque.Deque[PathEntry]
}

func newDiscrepancy(reason string, expected, received interface{}) *Discrepancy {
	return &Discrepancy{
		Reason:   reason,
		Expected: expected,
		Received: received,
	}
}

// annotateIndex records the sequence position of the frame returning the
// discrepancy. Outer frames overwrite Index but extend Path.
func (d *Discrepancy) annotateIndex(i int) *Discrepancy {
	d.Index = &i
	d.prepend(indexEntry(i))
	return d
}

// annotateKey records the object key of the frame returning the discrepancy.
// Outer frames overwrite Key but extend Path.
func (d *Discrepancy) annotateKey(k string) *Discrepancy {
	d.Key = &k
	d.prepend(keyEntry(k))
	return d
}

func (d *Discrepancy) prepend(e PathEntry) {
	if d.trail == nil {
		d.trail = deque.New[PathEntry]()
	}
	d.trail.PushFront(e)
}

// finalize materializes the accumulated trail into Path, root to leaf.
func (d *Discrepancy) finalize() *Discrepancy {
	if d == nil || d.trail == nil {
		return d
	}
	d.Path = make([]PathEntry, d.trail.Len())
	for i := 0; i < d.trail.Len(); i++ {
		d.Path[i] = d.trail.At(i)
	}
	return d
}
