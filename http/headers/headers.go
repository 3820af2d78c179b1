package headers

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Headers is the header mapping of a message. It behaves like a map: keys are compared
// case-sensitively and each key holds exactly one value, so setting an existing key
// replaces its value. Pairs are stored in a slice and searched linearly, which proves to
// be more efficient than a map on the amount of entries messages usually carry.
//
// Callers must not rely on the iteration order.
type Headers struct {
	pairs    []Pair
	keysBuff []string
}

func New() *Headers {
	return new(Headers)
}

// NewPrealloc returns an instance of Headers with pre-allocated underlying storage.
func NewPrealloc(n int) *Headers {
	return &Headers{
		pairs: make([]Pair, 0, n),
	}
}

// FromMap returns a new instance with already inserted values from given map.
func FromMap(m map[string]string) *Headers {
	h := NewPrealloc(len(m))

	for key, value := range m {
		h.Set(key, value)
	}

	return h
}

// Set inserts the pair, replacing the value if the key is already present.
func (h *Headers) Set(key, value string) *Headers {
	for i := range h.pairs {
		if h.pairs[i].Key == key {
			h.pairs[i].Value = value
			return h
		}
	}

	h.pairs = append(h.pairs, Pair{
		Key:   key,
		Value: value,
	})

	return h
}

// Get returns a value and a bool, indicating whether the value was found. If it wasn't, it'll
// be an empty string.
func (h *Headers) Get(key string) (value string, found bool) {
	for _, pair := range h.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return "", false
}

// Value returns the value corresponding to the key. Otherwise, empty string is returned
func (h *Headers) Value(key string) string {
	value, _ := h.Get(key)
	return value
}

// Fold looks the key up ignoring its case. Keys of the mapping stay case-sensitive, so
// in case multiple keys differ only in case, the first one wins.
func (h *Headers) Fold(key string) (value string, found bool) {
	for _, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Has indicates, whether there's an entry of the key.
func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// Delete removes the key. Nothing happens if it isn't present.
func (h *Headers) Delete(key string) *Headers {
	for i := range h.pairs {
		if h.pairs[i].Key == key {
			h.pairs = append(h.pairs[:i], h.pairs[i+1:]...)
			break
		}
	}

	return h
}

// Keys returns all the presented keys.
//
// WARNING: calling it twice will override values, returned by the first call. Consider
// copying the returned slice for safe use.
func (h *Headers) Keys() []string {
	h.keysBuff = h.keysBuff[:0]

	for _, pair := range h.pairs {
		h.keysBuff = append(h.keysBuff, pair.Key)
	}

	return h.keysBuff
}

// Iter returns an iterator over the pairs.
func (h *Headers) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range h.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Len returns a number of stored pairs.
func (h *Headers) Len() int {
	return len(h.pairs)
}

func (h *Headers) Empty() bool {
	return h.Len() == 0
}

// Equal reports whether both mappings hold the same pairs, regardless of their order.
func (h *Headers) Equal(other *Headers) bool {
	if h.Len() != other.Len() {
		return false
	}

	for _, pair := range h.pairs {
		if value, found := other.Get(pair.Key); !found || value != pair.Value {
			return false
		}
	}

	return true
}

// Clone creates a deep copy, which may be used later or stored somewhere safely.
func (h *Headers) Clone() *Headers {
	return &Headers{
		pairs: clone(h.pairs),
	}
}

// Expose exposes the underlying pairs slice.
func (h *Headers) Expose() []Pair {
	return h.pairs
}

// Clear all the entries. However, all the allocated space won't be freed.
func (h *Headers) Clear() *Headers {
	h.pairs = h.pairs[:0]
	return h
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
