package jsonize

// Header is a string mapping that remembers insertion order, so headers are
// emitted to the transport in the order they were configured.
type Header struct {
	keys   []string
	values map[string]string
}

// NewHeader builds a Header from alternating key/value pairs. A trailing key
// without a value is ignored.
func NewHeader(pairs ...string) Header {
	var h Header
	for i := 0; i+1 < len(pairs); i += 2 {
		h.Set(pairs[i], pairs[i+1])
	}
	return h
}

// Set stores value under key. Re-setting an existing key keeps its position.
func (h *Header) Set(key, value string) {
	if h.values == nil {
		h.values = make(map[string]string)
	}
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value stored under key.
func (h Header) Get(key string) (string, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Del removes key; later keys move up one position.
func (h *Header) Del(key string) {
	if _, ok := h.values[key]; !ok {
		return
	}
	delete(h.values, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

func (h Header) Len() int {
	return len(h.keys)
}

// Keys returns a copy of the keys in insertion order.
func (h Header) Keys() []string {
	return append([]string(nil), h.keys...)
}

// Each calls fn for every entry in insertion order.
func (h Header) Each(fn func(key, value string)) {
	for _, k := range h.keys {
		fn(k, h.values[k])
	}
}

// Clone returns an independent copy.
func (h Header) Clone() Header {
	var out Header
	h.Each(out.Set)
	return out
}
