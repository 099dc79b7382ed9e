package jsonize

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContentType is always sent ahead of the custom headers.
const ContentType = "application/json"

type field struct {
	key   string
	value any
}

// Success reports whether code is in the 2xx range.
func Success(code int) bool {
	return code >= 200 && code < 300
}

// StatusOf returns the status descriptor a store resolves to. An explicit
// phrase wins over the catalog; otherwise the catalog decides, including the
// fallback for unknown codes.
func StatusOf(a *Attributes) Descriptor {
	code, phrase := a.Status()
	if phrase != "" {
		return Descriptor{Code: code, Phrase: phrase}
	}
	return Resolve(code)
}

// Build encodes the envelope held by a. Fields are emitted in the order
// success, message, <data key>, status, minus hidden ones. The message is
// left out only when it was never set; data is always emitted, as null when
// there is none. The only error is a data value encoding/json rejects.
func Build(a *Attributes) ([]byte, error) {
	code, _ := a.Status()
	fields := make([]field, 0, 4)
	fields = append(fields, field{KeySuccess, Success(code)})
	if msg, ok := a.Message(); ok {
		fields = append(fields, field{KeyMessage, msg})
	}
	data, dataKey := a.Data()
	fields = append(fields, field{dataKey, data})
	fields = append(fields, field{KeyStatus, StatusOf(a)})

	if a.SuccessHidden() {
		fields = without(fields, KeySuccess)
	}
	if a.MessageHidden() {
		fields = without(fields, KeyMessage)
	}
	if a.DataHidden() {
		fields = without(fields, dataKey)
	}
	if a.StatusHidden() {
		fields = without(fields, KeyStatus)
	}

	return encode(fields)
}

func without(fields []field, key string) []field {
	out := fields[:0]
	for _, f := range fields {
		if f.key != key {
			out = append(out, f)
		}
	}
	return out
}

func encode(fields []field) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, fmt.Errorf("jsonize: encode key %q: %w", f.key, err)
		}
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("jsonize: encode %q: %w", f.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
