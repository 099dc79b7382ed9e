package jsonize

import "net/http"

// Envelope keys. The data key is configurable, the others are fixed.
const (
	KeySuccess = "success"
	KeyMessage = "message"
	KeyData    = "data"
	KeyStatus  = "status"
)

// DefaultHeaders returns the permissive CORS headers every new store starts with.
// Content-Type is not part of it: the builder always emits it first.
func DefaultHeaders() Header {
	return NewHeader(
		"Access-Control-Allow-Origin", "*",
		"Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		"Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, Origin, X-Request-ID",
	)
}

// Attributes holds the mutable state of one response under construction.
// It is not safe for concurrent mutation. The zero value is usable: it
// behaves like NewAttributes except that it carries no default headers.
type Attributes struct {
	message *string

	data    any
	dataKey string

	statusCode   int
	statusPhrase string

	headers Header

	hideSuccess bool
	hideMessage bool
	hideData    bool
	hideStatus  bool
}

// NewAttributes returns a store with every default applied.
func NewAttributes() *Attributes {
	a := &Attributes{}
	a.Reset()
	return a
}

// Reset restores every default: no message, null data under "data", status 200
// with no override phrase, the default headers and no hidden fields.
func (a *Attributes) Reset() *Attributes {
	*a = Attributes{
		dataKey:    KeyData,
		statusCode: http.StatusOK,
		headers:    DefaultHeaders(),
	}
	return a
}

// Clone returns a deep copy of the store; the data value itself is shared.
func (a *Attributes) Clone() *Attributes {
	out := *a
	if a.message != nil {
		msg := *a.message
		out.message = &msg
	}
	out.headers = a.headers.Clone()
	return &out
}

func (a *Attributes) SetMessage(message string) *Attributes {
	a.message = &message
	return a
}

// Message returns the message and whether one was set. An empty string that
// was set explicitly is reported as present.
func (a *Attributes) Message() (string, bool) {
	if a.message == nil {
		return "", false
	}
	return *a.message, true
}

// SetData stores the payload together with the key it is emitted under.
// The key defaults to "data"; empty keys and the fixed envelope keys are
// replaced with "data".
func (a *Attributes) SetData(value any, key ...string) *Attributes {
	k := KeyData
	if len(key) > 0 && validDataKey(key[0]) {
		k = key[0]
	}
	a.data, a.dataKey = value, k
	return a
}

// Data returns the payload and the key it will be emitted under.
func (a *Attributes) Data() (any, string) {
	if a.dataKey == "" {
		return a.data, KeyData
	}
	return a.data, a.dataKey
}

// SetStatus sets the status code and an optional phrase. A non-empty phrase
// overrides the catalog, also for codes the catalog does not know.
// Non-positive codes are stored as 500.
func (a *Attributes) SetStatus(code int, phrase ...string) *Attributes {
	if code <= 0 {
		code = http.StatusInternalServerError
	}
	a.statusCode, a.statusPhrase = code, ""
	if len(phrase) > 0 {
		a.statusPhrase = phrase[0]
	}
	return a
}

// Status returns the stored code and override phrase (empty when unset).
func (a *Attributes) Status() (int, string) {
	if a.statusCode == 0 {
		return http.StatusOK, a.statusPhrase
	}
	return a.statusCode, a.statusPhrase
}

// SetError sets the message and the status code, 500 unless given.
func (a *Attributes) SetError(message string, code ...int) *Attributes {
	c := http.StatusInternalServerError
	if len(code) > 0 {
		c = code[0]
	}
	return a.SetMessage(message).SetStatus(c)
}

// SetHeaders replaces the custom headers.
func (a *Attributes) SetHeaders(h Header) *Attributes {
	a.headers = h.Clone()
	return a
}

func (a *Attributes) AddHeader(key, value string) *Attributes {
	a.headers.Set(key, value)
	return a
}

func (a *Attributes) Headers() Header {
	return a.headers.Clone()
}

func (a *Attributes) HideSuccess() *Attributes { a.hideSuccess = true; return a }
func (a *Attributes) HideMessage() *Attributes { a.hideMessage = true; return a }
func (a *Attributes) HideData() *Attributes    { a.hideData = true; return a }
func (a *Attributes) HideStatus() *Attributes  { a.hideStatus = true; return a }

func (a *Attributes) SuccessHidden() bool { return a.hideSuccess }
func (a *Attributes) MessageHidden() bool { return a.hideMessage }
func (a *Attributes) DataHidden() bool    { return a.hideData }
func (a *Attributes) StatusHidden() bool  { return a.hideStatus }

func validDataKey(key string) bool {
	switch key {
	case "", KeySuccess, KeyMessage, KeyStatus:
		return false
	}
	return true
}
