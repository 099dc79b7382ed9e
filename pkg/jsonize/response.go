package jsonize

import (
	"errors"
	"fmt"
)

// ErrFinalized is returned when a response is finalized a second time.
var ErrFinalized = errors.New("jsonize: response already finalized")

// Writer is the transport a response is emitted to.
type Writer interface {
	SetStatusCode(code int)
	SetHeader(key, value string)
	Write(p []byte) (int, error)
}

// Response is a fluent builder over Attributes that emits to a Writer exactly
// once. Typical use inside a handler:
//
//	resp := jsonize.New(w)
//	defer resp.Close()
//	resp.WithMessage("created").WithStatus(http.StatusCreated).WithData(item)
//	return resp.Send()
//
// The zero value is a response with default attributes and no writer.
type Response struct {
	attrs     *Attributes
	w         Writer
	finalized bool
}

// New returns a response with default attributes. w may be nil, in which
// case finalization only produces the body.
func New(w Writer) *Response {
	return &Response{attrs: NewAttributes(), w: w}
}

// Attributes exposes the underlying store.
func (r *Response) Attributes() *Attributes {
	if r.attrs == nil {
		r.attrs = NewAttributes()
	}
	return r.attrs
}

func (r *Response) WithMessage(message string) *Response {
	r.Attributes().SetMessage(message)
	return r
}

func (r *Response) WithData(value any, key ...string) *Response {
	r.Attributes().SetData(value, key...)
	return r
}

func (r *Response) WithStatus(code int, phrase ...string) *Response {
	r.Attributes().SetStatus(code, phrase...)
	return r
}

func (r *Response) WithError(message string, code ...int) *Response {
	r.Attributes().SetError(message, code...)
	return r
}

func (r *Response) WithHeaders(h Header) *Response {
	r.Attributes().SetHeaders(h)
	return r
}

func (r *Response) WithHeader(key, value string) *Response {
	r.Attributes().AddHeader(key, value)
	return r
}

func (r *Response) WithoutSuccess() *Response { r.Attributes().HideSuccess(); return r }
func (r *Response) WithoutMessage() *Response { r.Attributes().HideMessage(); return r }
func (r *Response) WithoutData() *Response    { r.Attributes().HideData(); return r }
func (r *Response) WithoutStatus() *Response  { r.Attributes().HideStatus(); return r }

// Finalized reports whether Get, Send or Close already emitted the response.
func (r *Response) Finalized() bool {
	return r.finalized
}

// Body encodes the envelope without touching the writer or the guard.
func (r *Response) Body() ([]byte, error) {
	return Build(r.Attributes())
}

// Get finalizes the response: status and headers go to the writer and the
// body is returned for the caller to write.
func (r *Response) Get() ([]byte, error) {
	if r.finalized {
		return nil, ErrFinalized
	}
	body, err := Build(r.Attributes())
	if err != nil {
		return nil, err
	}
	r.finalized = true
	r.writeHead()
	return body, nil
}

// Send finalizes the response and writes the body.
func (r *Response) Send() error {
	body, err := r.Get()
	if err != nil {
		return err
	}
	return r.writeBody(body)
}

// Close emits the response unless it was already finalized. It is meant to
// be deferred right after New so every exit path emits exactly once.
func (r *Response) Close() error {
	if r.finalized {
		return nil
	}
	return r.Send()
}

func (r *Response) writeHead() {
	if r.w == nil {
		return
	}
	r.w.SetStatusCode(StatusOf(r.Attributes()).Code)
	r.w.SetHeader("Content-Type", ContentType)
	r.Attributes().headers.Each(r.w.SetHeader)
}

func (r *Response) writeBody(body []byte) error {
	if r.w == nil {
		return nil
	}
	if _, err := r.w.Write(body); err != nil {
		return fmt.Errorf("jsonize: write body: %w", err)
	}
	return nil
}

// reset restores defaults, detaches the writer and clears the guard.
func (r *Response) reset() {
	r.Attributes().Reset()
	r.w = nil
	r.finalized = false
}

// Attach points the response at a new writer.
func (r *Response) Attach(w Writer) *Response {
	r.w = w
	return r
}
