package transport

import (
	"github.com/valyala/fasthttp"

	"github.com/fastygo/jsonize/pkg/jsonize"
)

// FastHTTPWriter emits a jsonize.Response onto a fasthttp request context.
type FastHTTPWriter struct {
	ctx *fasthttp.RequestCtx
}

var _ jsonize.Writer = (*FastHTTPWriter)(nil)

func NewFastHTTPWriter(ctx *fasthttp.RequestCtx) *FastHTTPWriter {
	return &FastHTTPWriter{ctx: ctx}
}

// SetStatusCode sets the status line. The envelope body keeps the code as
// given; only the wire status is clamped by WireStatus.
func (w *FastHTTPWriter) SetStatusCode(code int) {
	w.ctx.SetStatusCode(WireStatus(code))
}

func (w *FastHTTPWriter) SetHeader(key, value string) {
	if key == fasthttp.HeaderContentType {
		w.ctx.SetContentType(value)
		return
	}
	w.ctx.Response.Header.Set(key, value)
}

func (w *FastHTTPWriter) Write(p []byte) (int, error) {
	return w.ctx.Write(p)
}

// WireStatus maps codes that cannot appear on an HTTP/1.x status line
// (anything outside 100..999) to 500.
func WireStatus(code int) int {
	if code < 100 || code > 999 {
		return fasthttp.StatusInternalServerError
	}
	return code
}

// NewResponse is a shortcut for jsonize.New(NewFastHTTPWriter(ctx)).
func NewResponse(ctx *fasthttp.RequestCtx) *jsonize.Response {
	return jsonize.New(NewFastHTTPWriter(ctx))
}
