package transport

import (
	"net/http"

	"github.com/fastygo/jsonize/pkg/jsonize"
)

// HTTPWriter emits a jsonize.Response onto a net/http ResponseWriter. The
// status line is held back until the first body write so headers set after
// SetStatusCode still reach the client.
type HTTPWriter struct {
	w           http.ResponseWriter
	status      int
	wroteHeader bool
}

var _ jsonize.Writer = (*HTTPWriter)(nil)

func NewHTTPWriter(w http.ResponseWriter) *HTTPWriter {
	return &HTTPWriter{w: w, status: http.StatusOK}
}

// SetStatusCode records the code. net/http panics on codes outside
// 100..999, so they go out as 500.
func (w *HTTPWriter) SetStatusCode(code int) {
	w.status = WireStatus(code)
}

func (w *HTTPWriter) SetHeader(key, value string) {
	w.w.Header().Set(key, value)
}

func (w *HTTPWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.w.WriteHeader(w.status)
		w.wroteHeader = true
	}
	return w.w.Write(p)
}
