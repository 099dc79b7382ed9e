package jsonize

import "sync"

var (
	sharedOnce sync.Once
	shared     *Response
)

// Shared returns the process-wide response, creating it on first use. Only
// creation is synchronised: callers sharing it across goroutines must
// serialise their own mutations.
func Shared() *Response {
	sharedOnce.Do(func() {
		shared = New(nil)
	})
	return shared
}

// ResetShared restores the shared response to its defaults so it can be
// reused for the next logical response.
func ResetShared() *Response {
	r := Shared()
	r.reset()
	return r
}
