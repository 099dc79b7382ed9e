package jsonize

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	status  int
	headers [][2]string
	body    []byte
	writes  int
	err     error
}

func (r *recorder) SetStatusCode(code int) { r.status = code }

func (r *recorder) SetHeader(key, value string) {
	r.headers = append(r.headers, [2]string{key, value})
}

func (r *recorder) Write(p []byte) (int, error) {
	r.writes++
	if r.err != nil {
		return 0, r.err
	}
	r.body = append(r.body, p...)
	return len(p), nil
}

func TestResponse_Send(t *testing.T) {
	rec := &recorder{}
	resp := New(rec).
		WithMessage("Resource created").
		WithStatus(201).
		WithData(map[string]int{"id": 123}).
		WithHeaders(NewHeader("X-B", "b", "X-A", "a"))

	require.NoError(t, resp.Send())
	assert.True(t, resp.Finalized())
	assert.Equal(t, 201, rec.status)
	assert.Equal(t, [][2]string{{"Content-Type", "application/json"}, {"X-B", "b"}, {"X-A", "a"}}, rec.headers)
	assert.Equal(t, `{"success":true,"message":"Resource created","data":{"id":123},"status":[201,"Created"]}`, string(rec.body))
}

func TestResponse_GetDoesNotWriteBody(t *testing.T) {
	rec := &recorder{}
	resp := New(rec).WithMessage("success").WithStatus(200)

	body, err := resp.Get()
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"message":"success","data":null,"status":[200,"OK"]}`, string(body))
	assert.Equal(t, 200, rec.status)
	assert.Zero(t, rec.writes)

	require.NoError(t, resp.Close())
	assert.Zero(t, rec.writes, "Close after Get must not emit")

	_, err = resp.Get()
	assert.ErrorIs(t, err, ErrFinalized)
	assert.ErrorIs(t, resp.Send(), ErrFinalized)
}

func TestResponse_CloseEmitsOnce(t *testing.T) {
	rec := &recorder{}
	func() {
		resp := New(rec).WithError("Resource not found", 404)
		defer resp.Close()
	}()

	assert.Equal(t, 1, rec.writes)
	assert.Equal(t, 404, rec.status)
	assert.Equal(t, `{"success":false,"message":"Resource not found","data":null,"status":[404,"Not Found"]}`, string(rec.body))
}

func TestResponse_CloseAfterSend(t *testing.T) {
	rec := &recorder{}
	resp := New(rec)
	require.NoError(t, resp.Send())
	require.NoError(t, resp.Close())
	assert.Equal(t, 1, rec.writes)
}

func TestResponse_TransportGetsResolvedCode(t *testing.T) {
	rec := &recorder{}
	require.NoError(t, New(rec).WithStatus(9999).Send())
	assert.Equal(t, 500, rec.status)

	rec = &recorder{}
	require.NoError(t, New(rec).WithStatus(9999, "Custom").Send())
	assert.Equal(t, 9999, rec.status)
}

func TestResponse_WriteError(t *testing.T) {
	rec := &recorder{err: errors.New("broken pipe")}
	err := New(rec).Send()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestResponse_NilWriter(t *testing.T) {
	resp := New(nil).WithoutSuccess().WithoutStatus()
	body, err := resp.Get()
	require.NoError(t, err)
	assert.Equal(t, `{"data":null}`, string(body))
	assert.NoError(t, resp.Close())
}

func TestResponse_BuildErrorLeavesUnfinalized(t *testing.T) {
	resp := New(&recorder{}).WithData(func() {})
	_, err := resp.Get()
	require.Error(t, err)
	assert.False(t, resp.Finalized())
}

func TestShared(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Response, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Shared()
		}(i)
	}
	wg.Wait()
	for _, r := range got {
		assert.Same(t, got[0], r)
	}

	rec := &recorder{}
	r := ResetShared().Attach(rec).WithMessage("first").WithStatus(503)
	require.NoError(t, r.Send())
	assert.True(t, Shared().Finalized())

	r = ResetShared()
	assert.Same(t, got[0], r)
	assert.False(t, r.Finalized())
	body, err := r.WithMessage("success").WithStatus(200).Get()
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"message":"success","data":null,"status":[200,"OK"]}`, string(body))
	assert.Equal(t, 1, rec.writes, "reset detaches the previous writer")
}

func TestResponse_ZeroValue(t *testing.T) {
	var r Response
	assert.NotPanics(t, func() { r.WithMessage("x") })

	body, err := r.Body()
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"message":"x","data":null,"status":[200,"OK"]}`, string(body))

	rec := &recorder{}
	require.NoError(t, r.Attach(rec).Send())
	assert.True(t, r.Finalized())
	assert.Equal(t, 200, rec.status)
	assert.Equal(t, 1, rec.writes)

	var closed Response
	assert.NoError(t, closed.Close())
	assert.True(t, closed.Finalized())
}
