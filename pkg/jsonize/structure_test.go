package jsonize

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, a *Attributes) string {
	t.Helper()
	body, err := Build(a)
	require.NoError(t, err)
	return string(body)
}

func TestBuild_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		attrs *Attributes
		want  string
	}{
		{
			name:  "success",
			attrs: NewAttributes().SetMessage("success").SetStatus(200),
			want:  `{"success":true,"message":"success","data":null,"status":[200,"OK"]}`,
		},
		{
			name:  "server error",
			attrs: NewAttributes().SetMessage("Server Error").SetStatus(500),
			want:  `{"success":false,"message":"Server Error","data":null,"status":[500,"Internal Server Error"]}`,
		},
		{
			name:  "created with data",
			attrs: NewAttributes().SetMessage("Resource created").SetStatus(201).SetData(map[string]int{"id": 123}),
			want:  `{"success":true,"message":"Resource created","data":{"id":123},"status":[201,"Created"]}`,
		},
		{
			name:  "not found",
			attrs: NewAttributes().SetMessage("Resource not found").SetStatus(404),
			want:  `{"success":false,"message":"Resource not found","data":null,"status":[404,"Not Found"]}`,
		},
		{
			name:  "unauthorized",
			attrs: NewAttributes().SetMessage("Unauthorized access").SetStatus(401),
			want:  `{"success":false,"message":"Unauthorized access","data":null,"status":[401,"Unauthorized"]}`,
		},
		{
			name:  "validation failed",
			attrs: NewAttributes().SetMessage("Validation failed").SetStatus(422),
			want:  `{"success":false,"message":"Validation failed","data":null,"status":[422,"Unprocessable Entity"]}`,
		},
		{
			name:  "service unavailable",
			attrs: NewAttributes().SetMessage("Service unavailable").SetStatus(503),
			want:  `{"success":false,"message":"Service unavailable","data":null,"status":[503,"Service Unavailable"]}`,
		},
		{
			name:  "empty message is present",
			attrs: NewAttributes().SetMessage("").SetStatus(200),
			want:  `{"success":true,"message":"","data":null,"status":[200,"OK"]}`,
		},
		{
			name: "nested data",
			attrs: NewAttributes().SetMessage("User data").SetStatus(200).SetData(map[string]any{
				"user": map[string]string{"name": "John", "email": "john@example.com"},
			}),
			want: `{"success":true,"message":"User data","data":{"user":{"email":"john@example.com","name":"John"}},"status":[200,"OK"]}`,
		},
		{
			name:  "no content",
			attrs: NewAttributes().SetMessage("No content").SetStatus(204),
			want:  `{"success":true,"message":"No content","data":null,"status":[204,"No Content"]}`,
		},
		{
			name:  "message absent",
			attrs: NewAttributes(),
			want:  `{"success":true,"data":null,"status":[200,"OK"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, build(t, tt.attrs))
		})
	}
}

func TestBuild_SuccessRange(t *testing.T) {
	for _, code := range []int{100, 199, 200, 204, 226, 299, 300, 301, 404, 500, 783} {
		a := NewAttributes().SetStatus(code, "x")
		want := code >= 200 && code < 300
		assert.Equal(t, want, Success(code), "code %d", code)

		body := build(t, a)
		if want {
			assert.Contains(t, body, `"success":true`, "code %d", code)
		} else {
			assert.Contains(t, body, `"success":false`, "code %d", code)
		}
	}
}

func TestBuild_PhraseOverridesCatalog(t *testing.T) {
	a := NewAttributes().SetStatus(http.StatusOK, "Everything fine")
	assert.Equal(t, `{"success":true,"data":null,"status":[200,"Everything fine"]}`, build(t, a))

	a = NewAttributes().SetStatus(9999, "Custom")
	assert.Equal(t, `{"success":false,"data":null,"status":[9999,"Custom"]}`, build(t, a))
}

func TestBuild_UnknownCodeFallsBack(t *testing.T) {
	a := NewAttributes().SetStatus(9999)
	assert.Equal(t, `{"success":false,"data":null,"status":[500,"Internal Server Error"]}`, build(t, a))
	assert.Equal(t, Fallback, StatusOf(a))
}

func TestBuild_NullDataKept(t *testing.T) {
	a := NewAttributes().SetData(nil)
	assert.Contains(t, build(t, a), `"data":null`)

	a = NewAttributes().SetData(nil, "items")
	assert.Equal(t, `{"success":true,"items":null,"status":[200,"OK"]}`, build(t, a))
}

func TestBuild_CustomDataKey(t *testing.T) {
	a := NewAttributes().SetMessage("ok").SetData([]int{1, 2}, "items")
	assert.Equal(t, `{"success":true,"message":"ok","items":[1,2],"status":[200,"OK"]}`, build(t, a))
}

func TestBuild_HideFlags(t *testing.T) {
	base := func() *Attributes {
		return NewAttributes().SetMessage("m").SetData(1, "payload").SetStatus(201)
	}

	tests := []struct {
		name string
		hide func(*Attributes)
		want string
	}{
		{"success", func(a *Attributes) { a.HideSuccess() }, `{"message":"m","payload":1,"status":[201,"Created"]}`},
		{"message", func(a *Attributes) { a.HideMessage() }, `{"success":true,"payload":1,"status":[201,"Created"]}`},
		{"data by configured key", func(a *Attributes) { a.HideData() }, `{"success":true,"message":"m","status":[201,"Created"]}`},
		{"status", func(a *Attributes) { a.HideStatus() }, `{"success":true,"message":"m","payload":1}`},
		{"all", func(a *Attributes) { a.HideStatus().HideData().HideMessage().HideSuccess() }, `{}`},
		{"idempotent", func(a *Attributes) { a.HideMessage().HideMessage() }, `{"success":true,"payload":1,"status":[201,"Created"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := base()
			tt.hide(a)
			assert.Equal(t, tt.want, build(t, a))
		})
	}
}

func TestBuild_HideOrderIndependent(t *testing.T) {
	a := NewAttributes().SetMessage("m").HideStatus().HideSuccess()
	b := NewAttributes().SetMessage("m").HideSuccess().HideStatus()
	assert.Equal(t, build(t, a), build(t, b))
	assert.Equal(t, `{"message":"m","data":null}`, build(t, a))
}

func TestBuild_Idempotent(t *testing.T) {
	a := NewAttributes().SetMessage("m").SetData(map[string]any{"b": 2, "a": []string{"x"}}).SetStatus(202)
	first := build(t, a)
	assert.Equal(t, first, build(t, a))
}

func TestBuild_UnencodableData(t *testing.T) {
	a := NewAttributes().SetData(make(chan int))
	_, err := Build(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"data"`)
}
