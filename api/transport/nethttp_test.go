package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/jsonize/pkg/jsonize"
)

func TestHTTPWriter_Send(t *testing.T) {
	rr := httptest.NewRecorder()
	err := jsonize.New(NewHTTPWriter(rr)).
		WithMessage("Validation failed").
		WithStatus(http.StatusUnprocessableEntity).
		Send()
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, `{"success":false,"message":"Validation failed","data":null,"status":[422,"Unprocessable Entity"]}`, rr.Body.String())
}

func TestHTTPWriter_OutOfRangeCode(t *testing.T) {
	rr := httptest.NewRecorder()
	err := jsonize.New(NewHTTPWriter(rr)).WithStatus(1234, "Custom").Send()
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":[1234,"Custom"]`)
}

func TestHTTPWriter_CustomCode(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, jsonize.New(NewHTTPWriter(rr)).WithStatus(701).Send())

	assert.Equal(t, 701, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":[701,"Meh (Drupal)"]`)
}
