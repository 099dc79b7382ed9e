package transport

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/fastygo/jsonize/pkg/jsonize"
)

// EnvelopeRequest describes an envelope to build, as accepted by the
// envelope endpoint.
type EnvelopeRequest struct {
	Message *string           `json:"message"`
	Data    json.RawMessage   `json:"data"`
	DataKey string            `json:"data_key"`
	Status  int               `json:"status"`
	Phrase  string            `json:"phrase"`
	Headers map[string]string `json:"headers"`
	Hide    []string          `json:"hide"`
}

// Validate rejects hide entries that do not name an envelope field.
func (r EnvelopeRequest) Validate() error {
	for _, h := range r.Hide {
		switch h {
		case jsonize.KeySuccess, jsonize.KeyMessage, jsonize.KeyData, jsonize.KeyStatus:
		default:
			return fmt.Errorf("unknown field %q in hide", h)
		}
	}
	if r.Status < 0 {
		return fmt.Errorf("status must be positive, got %d", r.Status)
	}
	return nil
}

// Apply copies the request onto resp. A phrase without a status overrides
// the phrase of the status resp already carries. Headers are added in key
// order so the emitted order does not depend on map iteration.
func (r EnvelopeRequest) Apply(resp *jsonize.Response) *jsonize.Response {
	if r.Message != nil {
		resp.WithMessage(*r.Message)
	}
	var data any
	if len(r.Data) > 0 && string(r.Data) != "null" {
		data = r.Data
	}
	resp.WithData(data, r.DataKey)
	if r.Status != 0 || r.Phrase != "" {
		code := r.Status
		if code == 0 {
			code, _ = resp.Attributes().Status()
		}
		resp.WithStatus(code, r.Phrase)
	}
	for _, k := range slices.Sorted(maps.Keys(r.Headers)) {
		resp.WithHeader(k, r.Headers[k])
	}
	for _, h := range r.Hide {
		switch h {
		case jsonize.KeySuccess:
			resp.WithoutSuccess()
		case jsonize.KeyMessage:
			resp.WithoutMessage()
		case jsonize.KeyData:
			resp.WithoutData()
		case jsonize.KeyStatus:
			resp.WithoutStatus()
		}
	}
	return resp
}
