package handler

import (
	"github.com/fastygo/jsonize/domain"
	"github.com/fastygo/jsonize/pkg/jsonize"
)

// withError fills resp from a classified error.
func withError(resp *jsonize.Response, err error) *jsonize.Response {
	message, status := domain.Describe(err)
	return resp.WithError(message, status)
}
