// Package jsonize builds the uniform response envelope
//
//	{"success":true,"message":"...","data":...,"status":[200,"OK"]}
//
// from chained setter calls. Attributes holds the state, Resolve maps status
// codes to reason phrases, Build encodes the envelope with a stable field
// order and Response emits it to a transport exactly once.
package jsonize
