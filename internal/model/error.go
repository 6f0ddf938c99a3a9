package model

import "errors"

var (
	// ArgumentErr marks malformed user input, e.g. an unparseable days token.
	ArgumentErr = errors.New("bad argument")
	// ProviderErr marks a network failure, a non-2xx status or a missing expected field
	// in a provider response.
	ProviderErr = errors.New("provider error")
	// NoDataErr marks a well-formed but empty result set for the requested range or pair.
	NoDataErr = errors.New("no data")
	// IndexErr marks an out of range favorite index.
	IndexErr = errors.New("index out of range")
)
