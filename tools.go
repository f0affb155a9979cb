//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by go:generate directives:
// - github.com/matryer/moq
// - github.com/pressly/goose/v3/cmd/goose
