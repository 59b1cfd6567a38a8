//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: regenerates the *_mock_test.go files
//   (see the go:generate lines in service_test.go and router_test.go)
// - github.com/pressly/goose/v3/cmd/goose: declared in go.mod's tool block;
//   the server and seeder apply migrations themselves on start
