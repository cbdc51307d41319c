// Package proto holds the gRPC service definition for the external LLM
// service. Run `go generate ./proto` to regenerate the bindings.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
