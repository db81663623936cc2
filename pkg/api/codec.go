// Package api defines the ledger's Connect services: request and response
// messages, procedure names, handler constructors and typed clients.
//
// Messages are plain Go structs carried as JSON. Money is always a string
// with exactly two decimals ("20.00") so no client ever parses a float.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// codecName replaces connect's protobuf-backed "json" codec, so clients using
// the Connect protocol with Content-Type application/json just work.
const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
}
