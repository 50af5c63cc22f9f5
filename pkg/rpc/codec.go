// Package rpc defines the Connect wire surface of the dividir backend:
// request/response types, procedure names, and handler/client constructors.
//
// Messages are plain structs marshaled with encoding/json rather than
// protobuf: the browser client speaks JSON, including the Mongo
// extended-JSON number tags the OCR backend emits (see the numeric package),
// so the codec has to run through encoding/json anyway.
package rpc

import "encoding/json"

// jsonCodec is a connect.Codec over encoding/json. Registering it under the
// name "json" makes Connect serve application/json request bodies with it.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}
