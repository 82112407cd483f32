// Package apiv1 holds the wire messages, procedure names, and connect
// handler/client constructors for the leaguehub RPC services.
//
// Messages are plain Go structs carried as JSON.
package apiv1

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// CodecName is the connect codec name, served as application/json.
const CodecName = "json"

// Codec marshals messages with encoding/json.
type Codec struct{}

var _ connect.Codec = Codec{}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}

// WithJSON registers Codec on a handler or client.
func WithJSON() connect.Option {
	return connect.WithCodec(Codec{})
}
