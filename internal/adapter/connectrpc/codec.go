package connectrpc

import (
	"encoding/json"
	"fmt"
)

// JSONCodec encodes the plain Go messages of lexiroad.v1. It registers under the name "json" so
// clients talk to the handlers with Content-Type application/json.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
