package internal

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"
)

// RequestEncoder turns a typed payload into a request body.
type RequestEncoder[T any] interface {
	Encode(data T) ([]byte, error)
}

// ResponseDecoder turns a response body into a typed value.
type ResponseDecoder[T any] interface {
	Decode(body []byte) (T, error)
}

// JSONRequestEncoder encodes payloads with sonic. With Buffers set the body
// is built in a pooled buffer.
type JSONRequestEncoder[T any] struct {
	Buffers *BufferPool
}

func (e JSONRequestEncoder[T]) Encode(data T) ([]byte, error) {
	if e.Buffers == nil {
		return MarshalToJSON(data)
	}
	return e.Buffers.GetBytes(func(buf *bytes.Buffer) error {
		return EncodeJSONTo(buf, data)
	})
}

// JSONResponseDecoder decodes bodies with sonic.
type JSONResponseDecoder[T any] struct{}

func (JSONResponseDecoder[T]) Decode(body []byte) (T, error) {
	return UnmarshalFromJSON[T](body)
}

// MarshalToJSON encodes v with sonic's default configuration.
func MarshalToJSON(v any) ([]byte, error) {
	data, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}

// UnmarshalFromJSON decodes data into a new T.
func UnmarshalFromJSON[T any](data []byte) (T, error) {
	var result T
	if err := sonic.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode json: %w", err)
	}
	return result, nil
}

// EncodeJSONTo writes v into buf. Used with BufferPool.GetBytes.
func EncodeJSONTo(buf *bytes.Buffer, v any) error {
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	// drop the encoder's trailing newline
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
	return nil
}
