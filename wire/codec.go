package wire

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Supported codec names.
const (
	JSON    = "json"
	CBOR    = "cbor"
	MsgPack = "msgpack"
	YAML    = "yaml"
)

// CodecError represents an encoding or decoding failure.
type CodecError struct {
	Op    string
	Codec string
	Err   error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("wire: %s failed for codec %s: %v", e.Op, e.Codec, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// Codecs returns the supported codec names.
func Codecs() []string {
	return []string{JSON, CBOR, MsgPack, YAML}
}

// Codec serializes messages with one of the supported formats.
type Codec struct {
	name string
}

// NewCodec returns the codec called name.
func NewCodec(name string) (*Codec, error) {
	switch name {
	case JSON, CBOR, MsgPack, YAML:
		return &Codec{name: name}, nil
	default:
		return nil, &CodecError{
			Op:    "create",
			Codec: name,
			Err:   fmt.Errorf("unsupported codec: %q", name),
		}
	}
}

// Name returns the codec name.
func (c *Codec) Name() string {
	return c.name
}

// Marshal serializes v.
func (c *Codec) Marshal(v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch c.name {
	case JSON:
		data, err = json.MarshalIndent(v, "", "  ")
	case CBOR:
		data, err = cbor.Marshal(v)
	case MsgPack:
		data, err = msgpack.Marshal(v)
	case YAML:
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return nil, &CodecError{Op: "marshal", Codec: c.name, Err: err}
	}
	return data, nil
}

// Unmarshal deserializes data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	var err error
	switch c.name {
	case JSON:
		err = json.Unmarshal(data, v)
	case CBOR:
		err = cbor.Unmarshal(data, v)
	case MsgPack:
		err = msgpack.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return &CodecError{Op: "unmarshal", Codec: c.name, Err: err}
	}
	return nil
}
