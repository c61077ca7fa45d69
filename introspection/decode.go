package introspection

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/sdl-format/go-sdl/format"
)

// Response is a full GraphQL HTTP response carrying an introspection result.
type Response struct {
	Data   *Data   `json:"data"`
	Errors []Error `json:"errors,omitempty"`
}

type Data struct {
	Schema *Schema `json:"__schema"`
}

type Error struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

func (e Error) Error() string {
	return e.Message
}

// Decode reads an introspection payload from JSON. It accepts a full
// response ({"data":{"__schema":…}}), a data object ({"__schema":…}), or a
// bare schema object.
func Decode(d []byte) (*Schema, error) {
	var res Response
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if res.Data != nil && res.Data.Schema != nil {
		return res.Data.Schema, nil
	}
	var data Data
	if err := json.Unmarshal(d, &data); err == nil && data.Schema != nil {
		return data.Schema, nil
	}
	var schema Schema
	if err := json.Unmarshal(d, &schema); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if schema.Types == nil {
		return nil, fmt.Errorf("%w: no __schema in payload", ErrDecode)
	}
	return &schema, nil
}

// DecodeFormat decodes a payload in the given serialization.
func DecodeFormat(d []byte, f format.Format) (*Schema, error) {
	switch f {
	case format.YAMLFormat:
		return DecodeYAML(d)
	default:
		return Decode(d)
	}
}

// DecodeYAML is Decode for a YAML rendition of the same payload.
func DecodeYAML(d []byte) (*Schema, error) {
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Decode(j)
}
