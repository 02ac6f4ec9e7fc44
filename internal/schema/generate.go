// Package schema generates JSON Schema from the mcdirs config types.
package schema

import (
	"encoding/json"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/smykla-skalski/mcdirs/pkg/config"
	"github.com/smykla-skalski/mcdirs/pkg/logger"
)

const (
	schemaURI = "https://json-schema.org/draft/2020-12/schema"
	title     = "mcdirs configuration"
)

// Generate produces a JSON Schema from the config.Config struct.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		Mapper:         mapType,
	}

	s := r.Reflect(&config.Config{})
	s.Version = schemaURI
	s.Title = title

	return s
}

// mapType describes types that are written as strings in the TOML file.
func mapType(t reflect.Type) *jsonschema.Schema {
	if t != reflect.TypeFor[logger.Level]() {
		return nil
	}

	levels := logger.LevelStrings()
	enum := make([]any, 0, len(levels))

	for _, l := range levels {
		enum = append(enum, l)
	}

	return &jsonschema.Schema{
		Type:        "string",
		Enum:        enum,
		Description: "Minimum level written to the log file.",
	}
}

// GenerateJSON produces a JSON Schema as bytes.
// When indent is true, the output is pretty-printed.
func GenerateJSON(indent bool) ([]byte, error) {
	s := Generate()

	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	return append(data, '\n'), nil
}
