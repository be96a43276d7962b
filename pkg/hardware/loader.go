package hardware

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a description file encoding.
type Format uint8

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatForPath picks the format from a file extension. Anything that is not
// .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// LoadError reports a description that could not be read, decoded or
// validated.
type LoadError struct {
	// File is the path of the description, empty for in-memory data.
	File string

	// Message describes the failure.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File == "" {
		return msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse decodes and validates a description.
func Parse(data []byte, format Format) (*Info, error) {
	var info Info
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&info)
		if err != nil {
			return nil, &LoadError{Message: "failed to parse TOML", Cause: err}
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, &LoadError{Message: fmt.Sprintf("failed to parse TOML: unknown keys %s", strings.Join(keys, ", "))}
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&info); err != nil {
			return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
		}
	}

	if err := info.Validate(); err != nil {
		return nil, &LoadError{Message: "validation failed", Cause: err}
	}
	return &info, nil
}

// Load reads, decodes and validates a description file.
func Load(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	info, err := Parse(data, FormatForPath(path))
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return info, nil
}

// Marshal encodes a description in the given format.
func Marshal(info *Info, format Format) ([]byte, error) {
	if format == FormatTOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(info); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(info)
}
