package gazetteer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// validate is the shared struct validator.
var validate = validator.New()

// file is the on-disk layout for both formats.
type file struct {
	Place []Entry `toml:"place" yaml:"place"`
}

// LoadFile reads a table from path. The format follows the extension:
// .toml, or .yaml / .yml.
//
// Errors: ErrUnsupportedFormat, ErrInvalidEntry, ErrDuplicatePlace, I/O and decode errors.
func LoadFile(path string) (*Gazetteer, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: read %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes a table in the given format ("toml" or "yaml").
func Parse(data []byte, format string) (*Gazetteer, error) {
	var f file
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("gazetteer: decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("gazetteer: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	g := New()
	for i, e := range f.Place {
		e.Name = Normalize(e.Name)
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: place %d (%q): %s", ErrInvalidEntry, i, e.Name, describe(err))
		}
		if err := g.Add(e.Name, e.Coordinate()); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// describe renders the first validation failure as "Field: rule".
func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	e := verrs[0]
	if e.Param() != "" {
		return fmt.Sprintf("%s: must satisfy %s=%s", e.Field(), e.Tag(), e.Param())
	}

	return fmt.Sprintf("%s: %s", e.Field(), e.Tag())
}
