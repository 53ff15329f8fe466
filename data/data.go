// Package data loads chord definition files. The packaged chords.json is
// embedded, user files may be JSON or YAML. Key order is kept.
package data

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/chordex/model"
	"gopkg.in/yaml.v3"
)

//go:embed chords.json
var chordsJSON []byte

type Format int

const (
	JSON Format = iota
	YAML
)

// FormatOf picks the format from a file extension, defaulting to JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

func Embedded() ([]model.ChordDefinition, error) {
	return Load(bytes.NewReader(chordsJSON), JSON)
}

func LoadFile(path string) ([]model.ChordDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	defs, err := Load(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return defs, nil
}

func Load(r io.Reader, format Format) ([]model.ChordDefinition, error) {
	if format == YAML {
		return loadYAML(r)
	}
	return loadJSON(r)
}

// a plain map would lose the file order, which is the listing order
func loadJSON(r io.Reader) ([]model.ChordDefinition, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var res []model.ChordDefinition
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected chord name, got %v", tok)
		}
		def := model.ChordDefinition{Name: name}
		if err := dec.Decode(&def); err != nil {
			return nil, err
		}
		res = append(res, def)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return res, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %v, got %v", want, tok)
	}
	return nil
}

func loadYAML(r io.Reader) ([]model.ChordDefinition, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("expected a yaml document")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of chord names", root.Line)
	}

	res := make([]model.ChordDefinition, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: chord %q must be a list", val.Line, key.Value)
		}
		def := model.ChordDefinition{Name: key.Value}
		err := def.DecodeValue(len(val.Content), func(i int, dst any) error {
			return val.Content[i].Decode(dst)
		})
		if err != nil {
			return nil, err
		}
		res = append(res, def)
	}
	return res, nil
}
