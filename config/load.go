package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed lexicon.schema.json
var lexiconSchemaSource string

var (
	schemaOnce    sync.Once
	lexiconSchema *jsonschema.Schema
	schemaErr     error
)

func loadSchema() {
	lexiconSchema, schemaErr = jsonschema.CompileString("lexicon.schema.json", lexiconSchemaSource)
}

// LoadLexicon reads a YAML lexicon file and overlays it on DefaultLexicon
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("reading lexicon: %w", err)
	}
	lex, err := ParseLexicon(data)
	if err != nil {
		return Lexicon{}, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

// ParseLexicon validates YAML lexicon data against the lexicon schema and
// overlays it on DefaultLexicon. Keys absent from the document keep their
// default values; lists present in the document replace the defaults.
func ParseLexicon(data []byte) (Lexicon, error) {
	lex := DefaultLexicon()
	if len(bytes.TrimSpace(data)) == 0 {
		return lex, nil
	}

	if err := validateLexiconDocument(data); err != nil {
		return Lexicon{}, err
	}

	if err := yaml.Unmarshal(data, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	if err := lex.Validate(); err != nil {
		return Lexicon{}, err
	}
	return lex, nil
}

// validateLexiconDocument round-trips the YAML through JSON so the schema
// validator sees plain JSON values.
func validateLexiconDocument(data []byte) error {
	schemaOnce.Do(loadSchema)
	if schemaErr != nil {
		return fmt.Errorf("compiling lexicon schema: %w", schemaErr)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	if doc == nil {
		return nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	if err := lexiconSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	return nil
}
