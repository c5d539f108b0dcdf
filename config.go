package luna

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Lexical constants exposed as named constants, since they are part of the
// language contract. topEntryPoint checks for the configured marker-begin
// character before it consults the 200-entry dispatch table, so the marker
// delimiters are not limited to code points below 200.
const (
	markerBegin = '«' // '«'
	markerEnd   = '»' // '»'

	metadataHeader = "META"
)

// Config holds the overridable subset of the lexical constants above, plus
// the two closed sets (regular operator characters, reserved words) a
// dialect fork is most likely to want to retarget. The zero value is not
// meaningful on its own; use DefaultConfig.
//
// This is an ambient "configuration" concern: an embedder wiring Luna into
// a different dialect (a fork with a different metadata header, say) needs
// a way to retarget those constants without a rebuild. Modeled on
// flosch-pongo2's settings-via-YAML approach (gopkg.in/yaml.v2), repurposed
// from template settings to lexer dialect settings.
type Config struct {
	MetadataHeader       string                `yaml:"metadata_header"`
	MarkerBegin          rune                  `yaml:"marker_begin"`
	MarkerEnd            rune                  `yaml:"marker_end"`
	RegularOperatorChars string                `yaml:"regular_operator_chars"`
	Keywords             map[string]SymbolKind `yaml:"keywords"`
}

// DefaultConfig returns the built-in lexical constants as a Config value.
func DefaultConfig() *Config {
	return &Config{
		MetadataHeader:       metadataHeader,
		MarkerBegin:          markerBegin,
		MarkerEnd:            markerEnd,
		RegularOperatorChars: RegularOperatorChars,
		Keywords:             defaultKeywords,
	}
}

// LoadConfig reads a YAML dialect-override file. Any field left at its zero
// value in the document falls back to the built-in default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errAnnotatef(err, "reading lexer config %q", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errAnnotatef(err, "parsing lexer config %q", path)
	}
	if cfg.MetadataHeader == "" {
		cfg.MetadataHeader = metadataHeader
	}
	if cfg.MarkerBegin == 0 {
		cfg.MarkerBegin = markerBegin
	}
	if cfg.MarkerEnd == 0 {
		cfg.MarkerEnd = markerEnd
	}
	if cfg.RegularOperatorChars == "" {
		cfg.RegularOperatorChars = RegularOperatorChars
	}
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = defaultKeywords
	}
	return cfg, nil
}
