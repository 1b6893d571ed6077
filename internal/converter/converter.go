// Package converter wires the parse, normalize and serialize stages into
// the single call both the CLI and the web editor use. Each call is
// independent and idempotent; no state is shared across conversions.
package converter

import (
	"strings"

	"github.com/mcncl/xmljson/internal/config"
	"github.com/mcncl/xmljson/internal/normalizer"
	"github.com/mcncl/xmljson/internal/parser"
	"github.com/mcncl/xmljson/internal/serializer"
)

// Convert turns raw XML text into a JSON string according to cfg. Empty or
// whitespace-only input is not an error: it produces empty output. Malformed
// XML produces a conversion error carrying the decoder's message verbatim,
// and no partial output.
func Convert(input string, cfg *config.Config) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	doc, err := parser.ParseString(input)
	if err != nil {
		return "", err
	}

	value := normalizer.Normalize(doc, cfg.NormalizerOptions())

	return serializer.Serialize(value, cfg.Pretty)
}

// ConvertFile reads filePath and converts its contents.
func ConvertFile(filePath string, cfg *config.Config) (string, error) {
	doc, err := parser.ParseFile(filePath)
	if err != nil {
		return "", err
	}

	if doc.Declaration == "" && len(doc.Children) == 0 && doc.Text == "" {
		return "", nil
	}

	value := normalizer.Normalize(doc, cfg.NormalizerOptions())

	return serializer.Serialize(value, cfg.Pretty)
}
