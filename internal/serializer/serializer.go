// Package serializer renders normalized values as JSON text. Pure
// formatting, no semantic transformation: the same value and indent option
// always produce byte-identical output.
package serializer

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/mcncl/xmljson/internal/errors"
	"github.com/mcncl/xmljson/internal/models"
)

// Indent is the two-space unit used when pretty-printing.
const Indent = "  "

// Serialize renders value either compact (no whitespace) or pretty-printed
// with two-space indentation. HTML escaping is disabled: the output is
// meant for an editor pane and a .json download, not for embedding in
// markup.
func Serialize(value models.Value, pretty bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", Indent)
	}
	if err := enc.Encode(value); err != nil {
		return "", errors.NewSerializeError("failed to render JSON output", err)
	}
	// Encode appends a newline that MarshalIndent would not.
	return strings.TrimRight(buf.String(), "\n"), nil
}
