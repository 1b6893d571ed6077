// Package parser adapts raw XML text into the generic labeled tree the
// normalizer consumes. All XML syntax checking is delegated to the
// encoding/xml token decoder; this package only assembles tokens into the
// tree and classifies failures.
package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/xmljson/internal/errors"
	"github.com/mcncl/xmljson/internal/models"
)

// Parse reads XML from reader and builds the generic tree. The returned
// element is a synthetic document node: its children are the document's
// top-level elements and its Declaration field carries the <?xml ...?>
// instruction when one was present.
//
// Whitespace-only character data is discarded. Comments and directives are
// skipped entirely. Empty input is not an error; it yields a document node
// with no children.
func Parse(reader io.Reader) (*models.Element, error) {
	decoder := xml.NewDecoder(reader)

	doc := &models.Element{}
	stack := []*models.Element{doc}

	for {
		token, err := decoder.Token()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// The decoder's message is surfaced verbatim to the caller.
			return nil, errors.NewConversionError(err.Error(), errors.ErrMalformedXML)
		}

		current := stack[len(stack)-1]

		switch t := token.(type) {
		case xml.StartElement:
			child := &models.Element{}
			for _, attr := range t.Attr {
				child.Attributes = append(child.Attributes, models.Attribute{
					Name:  attr.Name.Local,
					Value: attr.Value,
				})
			}
			current.AddChild(t.Name.Local, child)
			stack = append(stack, child)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if text := strings.TrimSpace(string(t)); text != "" {
				current.Text += text
			}
		case xml.ProcInst:
			if t.Target == "xml" && current == doc {
				doc.Declaration = string(t.Inst)
			}
		case xml.Comment, xml.Directive:
			// Neither contributes to the output.
		}
	}

	return doc, nil
}

// ParseString parses XML from a string.
func ParseString(input string) (*models.Element, error) {
	return Parse(strings.NewReader(input))
}

// ParseFile parses XML from a file path.
func ParseFile(filePath string) (*models.Element, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	return Parse(file)
}
