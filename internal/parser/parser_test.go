package parser

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	stderrors "errors"

	"github.com/mcncl/xmljson/internal/errors"
	"github.com/mcncl/xmljson/internal/models"
)

func TestParse_SimpleElement(t *testing.T) {
	doc, err := ParseString(`<greeting>hello</greeting>`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	expected := &models.Element{
		Children: []models.ChildGroup{
			{Name: "greeting", Nodes: []models.Node{
				&models.Element{Text: "hello"},
			}},
		},
	}

	if !reflect.DeepEqual(doc, expected) {
		t.Errorf("ParseString() doc = %+v, want %+v", doc, expected)
	}
}

func TestParse_Attributes(t *testing.T) {
	doc, err := ParseString(`<item id="1" name="first"/>`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	if len(doc.Children) != 1 {
		t.Fatalf("ParseString() children = %d, want 1", len(doc.Children))
	}
	item, ok := doc.Children[0].Nodes[0].(*models.Element)
	if !ok {
		t.Fatalf("ParseString() child is not *models.Element, got %T", doc.Children[0].Nodes[0])
	}

	expected := []models.Attribute{
		{Name: "id", Value: "1"},
		{Name: "name", Value: "first"},
	}
	if !reflect.DeepEqual(item.Attributes, expected) {
		t.Errorf("ParseString() attributes = %+v, want %+v", item.Attributes, expected)
	}
}

func TestParse_RepeatedSiblingsCollapse(t *testing.T) {
	doc, err := ParseString(`<root><a>1</a><b>x</b><a>2</a></root>`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	root := doc.Children[0].Nodes[0].(*models.Element)
	if len(root.Children) != 2 {
		t.Fatalf("root has %d child groups, want 2 (repeated names must collapse)", len(root.Children))
	}

	// Document order among distinct names is preserved; all <a> occurrences
	// share one group regardless of the <b> between them.
	if root.Children[0].Name != "a" || root.Children[1].Name != "b" {
		t.Errorf("child group order = [%s, %s], want [a, b]", root.Children[0].Name, root.Children[1].Name)
	}
	if len(root.Children[0].Nodes) != 2 {
		t.Errorf("group 'a' has %d nodes, want 2", len(root.Children[0].Nodes))
	}
}

func TestParse_Declaration(t *testing.T) {
	doc, err := ParseString(`<?xml version="1.0" encoding="utf-8"?><root/>`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	if doc.Declaration == "" {
		t.Error("ParseString() doc.Declaration empty, want the declaration recorded")
	}
	if !strings.Contains(doc.Declaration, `version="1.0"`) {
		t.Errorf("ParseString() doc.Declaration = %q, want version info retained", doc.Declaration)
	}
}

func TestParse_CommentsAndDirectivesSkipped(t *testing.T) {
	doc, err := ParseString(`<!-- a comment --><root><!-- inner --><a>1</a></root>`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	root := doc.Children[0].Nodes[0].(*models.Element)
	if root.Text != "" {
		t.Errorf("root.Text = %q, want empty (comments are not text)", root.Text)
	}
	if len(root.Children) != 1 || root.Children[0].Name != "a" {
		t.Errorf("root children = %+v, want single group 'a'", root.Children)
	}
}

func TestParse_WhitespaceTextDiscarded(t *testing.T) {
	doc, err := ParseString("<root>\n  <a>1</a>\n</root>")
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	root := doc.Children[0].Nodes[0].(*models.Element)
	if root.Text != "" {
		t.Errorf("root.Text = %q, want empty (indentation is not content)", root.Text)
	}
}

func TestParse_MixedContentKeptOnElement(t *testing.T) {
	doc, err := ParseString(`<root><a id="1">inline</a></root>`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	root := doc.Children[0].Nodes[0].(*models.Element)
	a := root.Children[0].Nodes[0].(*models.Element)
	if a.Text != "inline" {
		t.Errorf("a.Text = %q, want %q (parser keeps mixed text; dropping it is the normalizer's call)", a.Text, "inline")
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		doc, err := ParseString(input)
		if err != nil {
			t.Errorf("ParseString(%q) error = %v, want nil", input, err)
			continue
		}
		if len(doc.Children) != 0 || doc.Text != "" || doc.Declaration != "" {
			t.Errorf("ParseString(%q) = %+v, want empty document node", input, doc)
		}
	}
}

func TestParse_MalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "mismatched nesting", input: `<a><b></a>`},
		{name: "unterminated tag", input: `<a>`},
		{name: "stray closing tag", input: `</a>`},
		{name: "invalid tag syntax", input: `<a <b>></a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("ParseString(%q) error = nil, want conversion error", tt.input)
			}
			if !stderrors.Is(err, errors.ErrMalformedXML) {
				t.Errorf("ParseString(%q) error = %v, want ErrMalformedXML", tt.input, err)
			}
			var appErr *errors.AppError
			if !stderrors.As(err, &appErr) || appErr.Type != errors.ErrorTypeConversion {
				t.Errorf("ParseString(%q) error type = %v, want conversion", tt.input, err)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	tempDir := t.TempDir()
	xmlFile := filepath.Join(tempDir, "input.xml")
	if err := os.WriteFile(xmlFile, []byte(`<root><a>1</a></root>`), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	doc, err := ParseFile(xmlFile)
	if err != nil {
		t.Fatalf("ParseFile() error = %v, wantErr nil", err)
	}
	if len(doc.Children) != 1 || doc.Children[0].Name != "root" {
		t.Errorf("ParseFile() doc children = %+v, want single 'root' group", doc.Children)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
	if !stderrors.Is(err, errors.ErrFileNotFound) {
		t.Errorf("ParseFile() error = %v, want ErrFileNotFound", err)
	}
}

func TestParseFile_EmptyPath(t *testing.T) {
	_, err := ParseFile("  ")
	if !stderrors.Is(err, errors.ErrInvalidFilePath) {
		t.Errorf("ParseFile() error = %v, want ErrInvalidFilePath", err)
	}
}
