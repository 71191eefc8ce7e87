// Package dom holds the elements a theme is reflected onto.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const emptyDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is a parsed HTML document, optionally backed by a file.
type Document struct {
	doc  *goquery.Document
	path string
}

// NewDocument returns an empty in-memory document.
func NewDocument() *Document {
	d, err := ParseString(emptyDocument)
	if err != nil {
		// The empty document always parses.
		panic(err)
	}
	return d
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString parses an HTML document from s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Load parses the HTML file at path. Save writes it back to the same path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, err
	}
	d.path = path
	return d, nil
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// Root returns the <html> element.
func (d *Document) Root() *Element {
	return &Element{sel: d.doc.Find("html").First()}
}

// Resolve returns the first element matching selector, or the root when the
// selector is empty, invalid or matches nothing.
func (d *Document) Resolve(selector string) *Element {
	if strings.TrimSpace(selector) == "" {
		return d.Root()
	}
	sel := d.doc.Find(selector)
	if sel.Length() == 0 {
		return d.Root()
	}
	return &Element{sel: sel.First()}
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("failed to render document: %w", err)
		}
	}
	return nil
}

// String renders the document, returning "" on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Save writes the document back to the file it was loaded from.
func (d *Document) Save() error {
	if d.path == "" {
		return fmt.Errorf("document has no backing file")
	}

	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), ".thememode-*.html")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return os.Rename(tmp.Name(), d.path)
}
