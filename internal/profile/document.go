package profile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
)

// Entry is a single variable declaration inside a profile document.
// InitValue holds the unevaluated literal expression text.
type Entry struct {
	Description string `xml:"description"`
	InitValue   string `xml:"initValue"`
	Name        string `xml:"name"`
}

// Document is one parsed profile: a named, ordered collection of variable
// declarations. Documents are read-only after parsing; Serialize produces a
// fresh byte slice and never mutates the receiver.
type Document struct {
	XMLName     xml.Name `xml:"GlobalVariableEntities"`
	Description string   `xml:"description"`
	Name        string   `xml:"name"`
	Tag         string   `xml:"tag"`
	Default     bool     `xml:"defaultProfile"`
	Entries     []Entry  `xml:"GlobalVariableEntity"`
}

// ParseError reports a malformed profile document.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("parsing profile document: %v", e.Err)
	}
	return fmt.Sprintf("parsing profile document %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses a profile document from XML. Missing optional scalar fields
// default to the empty string (false for defaultProfile); an entry without a
// name makes the document malformed.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	for i, entry := range doc.Entries {
		if entry.Name == "" {
			return nil, &ParseError{Err: fmt.Errorf("entry %d has no name", i)}
		}
	}

	return &doc, nil
}

// ParseFile reads and parses a profile document from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile document: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Source = path
		}
		return nil, err
	}

	return doc, nil
}

// Serialize renders the document as indented XML with a standard header.
// Serializing and re-parsing yields an equivalent document.
func (d *Document) Serialize() ([]byte, error) {
	body, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing profile document: %w", err)
	}

	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// Contains reports whether the document declares an entry with the given
// name. It is a pure lookup; no evaluation happens.
func (d *Document) Contains(name string) bool {
	for _, entry := range d.Entries {
		if entry.Name == name {
			return true
		}
	}
	return false
}
