// Package lmfile parses the line-oriented Key/Value format shared by
// all libman documents (.lmi, .lmp, .lml).
package lmfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Field is a single Key/Value pair from a libman document.
type Field struct {
	Key   string
	Value string
}

// ParseLine parses one line of a libman document.
// Returns (nil, nil) for blank lines and comment lines.
func ParseLine(line string) (*Field, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	colPos := strings.Index(line, ": ")
	if colPos == -1 {
		// A key with an empty value may end the line with a bare colon.
		colPos = strings.Index(line, ":")
		if colPos == -1 || colPos != len(line)-1 {
			return nil, fmt.Errorf("invalid libman line: %q", line)
		}
	}
	key := strings.TrimSpace(line[:colPos])
	value := strings.TrimSpace(line[colPos+1:])
	return &Field{Key: key, Value: value}, nil
}

// FieldSequence is an ordered sequence of fields with by-key lookup.
type FieldSequence struct {
	fields []Field
	byKey  map[string][]Field
}

// NewFieldSequence builds a FieldSequence from the given fields.
func NewFieldSequence(fields []Field) *FieldSequence {
	fs := &FieldSequence{
		fields: append([]Field(nil), fields...),
		byKey:  map[string][]Field{},
	}
	for _, f := range fs.fields {
		fs.byKey[f.Key] = append(fs.byKey[f.Key], f)
	}
	return fs
}

// Fields returns the fields in document order.
func (fs *FieldSequence) Fields() []Field {
	return fs.fields
}

// ForKey returns every field with the given key, in document order.
func (fs *FieldSequence) ForKey(key string) []Field {
	return fs.byKey[key]
}

// Values returns the value of every field with the given key.
func (fs *FieldSequence) Values(key string) []string {
	found := fs.byKey[key]
	values := make([]string, len(found))
	for i, f := range found {
		values[i] = f.Value
	}
	return values
}

// AtMostOne returns the field for key if present, or nil.
// It is an error for the key to appear more than once.
func (fs *FieldSequence) AtMostOne(key string) (*Field, error) {
	found := fs.byKey[key]
	if len(found) == 0 {
		return nil, nil
	}
	if len(found) != 1 {
		return nil, fmt.Errorf("field %q provided more than once", key)
	}
	return &found[0], nil
}

// ExactlyOne returns the field for key, which must appear exactly once.
func (fs *FieldSequence) ExactlyOne(key string) (*Field, error) {
	found, err := fs.AtMostOne(key)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("missing field %q", key)
	}
	return found, nil
}

// ParseString parses every field in the given document text.
func ParseString(doc string) (*FieldSequence, error) {
	return parseLines(strings.NewReader(doc))
}

// ParseFile parses the libman document at the given path.
func ParseFile(path string) (*FieldSequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening libman file: %w", err)
	}
	defer f.Close()
	fs, err := parseLines(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return fs, nil
}

// maxLineBytes caps a single document line. Generated manifests can
// carry very long values (absolute paths, define lists), well past
// bufio.Scanner's default 64KB token limit.
const maxLineBytes = 4 * 1024 * 1024

func parseLines(r io.Reader) (*FieldSequence, error) {
	var fields []Field
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		field, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, err
		}
		if field != nil {
			fields = append(fields, *field)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return NewFieldSequence(fields), nil
}
