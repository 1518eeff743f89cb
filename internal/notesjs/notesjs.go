// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notesjs encodes and decodes the notes-data script: a single
// JavaScript statement assigning the notes payload to window.NOTES_DATA.
package notesjs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pdiddy/notes-builder/pkg/types"
)

const (
	// Prefix starts every notes-data script.
	Prefix = "window.NOTES_DATA = "
	// Suffix terminates the assignment statement.
	Suffix = ";"
)

// ErrNotNotesScript is returned by Decode when the input is not a
// window.NOTES_DATA assignment.
var ErrNotNotesScript = errors.New("not a notes-data script")

// Encode renders p as one line: the fixed assignment prefix, compact JSON,
// and a closing semicolon. Non-ASCII and HTML-significant characters are
// written literally. A nil Workflow is encoded as an empty array.
func Encode(p types.Payload) ([]byte, error) {
	if p.Pages == nil {
		p.Pages = []types.PageRecord{}
	}
	if p.Workflow == nil {
		p.Workflow = []types.WorkflowSection{}
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding notes payload: %w", err)
	}

	// json.Encoder terminates each value with a newline.
	js := bytes.TrimSuffix(body.Bytes(), []byte("\n"))

	out := make([]byte, 0, len(Prefix)+len(js)+len(Suffix))
	out = append(out, Prefix...)
	out = append(out, js...)
	out = append(out, Suffix...)
	return out, nil
}

// Decode parses a notes-data script back into a payload. Surrounding
// whitespace and a UTF-8 byte order mark are ignored.
func Decode(data []byte) (types.Payload, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimSpace(data)

	if !bytes.HasPrefix(data, []byte(Prefix)) {
		return types.Payload{}, fmt.Errorf("%w: missing %q prefix", ErrNotNotesScript, Prefix)
	}
	data = bytes.TrimPrefix(data, []byte(Prefix))
	data = bytes.TrimSpace(bytes.TrimSuffix(data, []byte(Suffix)))

	var p types.Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return types.Payload{}, fmt.Errorf("%w: %v", ErrNotNotesScript, err)
	}
	return p, nil
}

// Validate checks the payload invariants the notes page relies on: page
// numbers run 1..N in order and the workflow array is present.
func Validate(p types.Payload) error {
	for i, rec := range p.Pages {
		if rec.Page != i+1 {
			return fmt.Errorf("page record %d has page number %d, want %d", i, rec.Page, i+1)
		}
	}
	if p.Workflow == nil {
		return errors.New("workflow is missing or null")
	}
	return nil
}
