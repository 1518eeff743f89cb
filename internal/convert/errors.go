// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"
)

// MissingInputError reports that the input document does not exist. It
// carries the PDF files that do exist in the directory so the caller can
// spot a misnamed file.
type MissingInputError struct {
	// Path is the input path that was looked up.
	Path string

	// Candidates lists the names of PDF files found beside Path, sorted.
	Candidates []string
}

func (e *MissingInputError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "input document not found: %s\n\nPDFs in this folder:\n", e.Path)
	if len(e.Candidates) == 0 {
		b.WriteString("(none)")
	} else {
		b.WriteString(strings.Join(e.Candidates, "\n"))
	}
	return b.String()
}

// UnreadableDocumentError reports that the input document could not be
// opened or parsed.
type UnreadableDocumentError struct {
	Path string
	Err  error
}

func (e *UnreadableDocumentError) Error() string {
	return fmt.Sprintf("reading document %s: %v", e.Path, e.Err)
}

func (e *UnreadableDocumentError) Unwrap() error { return e.Err }

// WriteError reports that the output file could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
