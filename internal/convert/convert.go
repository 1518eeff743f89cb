// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a PDF into the notes-data script loaded by the
// notes page: it walks the document's pages in order, extracts and
// normalizes each page's text, and writes the payload as a
// window.NOTES_DATA assignment.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/pdiddy/notes-builder/internal/fsutil"
	"github.com/pdiddy/notes-builder/internal/notesjs"
	"github.com/pdiddy/notes-builder/pkg/types"
)

// outputPerm is the mode of the generated script file.
const outputPerm os.FileMode = 0o644

// ErrNoText is returned by Document.PageText for a page without a text layer.
var ErrNoText = errors.New("page has no extractable text")

// Document is an opened input document. Pages are numbered from 1.
type Document interface {
	// NumPages returns the number of pages in the document.
	NumPages() int

	// PageText returns the raw text of page n. It returns ErrNoText, or
	// another error, when the page yields no text.
	PageText(n int) (string, error)

	// Close releases the underlying file.
	Close() error
}

// Opener opens documents by path. PDFOpener is the production implementation.
type Opener interface {
	Open(path string) (Document, error)
}

// Result describes a completed notes build.
type Result struct {
	InputPath  string
	OutputPath string
	Pages      int
}

// lineEndings folds CRLF pairs and lone CRs into LF. CRLF is listed first
// so a pair becomes one newline, not two.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeText converts carriage returns to line feeds and trims leading
// and trailing whitespace.
func NormalizeText(raw string) string {
	return strings.TrimSpace(lineEndings.Replace(raw))
}

// ResolveInput joins dir and name and checks that the result is an existing
// file. When it is not, the returned *MissingInputError lists the PDF files
// present in dir.
func ResolveInput(fs afero.Fs, dir, name string) (string, error) {
	path := filepath.Join(dir, name)

	info, err := fs.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return path, nil
	case err == nil, os.IsNotExist(err):
		return "", &MissingInputError{Path: path, Candidates: listPDFs(fs, dir)}
	default:
		return "", &UnreadableDocumentError{Path: path, Err: err}
	}
}

// listPDFs returns the sorted names of regular files in dir with a .pdf
// extension, in any letter case. An unreadable dir yields no names.
func listPDFs(fs afero.Fs, dir string) []string {
	if dir == "" {
		dir = "."
	}
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// ExtractPages reads every page of doc in order and returns one record per
// page, numbered from 1. A page that yields no text gets an empty Text.
func ExtractPages(doc Document, log *zap.Logger) []types.PageRecord {
	n := doc.NumPages()
	pages := make([]types.PageRecord, 0, n)

	for i := 1; i <= n; i++ {
		raw, err := doc.PageText(i)
		switch {
		case errors.Is(err, ErrNoText):
			log.Debug("page has no text", zap.Int("page", i))
			raw = ""
		case err != nil:
			log.Warn("page text extraction failed", zap.Int("page", i), zap.Error(err))
			raw = ""
		}

		pages = append(pages, types.PageRecord{
			Page: i,
			Meta: "",
			Text: NormalizeText(raw),
		})
	}
	return pages
}

// BuildPayload assembles the notes payload. The workflow list is reserved
// and always empty.
func BuildPayload(pages []types.PageRecord) types.Payload {
	if pages == nil {
		pages = []types.PageRecord{}
	}
	return types.Payload{
		Pages:    pages,
		Workflow: []types.WorkflowSection{},
	}
}

// Run performs one notes build: resolve the input in cfg.Dir, extract all
// pages, and atomically write the script to cfg.OutputName in cfg.Dir. On
// success it prints a confirmation line to w. Errors are *MissingInputError,
// *UnreadableDocumentError, or *WriteError; no output is written on error.
func Run(fs afero.Fs, opener Opener, cfg types.NotesConfig, w io.Writer, log *zap.Logger) (Result, error) {
	inPath, err := ResolveInput(fs, cfg.Dir, cfg.InputName)
	if err != nil {
		return Result{}, err
	}
	log.Debug("opening document", zap.String("path", inPath))

	doc, err := opener.Open(inPath)
	if err != nil {
		return Result{}, &UnreadableDocumentError{Path: inPath, Err: err}
	}
	defer doc.Close()

	pages := ExtractPages(doc, log)
	log.Info("extracted pages", zap.String("path", inPath), zap.Int("pages", len(pages)))

	outPath := filepath.Join(cfg.Dir, cfg.OutputName)
	data, err := notesjs.Encode(BuildPayload(pages))
	if err != nil {
		return Result{}, &WriteError{Path: outPath, Err: err}
	}

	if err := fsutil.WriteFileAtomic(fs, outPath, data, outputPerm); err != nil {
		return Result{}, &WriteError{Path: outPath, Err: err}
	}
	log.Info("wrote notes data", zap.String("path", outPath), zap.Int("bytes", len(data)))

	fmt.Fprintf(w, "Generated %s with %d pages from %s\n", cfg.OutputName, len(pages), filepath.Base(inPath))

	return Result{
		InputPath:  inPath,
		OutputPath: outPath,
		Pages:      len(pages),
	}, nil
}
