// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/spf13/afero"
)

// PDFOpener opens PDF documents from a filesystem and reads their text
// layer with ledongthuc/pdf. Scanned (image-only) pages have no text layer
// and yield ErrNoText.
type PDFOpener struct {
	fs afero.Fs
}

// NewPDFOpener creates an opener reading from fs.
func NewPDFOpener(fs afero.Fs) *PDFOpener {
	return &PDFOpener{fs: fs}
}

// Open parses the cross-reference table and page tree of the PDF at path.
// The returned document holds the file open until Close.
func (o *PDFOpener) Open(path string) (doc Document, err error) {
	f, err := o.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	// The reader panics on some malformed page trees.
	defer func() {
		if r := recover(); r != nil {
			f.Close()
			doc = nil
			err = fmt.Errorf("parsing PDF %s: %v", path, r)
		}
	}()

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, fmt.Errorf("encrypted documents are not supported: %w", err)
		}
		return nil, fmt.Errorf("parsing PDF %s: %w", path, err)
	}

	return &pdfDocument{
		file:     f,
		reader:   r,
		numPages: r.NumPage(),
	}, nil
}

// pdfDocument implements Document over a ledongthuc/pdf reader.
type pdfDocument struct {
	file     afero.File
	reader   *pdf.Reader
	numPages int
}

func (d *pdfDocument) NumPages() int { return d.numPages }

func (d *pdfDocument) PageText(n int) (text string, err error) {
	if n < 1 || n > d.numPages {
		return "", fmt.Errorf("page %d out of range 1..%d", n, d.numPages)
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("page %d: %v", n, r)
		}
	}()

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", ErrNoText
	}

	// Fonts are resolved per page: resource names such as /F1 are only
	// unique within one page's resource dictionary.
	text, err = p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", n, err)
	}
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func (d *pdfDocument) Close() error {
	return d.file.Close()
}
