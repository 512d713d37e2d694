package factory

import (
	"fmt"
	"io"

	"patternbook/pkg/errors"
)

// Document is the product of the factory-method example.
type Document interface {
	// Kind returns the document format name.
	Kind() string
	// Open narrates opening the document to w.
	Open(w io.Writer)
	// Save narrates persisting the document to w.
	Save(w io.Writer)
}

// DocumentFactory is the factory method: each implementation creates one
// document format.
type DocumentFactory interface {
	Create(title string) Document
}

type wordDocument struct{ title string }

func (d wordDocument) Kind() string { return "word" }

func (d wordDocument) Open(w io.Writer) {
	fmt.Fprintf(w, "opening %s.docx in editor\n", d.title)
}

func (d wordDocument) Save(w io.Writer) {
	fmt.Fprintf(w, "saving %s.docx with rich formatting\n", d.title)
}

type pdfDocument struct{ title string }

func (d pdfDocument) Kind() string { return "pdf" }

func (d pdfDocument) Open(w io.Writer) {
	fmt.Fprintf(w, "rendering %s.pdf in viewer\n", d.title)
}

func (d pdfDocument) Save(w io.Writer) {
	fmt.Fprintf(w, "saving %s.pdf read-only\n", d.title)
}

type textDocument struct{ title string }

func (d textDocument) Kind() string { return "text" }

func (d textDocument) Open(w io.Writer) {
	fmt.Fprintf(w, "opening %s.txt as plain text\n", d.title)
}

func (d textDocument) Save(w io.Writer) {
	fmt.Fprintf(w, "saving %s.txt without formatting\n", d.title)
}

// WordFactory creates word documents.
type WordFactory struct{}

func (WordFactory) Create(title string) Document { return wordDocument{title: title} }

// PDFFactory creates pdf documents.
type PDFFactory struct{}

func (PDFFactory) Create(title string) Document { return pdfDocument{title: title} }

// TextFactory creates plain-text documents.
type TextFactory struct{}

func (TextFactory) Create(title string) Document { return textDocument{title: title} }

// DocumentFactoryFor returns the factory for a format name.
func DocumentFactoryFor(kind string) (DocumentFactory, error) {
	switch kind {
	case "word":
		return WordFactory{}, nil
	case "pdf":
		return PDFFactory{}, nil
	case "text":
		return TextFactory{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown document kind %q (available: word, pdf, text)", kind)
	}
}
