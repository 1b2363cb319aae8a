// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source gives page-by-page access to the text and embedded images
// of a document. PDF parsing is delegated: ledongthuc/pdf reads the text
// layer and pdfcpu enumerates and extracts image XObjects.
package source

// Document is a paged source of text and embedded images. Page numbers are
// zero-based.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// PageText returns the plain text of a page, or "" when the page has none.
	PageText(page int) (string, error)

	// PageImages returns the images embedded in a page in a stable order.
	PageImages(page int) ([]EmbeddedImage, error)

	// Close releases the underlying file.
	Close() error
}

// EmbeddedImage is one image resource found on a page, still encoded.
type EmbeddedImage struct {
	// Index is the zero-based position of the image on its page.
	Index int

	// Name is the resource name used by the page (e.g. "Im1").
	Name string

	// ObjNr is the PDF object number of the image stream, 0 when unknown.
	ObjNr int

	// FileType is the container the raw bytes are in ("jpg", "png", "tif", ...).
	FileType string

	// Width and Height are the pixel dimensions of the image, read from the
	// encoded stream when the image dictionary does not supply them.
	Width  int
	Height int

	// Data holds the encoded image bytes, nil when the stream could not be
	// rendered.
	Data []byte
}
