// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdfimages/internal/imaging"
)

func init() {
	// Keep pdfcpu from writing its config.yml under the user config dir.
	api.DisableConfigDir()
}

// PDF is a Document backed by a PDF file. Text and images are read by
// separate libraries over the same file handle.
type PDF struct {
	path string
	file *os.File
	ctx  *model.Context
	text *pdf.Reader
}

// Open reads and validates the PDF at path. The caller must Close it.
func Open(path string) (*PDF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading PDF %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading text layer of %s: %w", path, err)
	}

	return &PDF{
		path: path,
		file: f,
		ctx:  ctx,
		text: r,
	}, nil
}

// Path returns the file the document was opened from.
func (d *PDF) Path() string { return d.path }

// PageCount returns the number of pages reported by pdfcpu.
func (d *PDF) PageCount() int { return d.ctx.PageCount }

// PageText returns the plain text layer of a zero-based page.
func (d *PDF) PageText(page int) (string, error) {
	if err := d.checkPage(page); err != nil {
		return "", err
	}
	if page+1 > d.text.NumPage() {
		return "", nil
	}

	p := d.text.Page(page + 1)
	if p.V.IsNull() {
		return "", nil
	}

	fonts := make(map[string]*pdf.Font)
	for _, name := range p.Fonts() {
		f := p.Font(name)
		fonts[name] = &f
	}

	text, err := p.GetPlainText(fonts)
	if err != nil {
		return "", fmt.Errorf("reading text of page %d: %w", page+1, err)
	}
	return text, nil
}

// PageImages extracts the image XObjects of a zero-based page, ordered by
// object number. Images pdfcpu cannot render are returned with nil Data.
func (d *PDF) PageImages(page int) ([]EmbeddedImage, error) {
	if err := d.checkPage(page); err != nil {
		return nil, err
	}

	found, err := pdfcpu.ExtractPageImages(d.ctx, page+1, false)
	if err != nil {
		return nil, fmt.Errorf("extracting images of page %d: %w", page+1, err)
	}

	return collectImages(found, page)
}

// collectImages orders the extracted images of a page by object number and
// reads their bytes. Page thumbnails are not page content and are dropped.
// An image pdfcpu could not render keeps its position with nil Data, so the
// indexes of the images after it stay tied to their place on the page.
func collectImages(found map[int]model.Image, page int) ([]EmbeddedImage, error) {
	objNrs := make([]int, 0, len(found))
	for nr, img := range found {
		if img.Thumb {
			continue
		}
		objNrs = append(objNrs, nr)
	}
	sort.Ints(objNrs)

	images := make([]EmbeddedImage, 0, len(objNrs))
	for i, nr := range objNrs {
		img := found[nr]
		e := EmbeddedImage{
			Index:    i,
			Name:     img.Name,
			ObjNr:    nr,
			FileType: img.FileType,
			Width:    img.Width,
			Height:   img.Height,
		}
		if img.Reader != nil {
			data, err := io.ReadAll(img)
			if err != nil {
				return nil, fmt.Errorf("reading image object %d on page %d: %w", nr, page+1, err)
			}
			e.Data = data
		}
		// pdfcpu only reports dimensions for stubs; take them from the stream.
		if (e.Width <= 0 || e.Height <= 0) && len(e.Data) > 0 {
			if w, h, err := imaging.Dimensions(e.Data); err == nil {
				e.Width, e.Height = w, h
			}
		}
		images = append(images, e)
	}
	return images, nil
}

// Close closes the underlying file.
func (d *PDF) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

func (d *PDF) checkPage(page int) error {
	if page < 0 || page >= d.ctx.PageCount {
		return fmt.Errorf("page %d out of range (document has %d pages)", page+1, d.ctx.PageCount)
	}
	return nil
}
