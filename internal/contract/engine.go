// Package contract fills Word (.docx) contract templates.
//
// A template is an ordinary .docx whose text contains placeholder tokens such
// as {{nome}}. Filling replaces the tokens in every body paragraph and every
// table-cell paragraph and forces one font onto all runs, so a contract always
// prints in the house font no matter how the template was edited.
package contract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// documentPart is the main document part inside a .docx package.
const documentPart = "word/document.xml"

// Defaults used by the front desk since the first contract template.
const (
	DefaultFontFamily = "Lato"
	DefaultFontSize   = 12
)

// Engine fills templates. The zero value is not usable; use New.
type Engine struct {
	fontFamily string
	fontSize   int
	mode       Mode
}

// New returns an Engine that normalizes runs to fontFamily at fontSize points
// and substitutes placeholders using mode. Empty or non-positive values fall
// back to the defaults.
func New(fontFamily string, fontSize int, mode Mode) *Engine {
	if fontFamily == "" {
		fontFamily = DefaultFontFamily
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	if mode == "" {
		mode = Sequential
	}
	return &Engine{fontFamily: fontFamily, fontSize: fontSize, mode: mode}
}

// Fill reads the template at templatePath and returns the filled document.
// Every failure wraps domain.ErrGenerationFailure.
func (e *Engine) Fill(templatePath string, placeholders domain.Placeholders) ([]byte, error) {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: read template: %w", domain.ErrGenerationFailure, err)
	}
	return e.FillBytes(raw, placeholders)
}

// FillBytes fills a template held in memory.
func (e *Engine) FillBytes(template []byte, placeholders domain.Placeholders) ([]byte, error) {
	if err := placeholders.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailure, err)
	}

	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("%w: open template: %w", domain.ErrGenerationFailure, err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return nil, fmt.Errorf("%w: template has no %s", domain.ErrGenerationFailure, documentPart)
	}

	filled, err := e.fillPart(part, placeholders)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrGenerationFailure, documentPart, err)
	}

	out, err := repack(zr, part.Name, filled)
	if err != nil {
		return nil, fmt.Errorf("%w: write document: %w", domain.ErrGenerationFailure, err)
	}
	return out, nil
}

// Generate fills the template and writes the result to dest. The document is
// built completely in memory first and then moved into place, so a failure
// never leaves a file at dest.
func (e *Engine) Generate(templatePath, dest string, placeholders domain.Placeholders) error {
	doc, err := e.Fill(templatePath, placeholders)
	if err != nil {
		return err
	}
	return Save(dest, doc)
}

// Save writes a filled document to dest atomically.
func Save(dest string, doc []byte) error {
	if err := writeFileAtomic(dest, doc); err != nil {
		return fmt.Errorf("%w: save %s: %w", domain.ErrGenerationFailure, dest, err)
	}
	return nil
}

func (e *Engine) fillPart(part *zip.File, placeholders domain.Placeholders) ([]byte, error) {
	rc, err := part.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	tree, err := parseTree(rc)
	if err != nil {
		return nil, err
	}
	doc, err := newWordDocument(tree)
	if err != nil {
		return nil, err
	}

	for _, p := range doc.paragraphs() {
		original := doc.paragraphText(p)
		if replaced := Substitute(original, placeholders, e.mode); replaced != original {
			doc.replaceRuns(p, replaced)
		}
		doc.applyFont(p, e.fontFamily, e.fontSize)
	}

	return serialize(tree), nil
}

// repack copies every entry of zr into a new package, swapping the contents
// of the entry called name for data. Other entries are copied compressed,
// byte for byte.
func repack(zr *zip.Reader, name string, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range zr.File {
		if f.Name != name {
			if err := zw.Copy(f); err != nil {
				return nil, err
			}
			continue
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: f.Modified,
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
	}

	if zr.Comment != "" {
		if err := zw.SetComment(zr.Comment); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to a temporary file next to dest and renames it
// over dest once the write has fully succeeded.
func writeFileAtomic(dest string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".contract-*.docx.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = io.Copy(tmp, bytes.NewReader(data)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
