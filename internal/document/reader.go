package document

import (
	"errors"
	"fmt"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// ErrUnreadable marks document bytes the PDF engine cannot parse at all.
// Callers surface it per file rather than aborting a whole batch.
var ErrUnreadable = errors.New("document is not a readable PDF")

// Reader extracts plain text from settlement PDFs using MuPDF.
type Reader struct {
	logger *zap.Logger
}

// NewReader creates a PDF text reader.
func NewReader(logger *zap.Logger) *Reader {
	return &Reader{logger: logger}
}

// ExtractPages returns the plain text of every page of the document, in
// page order. Malformed input fails with ErrUnreadable instead of returning
// partial garbage.
func (r *Reader) ExtractPages(data []byte) ([]string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		r.logger.Warn("Failed to open document", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := make([]string, 0, pageCount)
	for n := 0; n < pageCount; n++ {
		text, err := doc.Text(n)
		if err != nil {
			r.logger.Warn("Failed to extract page text",
				zap.Int("page", n),
				zap.Error(err))
			return nil, fmt.Errorf("%w: page %d: %v", ErrUnreadable, n, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}
