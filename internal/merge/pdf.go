package merge

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFMerger appends PDF pages with pdfcpu. Input order is preserved.
type PDFMerger struct{}

func NewPDFMerger() *PDFMerger {
	return &PDFMerger{}
}

// Validate checks that a single document parses as a PDF, so one corrupt
// constituent can be skipped instead of failing the combined merge.
func (m *PDFMerger) Validate(doc []byte) error {
	if err := api.Validate(bytes.NewReader(doc), nil); err != nil {
		return fmt.Errorf("pdf validate: %w", err)
	}
	return nil
}

func (m *PDFMerger) Merge(docs [][]byte) ([]byte, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	readers := make([]io.ReadSeeker, len(docs))
	for i, d := range docs {
		readers[i] = bytes.NewReader(d)
	}
	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, nil); err != nil {
		return nil, fmt.Errorf("pdf merge: %w", err)
	}
	return buf.Bytes(), nil
}
