package extraction

import (
	"bytes"
	"log"

	"code.sajari.com/docconv"
)

// TextSource turns raw document bytes into a single plain-text stream.
// Implementations return "" (never an error) when the bytes cannot be opened
// as a paginated document; callers must treat no text as no extraction
// possible.
type TextSource interface {
	PlainText(data []byte) string
}

// DocconvSource extracts the text layer of a PDF with sajari/docconv. Pages
// are concatenated in page order with no break marker between them.
type DocconvSource struct{}

func NewDocconvSource() *DocconvSource {
	return &DocconvSource{}
}

func (s *DocconvSource) PlainText(data []byte) string {
	res, err := docconv.Convert(bytes.NewReader(data), "application/pdf", false)
	if err != nil {
		log.Printf("docconv: could not read document: %v", err)
		return ""
	}
	return res.Body
}

var _ TextSource = (*DocconvSource)(nil)
