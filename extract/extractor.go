package extract

import (
	"context"
	"strings"
	"unicode/utf8"
)

// minExtractedLength is the threshold below which extracted text is treated as
// a failed extraction (typically an image-only or scanned document).
const minExtractedLength = 50

// ScannedWarning replaces the extracted text when extraction yields almost
// nothing. It is a signal to the caller, not an error: the document can still
// be indexed and the caller may choose to run OCR and re-ingest.
const ScannedWarning = "[WARNING] This document appears to be an image or scanned. Text extraction failed. Please use an OCR tool."

// TextExtractor turns a binary document into plain text.
//
// Implementations report lowConfidence=true when the extraction produced too
// little text to be useful; in that case the returned text is ScannedWarning
// rather than the (near-empty) extraction output.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (text string, lowConfidence bool, err error)
}

// NormalizeExtracted applies the low-confidence contract to raw extraction
// output: text shorter than minExtractedLength characters (after trimming) is
// replaced by ScannedWarning with lowConfidence=true.
func NormalizeExtracted(text string) (string, bool) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minExtractedLength {
		return ScannedWarning, true
	}
	return text, false
}

// PlainText is a TextExtractor for documents that are already plain text.
// It exists for text resumes and as the reference implementation of the
// low-confidence contract; PDF extraction is provided by external collaborators
// implementing the same interface.
type PlainText struct{}

var _ TextExtractor = (*PlainText)(nil)

// Extract interprets data as UTF-8 text and applies the low-confidence contract.
func (PlainText) Extract(_ context.Context, data []byte) (string, bool, error) {
	text, low := NormalizeExtracted(string(data))
	return text, low, nil
}
