// Package extract turns raw document bytes into sectioned plain text.
//
// Sectioning is heuristic: a fixed, ordered list of header patterns is scanned
// line by line and the text between detected headers becomes that section's
// content. The TextExtractor interface is the boundary to external extraction
// collaborators (PDF readers, OCR); this package only defines the contract and
// a plain-text implementation.
package extract
