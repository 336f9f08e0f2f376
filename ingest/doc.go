// Package ingest turns candidate documents into stored, embedded records.
//
// The pipeline sections raw text (via package extract), embeds the full text
// plus the skills and experience sections, and upserts the result into the
// candidate repository keyed by ID. Absent or empty sections store the
// zero-vector placeholder so the scorer can tell "no section" from "section
// that embedded near zero".
//
// IngestDocument is synchronous; IngestAll fans a batch out over an ants
// worker pool and joins the per-document failures into one error while still
// returning every record that made it in.
package ingest
