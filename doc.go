// Package xmldoc converts XML documentation comments (the tagged comment
// format attached to .NET declarations) into human-readable plain text, and
// exposes the same comment as a structured record queryable by section name.
// It also merges in externally maintained per-assembly annotation files
// keyed by a symbol's fully-qualified display string.
//
// # API
//
// [Render] is the direct entry point for callers that only want flat text.
// [ParseComment] builds the structured [Comment] record from a fragment.
// [Converter.Resolve] is the symbol-level entry point: it picks the right
// markup source for a symbol, splices in external annotations, and returns
// either a single section or the full structured comment.
//
// # Conversion Contract
//
// All conversion operations are total. A fragment that fails to parse is
// never reported as an error: [Render] returns the original input unchanged
// and [ParseComment] falls back to a record whose summary is the raw
// fragment. Missing or unreadable annotation files are substituted with
// diagnostic placeholder text that flows into the merged documentation.
//
// # Result Types
//
// [Converter.Resolve] returns a [Result]: a [SectionText] for parameter,
// type parameter, and alias symbols, or a [Comment] for everything else.
package xmldoc
