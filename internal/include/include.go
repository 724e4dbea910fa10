// Package include resolves \include and scheme-load references found in
// a document into absolute filesystem paths, against an ordered search
// path built from the document's own directory and extra include roots.
package include

// RangeInfo reports the directive arguments found in one text range of a
// document, exactly as written.
type RangeInfo interface {
	// IncludeArgs returns the \include directive arguments in the range,
	// in document order.
	IncludeArgs() []string

	// SchemeLoadArgs returns the scheme load directive arguments in the
	// range, in document order.
	SchemeLoadArgs() []string
}

// DocInfo is the lexer collaborator. It classifies text ranges of one
// document and knows the document's extra include roots.
type DocInfo interface {
	// Range returns directive information for the [start, end) character
	// range of the document.
	Range(start, end int) RangeInfo

	// IncludePath returns the extra include root directories declared for
	// the document, in resolution order. The document's own directory is
	// not part of it.
	IncludePath() []string
}
