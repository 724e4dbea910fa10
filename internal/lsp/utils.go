package lsp

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"overture/internal/document"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// uriToPath converts a file: URI to a filesystem path. Anything that is
// not a file: URI is returned unchanged.
func uriToPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return parsed.Path
}

func pathToURI(path string) string {
	parsed := url.URL{Scheme: "file", Path: path}
	return parsed.String()
}

// offsetForPosition converts an LSP position to a byte offset, clamped
// to the addressed block's text. The character component counts UTF-16
// code units, as on the wire.
func offsetForPosition(doc document.Document, pos protocol.Position) int {
	block := doc.Block(int(pos.Line))
	offset := block.Position
	text := block.Text
	units := int(pos.Character)
	for units > 0 && len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		offset += size
		text = text[size:]
		units -= utf16RuneLen(r)
	}
	return offset
}

// utf16Len is the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16RuneLen(r)
	}
	return n
}

// utf16RuneLen is utf16.RuneLen for valid runes; the standard library
// function only exists from Go 1.23.
func utf16RuneLen(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

// blockRange is the LSP range spanning a whole block.
func blockRange(doc document.Document, number int) protocol.Range {
	block := doc.Block(number)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(number), Character: 0},
		End:   protocol.Position{Line: uint32(number), Character: uint32(utf16Len(block.Text))},
	}
}
