package document

import "strings"

// Block is one line-like unit of a document. Blocks are addressed by a
// stable 0-based number and by the character offset range they cover.
type Block struct {
	Number   int
	Position int
	Text     string
}

// Length returns the number of characters the block covers, including the
// implicit line terminator. The final block of a document also counts the
// terminator, so a caret range may extend one character past the text end.
func (b Block) Length() int {
	return len(b.Text) + 1
}

// Selection is a (start, end) character-offset pair into a document. A
// caret-only cursor has Start == End.
type Selection struct {
	Start int
	End   int
}

func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Document is a read-only view of a text buffer with a known filesystem
// location. The location may be empty for unsaved buffers.
type Document interface {
	// Path returns the filesystem location of the document, or "".
	Path() string

	// Text returns the full document text.
	Text() string

	// Blocks returns all blocks in order.
	Blocks() []Block

	// Block returns the block with the given number, clamped to the
	// document's block range.
	Block(number int) Block

	// BlockAt returns the block containing the given character offset.
	// Offsets past the end of the document map to the last block.
	BlockAt(offset int) Block

	// Find returns the offset of the first occurrence of literal at or
	// after from, or -1 if there is none.
	Find(literal string, from int) int
}

// TextDocument is an immutable in-memory Document.
type TextDocument struct {
	path   string
	text   string
	blocks []Block
}

// NewTextDocument builds a document snapshot from a path and its text.
// An empty path marks an unsaved buffer.
func NewTextDocument(path, text string) *TextDocument {
	return &TextDocument{
		path:   path,
		text:   text,
		blocks: splitBlocks(text),
	}
}

// splitBlocks cuts the text into line blocks. A document always has at
// least one block, even when empty.
func splitBlocks(text string) []Block {
	var blocks []Block
	pos := 0
	for {
		end := strings.IndexByte(text[pos:], '\n')
		if end < 0 {
			blocks = append(blocks, Block{
				Number:   len(blocks),
				Position: pos,
				Text:     text[pos:],
			})
			return blocks
		}
		blocks = append(blocks, Block{
			Number:   len(blocks),
			Position: pos,
			Text:     text[pos : pos+end],
		})
		pos += end + 1
	}
}

func (d *TextDocument) Path() string {
	return d.path
}

func (d *TextDocument) Text() string {
	return d.text
}

func (d *TextDocument) Blocks() []Block {
	blocks := make([]Block, len(d.blocks))
	copy(blocks, d.blocks)
	return blocks
}

func (d *TextDocument) Block(number int) Block {
	if number < 0 {
		number = 0
	}
	if number >= len(d.blocks) {
		number = len(d.blocks) - 1
	}
	return d.blocks[number]
}

func (d *TextDocument) BlockAt(offset int) Block {
	for _, block := range d.blocks {
		if offset < block.Position+block.Length() {
			return block
		}
	}
	return d.blocks[len(d.blocks)-1]
}

func (d *TextDocument) Find(literal string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(d.text) {
		return -1
	}
	idx := strings.Index(d.text[from:], literal)
	if idx < 0 {
		return -1
	}
	return from + idx
}
