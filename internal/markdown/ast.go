package markdown

// Document is a parsed markdown document.
type Document struct {
	Blocks []Block
}

// Block is one block-level element.
type Block interface {
	blockType() blockType
}

type blockType int

const (
	blockParagraph blockType = iota
	blockHeading
	blockCode
	blockList
	blockBlockquote
	blockRule
	blockTable
)

// InlineKind tags an inline element.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineEmphasis
	InlineStrong
	InlineStrike
	InlineCode
	InlineLink
	InlineImage
	InlineLineBreak
	InlineTask
)

// Inline is a span of text, possibly with children.
type Inline struct {
	Kind        InlineKind
	Literal     string
	Children    []Inline
	Destination string
	// Checked is set on InlineTask.
	Checked bool
}

type Heading struct {
	Level int
	Text  []Inline
}

func (Heading) blockType() blockType { return blockHeading }

type Paragraph struct {
	Text []Inline
}

func (Paragraph) blockType() blockType { return blockParagraph }

type CodeBlock struct {
	Info  string
	Lines []string
}

func (CodeBlock) blockType() blockType { return blockCode }

// List is an ordered or unordered list. Start is only meaningful for
// ordered lists. Items of a tight list are laid out without blank lines
// between their blocks.
type List struct {
	Ordered bool
	Tight   bool
	Start   int
	Items   []ListItem
}

func (List) blockType() blockType { return blockList }

type ListItem struct {
	Blocks []Block
}

type Blockquote struct {
	Blocks []Block
}

func (Blockquote) blockType() blockType { return blockBlockquote }

type Rule struct{}

func (Rule) blockType() blockType { return blockRule }

type Table struct {
	Headers []string
	Rows    [][]string
	Align   []Alignment
}

func (Table) blockType() blockType { return blockTable }

// Alignment is a table column alignment.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)
