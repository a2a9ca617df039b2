package mdview

// Nesting is the direction a token moves the tree cursor.
type Nesting int8

const (
	// NestingClose closes the nearest open node.
	NestingClose Nesting = -1
	// NestingSelf is a self-contained leaf token.
	NestingSelf Nesting = 0
	// NestingOpen opens a new node.
	NestingOpen Nesting = 1
)

// Token is one flat unit of tokenizer output. The stream is consumed left to
// right; Nesting reconstructs the tree.
type Token struct {
	Type     string
	Tag      string
	Nesting  Nesting
	Content  string
	Attrs    map[string]string
	Children []Token
	Map      []int
	Markup   string
}

// Node type keys produced by the builder and covered by the default rule and
// style tables.
const (
	TypeBody        = "body"
	TypeParagraph   = "paragraph"
	TypeHeading1    = "heading1"
	TypeHeading2    = "heading2"
	TypeHeading3    = "heading3"
	TypeHeading4    = "heading4"
	TypeHeading5    = "heading5"
	TypeHeading6    = "heading6"
	TypeText        = "text"
	TypeEmphasis    = "em"
	TypeStrong      = "strong"
	TypeStrike      = "s"
	TypeCodeInline  = "code_inline"
	TypeCodeBlock   = "code_block"
	TypeFence       = "fence"
	TypeBlockquote  = "blockquote"
	TypeOrderedList = "ordered_list"
	TypeBulletList  = "bullet_list"
	TypeListItem    = "list_item"
	TypeTable       = "table"
	TypeTableHead   = "thead"
	TypeTableBody   = "tbody"
	TypeTableRow    = "tr"
	TypeTableCell   = "td"
	TypeTableHeader = "th"
	TypeHr          = "hr"
	TypeSoftBreak   = "softbreak"
	TypeHardBreak   = "hardbreak"
	TypeLink        = "link"
	TypeImage       = "image"
	TypeCheckbox    = "checkbox"
)
