package mdview

// DefaultStyles returns the base style table. Every node type covered by the
// default rule table has an entry; hosts interpret the property names.
func DefaultStyles() StyleTable {
	return StyleTable{
		TypeBody:      {"fontSize": 14, "lineHeight": 20},
		TypeParagraph: {"marginTop": 10, "marginBottom": 10},
		TypeHeading1:  {"fontSize": 32, "fontWeight": "bold"},
		TypeHeading2:  {"fontSize": 24, "fontWeight": "bold"},
		TypeHeading3:  {"fontSize": 18, "fontWeight": "bold"},
		TypeHeading4:  {"fontSize": 16, "fontWeight": "bold"},
		TypeHeading5:  {"fontSize": 13, "fontWeight": "bold"},
		TypeHeading6:  {"fontSize": 11, "fontWeight": "bold"},
		TypeText:      {},
		TypeEmphasis:  {"fontStyle": "italic"},
		TypeStrong:    {"fontWeight": "bold"},
		TypeStrike:    {"textDecorationLine": "line-through"},
		TypeCodeInline: {
			"fontFamily":      "monospace",
			"backgroundColor": "#f5f5f5",
			"borderRadius":    4,
		},
		TypeCodeBlock: {
			"fontFamily":      "monospace",
			"backgroundColor": "#f5f5f5",
			"padding":         8,
			"borderRadius":    4,
		},
		TypeFence: {
			"fontFamily":      "monospace",
			"backgroundColor": "#f5f5f5",
			"padding":         8,
			"borderRadius":    4,
		},
		TypeBlockquote: {
			"backgroundColor": "#f5f5f5",
			"borderLeftWidth": 4,
			"borderColor":     "#cccccc",
			"paddingLeft":     8,
			"marginLeft":      8,
		},
		TypeOrderedList: {},
		TypeBulletList:  {},
		TypeListItem:    {"flexDirection": "row", "marginBottom": 4},
		TypeTable: {
			"borderWidth":  1,
			"borderColor":  "#333333",
			"borderRadius": 3,
		},
		TypeTableHead:   {},
		TypeTableBody:   {},
		TypeTableRow:    {"flexDirection": "row", "borderBottomWidth": 1, "borderColor": "#333333"},
		TypeTableCell:   {"flex": 1, "padding": 5},
		TypeTableHeader: {"flex": 1, "padding": 5, "fontWeight": "bold"},
		TypeHr: {
			"backgroundColor": "#cccccc",
			"height":          1,
			"marginTop":       8,
			"marginBottom":    8,
		},
		TypeSoftBreak: {},
		TypeHardBreak: {},
		TypeLink:      {"color": "#0366d6", "textDecorationLine": "underline"},
		TypeImage:     {"flex": 1},
		TypeCheckbox:  {"fontFamily": "monospace"},
	}
}
