package mdview

import (
	"net/url"
	"strconv"
	"strings"
)

// RenderRule maps one AST node, with its children already rendered, to a
// render output. Returning nil suppresses the node.
type RenderRule func(node *ASTNode, children []*RenderNode, parent *ASTNode, styles StyleTable, ctx *RenderContext) *RenderNode

// RuleTable maps node-type keys to render rules.
type RuleTable map[string]RenderRule

// TreeRenderer renders a whole AST forest, replacing the rule-table walk.
// A plain function satisfies it through RenderFunc.
type TreeRenderer interface {
	RenderTree(forest []*ASTNode) []*RenderNode
}

// RenderFunc adapts a function to the TreeRenderer interface.
type RenderFunc func(forest []*ASTNode) []*RenderNode

// RenderTree implements TreeRenderer.
func (f RenderFunc) RenderTree(forest []*ASTNode) []*RenderNode { return f(forest) }

// buildRules generates the default rule per node type, parameterized by the
// renderer configuration, then overlays caller rules key by key.
func buildRules(cfg *config) RuleTable {
	rules := defaultRules(cfg)
	for key, rule := range cfg.rules {
		rules[key] = rule
	}
	return rules
}

var bulletGlyphs = []string{"•", "◦", "▪"}

func defaultRules(cfg *config) RuleTable {
	textLimit := cfg.textLimit

	rules := RuleTable{
		TypeBody: func(node *ASTNode, children []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
			return NewView(node.Key, node.Type, styles.ViewSafe(TypeBody), children)
		},
		TypeText: func(node *ASTNode, _ []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
			return NewText(node.Key, node.Type, styles[TypeText], truncate(node.Content, textLimit), nil)
		},
		TypeCodeInline: func(node *ASTNode, _ []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
			return NewText(node.Key, node.Type, styles[TypeCodeInline], node.Content, nil)
		},
		TypeCodeBlock: codeBlockRule(TypeCodeBlock),
		TypeFence:     codeBlockRule(TypeFence),
		TypeBlockquote: func(node *ASTNode, children []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
			return NewView(node.Key, node.Type, styles.ViewSafe(TypeBlockquote), children)
		},
		TypeBulletList:  viewRule(TypeBulletList),
		TypeOrderedList: viewRule(TypeOrderedList),
		TypeListItem: func(node *ASTNode, children []*RenderNode, _ *ASTNode, styles StyleTable, ctx *RenderContext) *RenderNode {
			marker := NewText(node.Key+"_marker", TypeText, styles[TypeText], listMarker(ctx), nil)
			items := make([]*RenderNode, 0, len(children)+1)
			items = append(items, marker)
			items = append(items, children...)
			return NewView(node.Key, node.Type, styles.ViewSafe(TypeListItem), items)
		},
		TypeTable:       viewRule(TypeTable),
		TypeTableHead:   viewRule(TypeTableHead),
		TypeTableBody:   viewRule(TypeTableBody),
		TypeTableRow:    viewRule(TypeTableRow),
		TypeTableCell:   viewRule(TypeTableCell),
		TypeTableHeader: viewRule(TypeTableHeader),
		TypeHr: func(node *ASTNode, _ []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
			return NewView(node.Key, node.Type, styles.ViewSafe(TypeHr), nil)
		},
		TypeSoftBreak: breakRule(TypeSoftBreak, " "),
		TypeHardBreak: breakRule(TypeHardBreak, "\n"),
		TypeLink: func(node *ASTNode, children []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
			rn := NewText(node.Key, node.Type, styles[TypeLink], "", children)
			rn.Href = node.Attributes["href"]
			rn.Title = node.Attributes["title"]
			rn.OnPress = linkPress(cfg, rn.Href)
			return rn
		},
		TypeImage: func(node *ASTNode, _ []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
			src, ok := resolveImageSource(cfg, node.Attributes["src"])
			if !ok {
				return nil
			}
			rn := &RenderNode{
				Key:    node.Key,
				Type:   node.Type,
				Kind:   KindImage,
				Style:  styles.ViewSafe(TypeImage),
				Source: src,
				Alt:    node.Attributes["alt"],
				Title:  node.Attributes["title"],
			}
			return rn
		},
		TypeCheckbox: func(node *ASTNode, _ []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
			return NewText(node.Key, node.Type, styles[TypeCheckbox], node.Content, nil)
		},
	}

	rules[TypeParagraph] = textWrapRule(TypeParagraph)
	rules[TypeEmphasis] = textWrapRule(TypeEmphasis)
	rules[TypeStrong] = textWrapRule(TypeStrong)
	rules[TypeStrike] = textWrapRule(TypeStrike)
	for _, typ := range []string{TypeHeading1, TypeHeading2, TypeHeading3, TypeHeading4, TypeHeading5, TypeHeading6} {
		rules[typ] = textWrapRule(typ)
	}
	return rules
}

func textWrapRule(typ string) RenderRule {
	return func(node *ASTNode, children []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
		return NewText(node.Key, node.Type, styles[typ], "", children)
	}
}

func viewRule(typ string) RenderRule {
	return func(node *ASTNode, children []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
		return NewView(node.Key, node.Type, styles.ViewSafe(typ), children)
	}
}

func breakRule(typ, text string) RenderRule {
	return func(node *ASTNode, _ []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
		return NewText(node.Key, node.Type, styles[typ], text, nil)
	}
}

func codeBlockRule(typ string) RenderRule {
	return func(node *ASTNode, _ []*RenderNode, _ *ASTNode, styles StyleTable, _ *RenderContext) *RenderNode {
		rn := NewText(node.Key, node.Type, styles[typ], strings.TrimSuffix(node.Content, "\n"), nil)
		rn.Title = node.Attributes["info"]
		return rn
	}
}

// listMarker formats the bullet or ordinal for the innermost list scope.
func listMarker(ctx *RenderContext) string {
	if len(ctx.Lists) == 0 {
		return bulletGlyphs[0] + " "
	}
	scope := ctx.Lists[len(ctx.Lists)-1]
	if scope.Ordered {
		return strconv.Itoa(scope.Start+ctx.Index) + ". "
	}
	return bulletGlyphs[(len(ctx.Lists)-1)%len(bulletGlyphs)] + " "
}

// linkPress gates activation: the target must be a well-formed URI and a
// handler must be configured, otherwise pressing is a no-op.
func linkPress(cfg *config, href string) func() {
	return func() {
		if cfg.onLinkPress == nil || href == "" {
			return
		}
		if _, err := url.ParseRequestURI(href); err != nil {
			return
		}
		cfg.onLinkPress(href)
	}
}

// resolveImageSource checks the source against the handler allow-list in
// order. The first matching prefix passes the source through unchanged; with
// no match the configured default handler prefix is prepended, and with no
// default the image is suppressed.
func resolveImageSource(cfg *config, src string) (string, bool) {
	lower := strings.ToLower(src)
	for _, prefix := range cfg.allowedImageHandlers {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return src, true
		}
	}
	if cfg.defaultImageHandler == "" {
		return "", false
	}
	return cfg.defaultImageHandler + src, true
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
