package mdview

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ListScope tracks one level of list nesting during a walk.
type ListScope struct {
	Ordered bool
	Start   int
}

// RenderContext is the ambient state threaded through one render walk. A
// context belongs to a single walk invocation and is never shared between
// concurrent renders.
type RenderContext struct {
	Depth     int
	Index     int
	Lists     []ListScope
	Truncated bool
}

func (c RenderContext) child() RenderContext {
	out := c
	out.Depth++
	out.Index = 0
	return out
}

// astRenderer walks an AST forest depth-first, consulting the rule table.
type astRenderer struct {
	rules  RuleTable
	styles StyleTable
	cfg    *config
	log    *zap.Logger
}

// Render renders a forest. Children render before their parent so every rule
// receives finished child outputs. When the top-level sequence exceeds the
// configured cap, rendering stops at the cap and the overflow placeholder is
// appended; nested children are never capped.
func (r *astRenderer) Render(forest []*ASTNode) []*RenderNode {
	if r.cfg.debugPrintTree {
		r.log.Debug("ast forest before render", zap.String("tree", dumpForest(forest)))
	}

	ctx := RenderContext{}
	capped := forest
	if max := r.cfg.maxTopLevelChildren; max > 0 && len(forest) > max {
		capped = forest[:max]
		ctx.Truncated = true
	}

	out := r.renderNodes(capped, nil, ctx)
	if ctx.Truncated {
		out = append(out, r.overflowItem())
	}
	return out
}

func (r *astRenderer) renderNodes(nodes []*ASTNode, parent *ASTNode, ctx RenderContext) []*RenderNode {
	out := make([]*RenderNode, 0, len(nodes))
	for i, node := range nodes {
		nodeCtx := ctx
		nodeCtx.Index = i
		out = append(out, r.renderNode(node, parent, nodeCtx)...)
	}
	return out
}

// renderNode returns zero outputs for suppressed nodes and more than one
// when an unknown wrapper is discarded in favor of its children.
func (r *astRenderer) renderNode(node *ASTNode, parent *ASTNode, ctx RenderContext) []*RenderNode {
	childCtx := ctx.child()
	switch node.Type {
	case TypeOrderedList:
		childCtx.Lists = append(append([]ListScope(nil), ctx.Lists...), ListScope{Ordered: true, Start: orderedStart(node)})
	case TypeBulletList:
		childCtx.Lists = append(append([]ListScope(nil), ctx.Lists...), ListScope{})
	}

	children := r.renderNodes(node.Children, node, childCtx)

	rule, known := r.rules[node.Type]
	if !known {
		// Unknown wrapper types contribute their children only.
		return children
	}
	rn := rule(node, children, parent, r.styles, &ctx)
	if rn == nil {
		return nil
	}
	return []*RenderNode{rn}
}

func (r *astRenderer) overflowItem() *RenderNode {
	if r.cfg.overflowItem != nil {
		return r.cfg.overflowItem
	}
	return NewText("mdv_overflow", TypeText, r.styles[TypeText], "…", nil)
}

func orderedStart(node *ASTNode) int {
	if s, ok := node.Attributes["start"]; ok {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

// dumpForest formats the AST for the diagnostic channel. It never mutates
// the tree and has no effect on render output.
func dumpForest(forest []*ASTNode) string {
	var b strings.Builder
	for _, node := range forest {
		dumpNode(&b, node, 0)
	}
	return b.String()
}

func dumpNode(b *strings.Builder, node *ASTNode, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString(node.Type)
	b.WriteString(" key=")
	b.WriteString(node.Key)
	if node.Content != "" {
		b.WriteString(" content=")
		b.WriteString(strconv.Quote(node.Content))
	}
	b.WriteByte('\n')
	for _, c := range node.Children {
		dumpNode(b, c, depth+1)
	}
}
