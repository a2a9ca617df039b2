package mdview

import (
	"fmt"

	"go.uber.org/zap"
)

// Renderer turns Markdown source into a render-node tree. Its rule and
// style tables are built once at construction and reused read-only, so a
// Renderer is safe for concurrent use.
type Renderer struct {
	cfg    config
	tok    Tokenizer
	tree   TreeRenderer
	walker *astRenderer
}

// Document is a parsed source: decoded front matter metadata plus the AST
// forest of the body.
type Document struct {
	Meta   map[string]any
	Forest []*ASTNode
}

// New builds a Renderer. Configuration errors (invalid renderer or rule
// overrides, out-of-range limits) fail here; malformed Markdown never fails
// at render time.
func New(opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("mdview: %w", err)
	}

	if cfg.renderer != nil && (len(cfg.rules) > 0 || len(cfg.styles) > 0) {
		// Precedence is fixed: the full renderer wins. Kept non-fatal for
		// callers migrating from rule overrides.
		cfg.logger.Warn("renderer override set; rules and style overrides are ignored",
			zap.Int("rules", len(cfg.rules)),
			zap.Int("styles", len(cfg.styles)))
		cfg.rules = nil
		cfg.styles = nil
	}

	r := &Renderer{cfg: cfg, tree: cfg.renderer}
	if r.tok = cfg.tokenizer; r.tok == nil {
		r.tok = NewGoldmarkTokenizer(cfg.plugins...)
	}
	if r.tree == nil {
		r.walker = &astRenderer{
			rules:  buildRules(&r.cfg),
			styles: ResolveStyles(DefaultStyles(), cfg.styles, cfg.mergeStyle),
			cfg:    &r.cfg,
			log:    cfg.logger,
		}
	}
	return r, nil
}

// Render runs the full pipeline: validate, strip front matter, tokenize,
// build the AST, walk it into render nodes.
func (r *Renderer) Render(source []byte) ([]*RenderNode, error) {
	doc, err := r.ParseDocument(source)
	if err != nil {
		return nil, err
	}
	return r.RenderTree(doc.Forest), nil
}

// Parse stops after AST construction and returns the forest.
func (r *Renderer) Parse(source []byte) ([]*ASTNode, error) {
	doc, err := r.ParseDocument(source)
	if err != nil {
		return nil, err
	}
	return doc.Forest, nil
}

// ParseDocument validates and tokenizes the source and returns the AST
// forest together with decoded front matter metadata.
func (r *Renderer) ParseDocument(source []byte) (*Document, error) {
	if err := ValidateInput(source); err != nil {
		return nil, err
	}
	doc := &Document{}
	body := source
	if r.cfg.stripFrontMatter {
		doc.Meta, body = splitFrontMatter(source)
	}
	tokens, err := r.tok.Tokenize(body)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	doc.Forest = BuildAST(tokens)
	return doc, nil
}

// RenderTree walks an already-built forest. With a full renderer override
// the override is invoked verbatim; otherwise the rule table drives the
// walk.
func (r *Renderer) RenderTree(forest []*ASTNode) []*RenderNode {
	if r.tree != nil {
		return r.tree.RenderTree(forest)
	}
	return r.walker.Render(forest)
}

// Render is a convenience wrapper constructing a one-shot Renderer.
func Render(source []byte, opts ...Option) ([]*RenderNode, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Render(source)
}
