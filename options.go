package mdview

import (
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"
)

var (
	// ErrInvalidRenderer reports a renderer override that is not usable.
	ErrInvalidRenderer = errors.New("renderer override is not a render function or TreeRenderer")
	// ErrInvalidRule reports a rule override that is not callable.
	ErrInvalidRule = errors.New("rule override is nil")
	// ErrInvalidOption reports an out-of-range option value.
	ErrInvalidOption = errors.New("invalid option value")
)

// defaultAllowedImageHandlers gates which image sources render without an
// explicit allow-list.
var defaultAllowedImageHandlers = []string{
	"data:image/png;base64",
	"data:image/jpg;base64",
	"data:image/jpeg;base64",
	"http://",
	"https://",
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	renderer    TreeRenderer
	rendererSet bool

	rules      RuleTable
	styles     StyleTable
	mergeStyle bool

	onLinkPress func(href string) bool

	maxTopLevelChildren int
	overflowItem        *RenderNode

	allowedImageHandlers []string
	defaultImageHandler  string

	debugPrintTree bool
	textLimit      int

	stripFrontMatter bool

	tokenizer Tokenizer
	plugins   []goldmark.Option

	logger *zap.Logger
}

func defaultConfig() config {
	return config{
		mergeStyle:           true,
		allowedImageHandlers: defaultAllowedImageHandlers,
		stripFrontMatter:     true,
		logger:               zap.NewNop(),
	}
}

// WithRenderer replaces the rule-table walk with a full custom renderer.
// Mutually exclusive with WithRules and WithStyles; on conflict the renderer
// wins and a warning is logged.
func WithRenderer(r TreeRenderer) Option {
	return func(c *config) {
		c.renderer = r
		c.rendererSet = true
	}
}

// WithRenderFunc is WithRenderer for a plain function.
func WithRenderFunc(f RenderFunc) Option {
	return func(c *config) {
		if f == nil {
			c.renderer = nil
		} else {
			c.renderer = f
		}
		c.rendererSet = true
	}
}

// WithRules overlays individual render rules key by key over the defaults.
func WithRules(rules RuleTable) Option {
	return func(c *config) { c.rules = rules }
}

// WithStyles supplies a style override table.
func WithStyles(styles StyleTable) Option {
	return func(c *config) { c.styles = styles }
}

// WithMergeStyle selects merge (true, default) or replace semantics for
// style overrides.
func WithMergeStyle(merge bool) Option {
	return func(c *config) { c.mergeStyle = merge }
}

// WithOnLinkPress installs the link activation handler. Absent a handler,
// link activation is a no-op.
func WithOnLinkPress(fn func(href string) bool) Option {
	return func(c *config) { c.onLinkPress = fn }
}

// WithMaxTopLevelChildren caps how many top-level blocks render; 0 means
// unlimited.
func WithMaxTopLevelChildren(n int) Option {
	return func(c *config) { c.maxTopLevelChildren = n }
}

// WithTopLevelMaxExceededItem sets the placeholder appended when the
// top-level cap truncates the output.
func WithTopLevelMaxExceededItem(item *RenderNode) Option {
	return func(c *config) { c.overflowItem = item }
}

// WithAllowedImageHandlers replaces the image source prefix allow-list.
func WithAllowedImageHandlers(prefixes []string) Option {
	return func(c *config) { c.allowedImageHandlers = prefixes }
}

// WithDefaultImageHandler sets the prefix prepended to image sources that
// match no allowed handler. Empty means such images are suppressed.
func WithDefaultImageHandler(prefix string) Option {
	return func(c *config) { c.defaultImageHandler = prefix }
}

// WithDebugPrintTree dumps the built AST to the diagnostic logger before
// each render. Output is unaffected.
func WithDebugPrintTree(enabled bool) Option {
	return func(c *config) { c.debugPrintTree = enabled }
}

// WithTextLimit truncates leaf text node content to n runes; 0 means
// unlimited.
func WithTextLimit(n int) Option {
	return func(c *config) { c.textLimit = n }
}

// WithFrontMatter enables or disables YAML front matter stripping (enabled
// by default).
func WithFrontMatter(enabled bool) Option {
	return func(c *config) { c.stripFrontMatter = enabled }
}

// WithTokenizer replaces the default goldmark-backed tokenizer.
func WithTokenizer(t Tokenizer) Option {
	return func(c *config) { c.tokenizer = t }
}

// WithPlugins appends tokenizer plugin descriptors, applied in order when
// the default tokenizer is constructed. Ignored with WithTokenizer.
func WithPlugins(plugins ...goldmark.Option) Option {
	return func(c *config) { c.plugins = append(c.plugins, plugins...) }
}

// WithLogger sets the diagnostic logger. Defaults to a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// validate enforces the construction-time error taxonomy: misconfigured
// renderer or rules fail fast here, while data-dependent conditions never
// fail at render time.
func (c *config) validate() error {
	if c.rendererSet && c.renderer == nil {
		return ErrInvalidRenderer
	}
	for key, rule := range c.rules {
		if rule == nil {
			return fmt.Errorf("%w: rule %q", ErrInvalidRule, key)
		}
	}
	if c.maxTopLevelChildren < 0 {
		return fmt.Errorf("%w: maxTopLevelChildren %d", ErrInvalidOption, c.maxTopLevelChildren)
	}
	if c.textLimit < 0 {
		return fmt.Errorf("%w: textLimit %d", ErrInvalidOption, c.textLimit)
	}
	return nil
}
