package mdview

import "testing"

func TestResolveImageSourceAllowed(t *testing.T) {
	cfg := defaultConfig()
	src, ok := resolveImageSource(&cfg, "https://example.com/pic.png")
	if !ok || src != "https://example.com/pic.png" {
		t.Fatalf("allowed source must pass through: %q %v", src, ok)
	}
}

func TestResolveImageSourceDefaultHandler(t *testing.T) {
	cfg := defaultConfig()
	cfg.allowedImageHandlers = []string{"https://"}
	cfg.defaultImageHandler = "https://"

	src, ok := resolveImageSource(&cfg, "ftp://x")
	if !ok {
		t.Fatal("default handler configured, image must not be suppressed")
	}
	if src != "https://ftp://x" {
		t.Fatalf("default handler prefix must be prepended, got %q", src)
	}
}

func TestResolveImageSourceSuppressed(t *testing.T) {
	cfg := defaultConfig()
	cfg.allowedImageHandlers = []string{"https://"}
	cfg.defaultImageHandler = ""

	if _, ok := resolveImageSource(&cfg, "ftp://x"); ok {
		t.Fatal("no match and no default must suppress the image")
	}
}

func TestResolveImageSourceCaseInsensitivePrefix(t *testing.T) {
	cfg := defaultConfig()
	cfg.allowedImageHandlers = []string{"HTTPS://"}

	if _, ok := resolveImageSource(&cfg, "https://example.com/a.png"); !ok {
		t.Fatal("prefix match must ignore case")
	}
}

func TestLinkPressWithoutHandler(t *testing.T) {
	cfg := defaultConfig()
	press := linkPress(&cfg, "https://example.com")
	press() // must be a no-op, not a panic
}

func TestLinkPressValidatesURI(t *testing.T) {
	var got []string
	cfg := defaultConfig()
	cfg.onLinkPress = func(href string) bool {
		got = append(got, href)
		return true
	}

	linkPress(&cfg, "https://example.com")()
	linkPress(&cfg, "::not a uri::")()
	linkPress(&cfg, "")()

	if len(got) != 1 || got[0] != "https://example.com" {
		t.Fatalf("only the well-formed URI may reach the handler: %v", got)
	}
}

func TestRuleOverrideWinsPerKey(t *testing.T) {
	cfg := defaultConfig()
	cfg.rules = RuleTable{
		TypeHeading1: func(node *ASTNode, children []*RenderNode, parent *ASTNode, styles StyleTable, ctx *RenderContext) *RenderNode {
			return NewText(node.Key, node.Type, nil, "OVERRIDDEN", nil)
		},
	}
	rules := buildRules(&cfg)

	node := &ASTNode{Key: "k", Type: TypeHeading1}
	out := rules[TypeHeading1](node, nil, nil, nil, &RenderContext{})
	if out.Text != "OVERRIDDEN" {
		t.Fatalf("override rule not used: %+v", out)
	}
	// Other keys keep their defaults.
	if rules[TypeParagraph] == nil || rules[TypeText] == nil {
		t.Fatal("default rules lost during merge")
	}
}

func TestTextRuleTruncation(t *testing.T) {
	cfg := defaultConfig()
	cfg.textLimit = 5
	rules := buildRules(&cfg)
	styles := ResolveStyles(DefaultStyles(), nil, true)

	node := &ASTNode{Key: "k", Type: TypeText, Content: "hello world"}
	out := rules[TypeText](node, nil, nil, styles, &RenderContext{})
	if out.Text != "hello" {
		t.Fatalf("expected truncated text, got %q", out.Text)
	}

	cfg.textLimit = 0
	rules = buildRules(&cfg)
	out = rules[TypeText](node, nil, nil, styles, &RenderContext{})
	if out.Text != "hello world" {
		t.Fatalf("zero limit means unlimited, got %q", out.Text)
	}
}

func TestListMarkerFormatting(t *testing.T) {
	cases := []struct {
		name string
		ctx  RenderContext
		want string
	}{
		{"bullet depth one", RenderContext{Lists: []ListScope{{}}}, "• "},
		{"bullet depth two", RenderContext{Lists: []ListScope{{}, {}}}, "◦ "},
		{"ordered first", RenderContext{Lists: []ListScope{{Ordered: true, Start: 1}}}, "1. "},
		{"ordered offset", RenderContext{Index: 2, Lists: []ListScope{{Ordered: true, Start: 4}}}, "6. "},
	}
	for _, tc := range cases {
		if got := listMarker(&tc.ctx); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}
