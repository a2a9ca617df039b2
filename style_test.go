package mdview

import (
	"reflect"
	"testing"
)

func TestResolveStylesMerge(t *testing.T) {
	defaults := StyleTable{
		"heading1": {"fontSize": 32, "fontWeight": "bold"},
		"link":     {"color": "blue"},
	}
	override := StyleTable{
		"heading1": {"fontSize": 20, "color": "red"},
		"custom":   {"margin": 4},
	}

	resolved := ResolveStyles(defaults, override, true)

	want := StyleObject{"fontSize": 20, "fontWeight": "bold", "color": "red"}
	if !reflect.DeepEqual(resolved["heading1"], want) {
		t.Fatalf("merged style mismatch: got %v want %v", resolved["heading1"], want)
	}
	// Untouched key equals default.
	if !reflect.DeepEqual(resolved["link"], defaults["link"]) {
		t.Fatalf("untouched key changed: %v", resolved["link"])
	}
	// Override-only keys pass through.
	if !reflect.DeepEqual(resolved["custom"], StyleObject{"margin": 4}) {
		t.Fatalf("override-only key lost: %v", resolved["custom"])
	}
}

func TestResolveStylesReplace(t *testing.T) {
	defaults := StyleTable{
		"heading1": {"fontSize": 32, "fontWeight": "bold"},
		"link":     {"color": "blue"},
	}
	override := StyleTable{
		"heading1": {"color": "red"},
	}

	resolved := ResolveStyles(defaults, override, false)

	if !reflect.DeepEqual(resolved["heading1"], StyleObject{"color": "red"}) {
		t.Fatalf("replace must not bleed defaults: %v", resolved["heading1"])
	}
	if !reflect.DeepEqual(resolved["link"], defaults["link"]) {
		t.Fatalf("un-overridden default must pass through: %v", resolved["link"])
	}
}

func TestResolveStylesViewSafe(t *testing.T) {
	defaults := StyleTable{
		"blockquote": {
			"backgroundColor": "#eee",
			"fontWeight":      "bold",
			"lineHeight":      20,
			"letterSpacing":   1,
		},
	}

	resolved := ResolveStyles(defaults, nil, true)
	safe := resolved.ViewSafe("blockquote")

	if !reflect.DeepEqual(safe, StyleObject{"backgroundColor": "#eee"}) {
		t.Fatalf("view-safe variant must strip text-only props: %v", safe)
	}
	if _, ok := resolved[ViewSafePrefix+"blockquote"]; !ok {
		t.Fatal("derived view-safe entry missing from table")
	}
	// Base entry keeps its text props.
	if resolved["blockquote"]["fontWeight"] != "bold" {
		t.Fatal("base entry must keep text props")
	}
}

func TestResolveStylesDoesNotMutateInputs(t *testing.T) {
	defaults := StyleTable{"text": {"color": "black"}}
	override := StyleTable{"text": {"color": "white"}}

	resolved := ResolveStyles(defaults, override, true)
	resolved["text"]["color"] = "green"

	if defaults["text"]["color"] != "black" || override["text"]["color"] != "white" {
		t.Fatal("resolve must copy, not alias, style objects")
	}
}

func TestDefaultStylesCoverDefaultRules(t *testing.T) {
	cfg := defaultConfig()
	rules := buildRules(&cfg)
	styles := DefaultStyles()
	for key := range rules {
		if _, ok := styles[key]; !ok {
			t.Errorf("rule %q has no default style entry", key)
		}
	}
}

func TestStyleTableFromYAML(t *testing.T) {
	data := []byte("heading1:\n  fontSize: 28\nlink:\n  color: \"#ff00ff\"\n")

	table, err := StyleTableFromYAML(data)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if table["heading1"]["fontSize"] != 28 {
		t.Fatalf("fontSize mismatch: %v", table["heading1"]["fontSize"])
	}
	if table["link"]["color"] != "#ff00ff" {
		t.Fatalf("color mismatch: %v", table["link"]["color"])
	}

	if _, err := StyleTableFromYAML([]byte("- not\n- a\n- mapping\n")); err == nil {
		t.Fatal("expected decode error for non-mapping document")
	}
}
