package mdview

import (
	"strings"
	"testing"
)

func TestSplitFrontMatter(t *testing.T) {
	src := []byte("---\ntitle: Hello\ntags:\n  - a\n  - b\n---\n# Body\n")

	meta, body := splitFrontMatter(src)
	if meta["title"] != "Hello" {
		t.Fatalf("title not decoded: %v", meta)
	}
	tags, ok := meta["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Fatalf("tags not decoded: %v", meta["tags"])
	}
	if !strings.HasPrefix(string(body), "# Body") {
		t.Fatalf("body wrong: %q", body)
	}
}

func TestSplitFrontMatterDotClose(t *testing.T) {
	meta, body := splitFrontMatter([]byte("---\nkey: v\n...\nrest\n"))
	if meta["key"] != "v" {
		t.Fatalf("meta not decoded: %v", meta)
	}
	if string(body) != "rest\n" {
		t.Fatalf("body wrong: %q", body)
	}
}

func TestSplitFrontMatterAbsent(t *testing.T) {
	src := []byte("# Just markdown\n")
	meta, body := splitFrontMatter(src)
	if meta != nil {
		t.Fatalf("no front matter expected, got %v", meta)
	}
	if string(body) != string(src) {
		t.Fatalf("body must pass through: %q", body)
	}
}

func TestSplitFrontMatterUnterminated(t *testing.T) {
	src := []byte("---\ntitle: open\nno close delimiter")
	meta, body := splitFrontMatter(src)
	if meta != nil || string(body) != string(src) {
		t.Fatalf("unterminated block must be plain content: %v %q", meta, body)
	}
}

func TestSplitFrontMatterInvalidYAML(t *testing.T) {
	src := []byte("---\n\t{not yaml\n---\nbody\n")
	meta, body := splitFrontMatter(src)
	if meta != nil || string(body) != string(src) {
		t.Fatalf("undecodable block must be plain content: %v %q", meta, body)
	}
}

func TestSplitFrontMatterNotAtTop(t *testing.T) {
	src := []byte("text first\n---\ntitle: x\n---\n")
	meta, body := splitFrontMatter(src)
	if meta != nil || string(body) != string(src) {
		t.Fatal("front matter must start on the first line")
	}
}
