package mdview

import (
	"strings"
	"testing"
)

func TestRenderHeadingAndParagraph(t *testing.T) {
	out, err := Render([]byte("# Hello\n\nWorld"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 top-level outputs, got %d", len(out))
	}
	if out[0].Type != TypeHeading1 || out[0].PlainText() != "Hello" {
		t.Fatalf("first output must be heading1 %q, got %s %q", "Hello", out[0].Type, out[0].PlainText())
	}
	if out[1].Type != TypeParagraph || out[1].PlainText() != "World" {
		t.Fatalf("second output must be paragraph %q, got %s %q", "World", out[1].Type, out[1].PlainText())
	}
}

func TestRenderTenParagraphsCapped(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("paragraph\n\n")
	}

	out, err := Render([]byte(b.String()), WithMaxTopLevelChildren(3))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 outputs (3 + placeholder), got %d", len(out))
	}
	if out[3].Text != "…" {
		t.Fatalf("4th output must be the placeholder, got %+v", out[3])
	}
}

func TestRenderInlineStructure(t *testing.T) {
	out, err := Render([]byte("plain *em* **strong** `code` ~~gone~~"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	para := out[0]
	types := make([]string, 0, len(para.Children))
	for _, c := range para.Children {
		types = append(types, c.Type)
	}
	want := []string{TypeText, TypeEmphasis, TypeText, TypeStrong, TypeText, TypeCodeInline, TypeText, TypeStrike}
	if strings.Join(types, ",") != strings.Join(want, ",") {
		t.Fatalf("inline children mismatch:\n got %v\nwant %v", types, want)
	}
	if para.PlainText() != "plain em strong code gone" {
		t.Fatalf("plain text mismatch: %q", para.PlainText())
	}
}

func TestRenderLinkCarriesHandler(t *testing.T) {
	var pressed []string
	out, err := Render([]byte("[site](https://example.com)"),
		WithOnLinkPress(func(href string) bool {
			pressed = append(pressed, href)
			return true
		}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	link := out[0].Children[0]
	if link.Type != TypeLink || link.Href != "https://example.com" {
		t.Fatalf("expected link node, got %+v", link)
	}
	link.OnPress()
	if len(pressed) != 1 || pressed[0] != "https://example.com" {
		t.Fatalf("handler must receive the href: %v", pressed)
	}
}

func TestRenderLinkWithoutHandlerIsNoop(t *testing.T) {
	out, err := Render([]byte("[site](https://example.com)"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out[0].Children[0].OnPress() // must not panic
}

func TestRenderImageDefaultHandlerPath(t *testing.T) {
	out, err := Render([]byte("![cat](ftp://x)"),
		WithAllowedImageHandlers([]string{"https://"}),
		WithDefaultImageHandler("https://"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	img := out[0].Children[0]
	if img.Kind != KindImage {
		t.Fatalf("expected image node, got %+v", img)
	}
	if img.Source != "https://ftp://x" {
		t.Fatalf("default handler path not taken: %q", img.Source)
	}
}

func TestKeysStableAcrossWalks(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	forest, err := r.Parse([]byte("# Hi\n\ntext"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	first := r.RenderTree(forest)
	second := r.RenderTree(forest)
	if first[0].Key == "" || first[0].Key != second[0].Key {
		t.Fatalf("keys must be stable across walks of one tree: %q vs %q", first[0].Key, second[0].Key)
	}
}

func TestRenderRejectsBinaryInput(t *testing.T) {
	if _, err := Render([]byte{0x00, 0x01, 0x02}); err == nil {
		t.Fatal("binary input must be rejected")
	}
}

func TestParseDocumentFrontMatter(t *testing.T) {
	src := []byte("---\ntitle: Test Doc\ndraft: true\n---\n# Body\n")

	r, err := New()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	doc, err := r.ParseDocument(src)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Meta["title"] != "Test Doc" || doc.Meta["draft"] != true {
		t.Fatalf("front matter not decoded: %v", doc.Meta)
	}
	if len(doc.Forest) != 1 || doc.Forest[0].Type != TypeHeading1 {
		t.Fatalf("body must exclude front matter: %+v", doc.Forest)
	}
}

func TestParseDocumentFrontMatterDisabled(t *testing.T) {
	src := []byte("---\ntitle: Test\n---\nbody\n")

	r, err := New(WithFrontMatter(false))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	doc, err := r.ParseDocument(src)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Meta != nil {
		t.Fatalf("front matter stripping disabled, got meta %v", doc.Meta)
	}
}

func TestRenderGFMTable(t *testing.T) {
	src := []byte("| A | B |\n| --- | --- |\n| 1 | 2 |\n")

	out, err := Render(src)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 1 || out[0].Type != TypeTable {
		t.Fatalf("expected one table output, got %+v", out)
	}
	table := out[0]
	if len(table.Children) != 2 {
		t.Fatalf("expected thead and tbody, got %d children", len(table.Children))
	}
	if table.Children[0].Type != TypeTableHead || table.Children[1].Type != TypeTableBody {
		t.Fatalf("table sections wrong: %s %s", table.Children[0].Type, table.Children[1].Type)
	}
	headerRow := table.Children[0].Children[0]
	if headerRow.Children[0].Type != TypeTableHeader {
		t.Fatalf("header cells must be th, got %s", headerRow.Children[0].Type)
	}
}
