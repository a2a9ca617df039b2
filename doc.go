// Package mdview renders Markdown as a tree of native view descriptors.
//
// Instead of HTML, the renderer produces RenderNode values (view, text and
// image primitives) that a host UI framework composes. The pipeline is
// tokenize, rebuild nesting from the flat token stream, then walk the tree
// with a per-node-type rule table that merges caller style and rule
// overrides over defaults.
//
// Core properties:
//   - Stable node keys for incremental host-side diffing
//   - Rule table overridable wholesale or per node type
//   - Style merge/replace with view-safe variants for containers
//   - Malformed input degrades, misconfiguration fails construction
//
// Example:
//
//	nodes, err := mdview.Render([]byte("# Hello\n\nMarkdown in, views out."))
//	if err != nil {
//		log.Fatal(err)
//	}
//	out := termview.New(termview.DefaultTheme(), 80).Render(nodes)
//	fmt.Print(out)
//
// The termview subpackage is one host: it paints the render tree as ANSI
// styled text for terminals.
package mdview
