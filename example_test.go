package mdview_test

import (
	"fmt"
	"log"

	"pkt.systems/mdview"
)

func ExampleRender() {
	nodes, err := mdview.Render([]byte("# Title\n\nSome *styled* text."))
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range nodes {
		fmt.Printf("%s: %s\n", n.Type, n.PlainText())
	}
	// Output:
	// heading1: Title
	// paragraph: Some styled text.
}

func ExampleRenderer_Render() {
	renderer, err := mdview.New(
		mdview.WithMaxTopLevelChildren(1),
		mdview.WithTopLevelMaxExceededItem(mdview.NewText("more", mdview.TypeText, nil, "[truncated]", nil)),
	)
	if err != nil {
		log.Fatal(err)
	}
	nodes, err := renderer.Render([]byte("first\n\nsecond\n\nthird"))
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range nodes {
		fmt.Println(n.PlainText())
	}
	// Output:
	// first
	// [truncated]
}
