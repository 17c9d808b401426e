package xmldoc_test

import (
	"fmt"

	"go.dw1.io/xmldoc"
)

// ExampleRender demonstrates converting a documentation fragment to plain
// text.
func ExampleRender() {
	text := xmldoc.Render("<summary>Represents text as a sequence of UTF-16 code units.</summary>", "\n")
	fmt.Println(text)
	// Output: Represents text as a sequence of UTF-16 code units.
}

// ExampleParseComment demonstrates querying a structured comment by
// section.
func ExampleParseComment() {
	c := xmldoc.ParseComment(`<summary>Opens a file.</summary><param name="path">The file to open.</param>`, "\n")
	fmt.Println(c.Summary)
	fmt.Println(c.Param("path"))
	// Output:
	// Opens a file.
	// The file to open.
}

// ExampleConverter_Resolve demonstrates resolving a member symbol to its
// structured comment.
func ExampleConverter_Resolve() {
	c := xmldoc.New()

	result, err := c.Resolve(xmldoc.Member{Declaration: xmldoc.Declaration{
		Comment: "<summary>A reusable widget.</summary>",
	}})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(result.Text())
	// Output: A reusable widget.
}

// ExampleConverter_Resolve_parameter demonstrates resolving a single
// parameter's documentation.
func ExampleConverter_Resolve_parameter() {
	c := xmldoc.New()

	result, err := c.Resolve(xmldoc.Parameter{
		Name: "count",
		Containing: xmldoc.Declaration{
			Comment: `<param name="count">The number of items.</param>`,
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(result.Text())
	// Output: The number of items.
}
