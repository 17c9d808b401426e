package xmldoc_test

import (
	"testing"

	"go.dw1.io/xmldoc"
)

func TestRenderEmptyFragment(t *testing.T) {
	if got := xmldoc.Render("", "\n"); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderPlainText(t *testing.T) {
	// Markup-free input: each line loses leading whitespace, keeps trailing
	// whitespace, and empty lines are dropped.
	got := xmldoc.Render("  first line  \n\n  second line  ", "\n")
	want := "first line  \nsecond line  "
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderSummary(t *testing.T) {
	got := xmldoc.Render("<summary> Hello world. </summary>", "\n")
	if got != "Hello world. " {
		t.Errorf("expected %q, got %q", "Hello world. ", got)
	}
}

func TestRenderParam(t *testing.T) {
	got := xmldoc.Render(`<param name="x">the value</param>`, "\n")
	if got != "\nx: the value" {
		t.Errorf("expected %q, got %q", "\nx: the value", got)
	}
}

func TestRenderRemarks(t *testing.T) {
	got := xmldoc.Render("<remarks>Note.</remarks>", "\n")
	if got != "\nRemarks:\nNote." {
		t.Errorf("expected %q, got %q", "\nRemarks:\nNote.", got)
	}
}

func TestRenderReturns(t *testing.T) {
	got := xmldoc.Render("<returns>The sum.</returns>", "\n")
	if got != "\nReturns: The sum." {
		t.Errorf("expected %q, got %q", "\nReturns: The sum.", got)
	}
}

func TestRenderValue(t *testing.T) {
	got := xmldoc.Render("<value>The current count.</value>", "\n")
	if got != "\nValue: \nThe current count." {
		t.Errorf("expected %q, got %q", "\nValue: \nThe current count.", got)
	}
}

func TestRenderExample(t *testing.T) {
	got := xmldoc.Render("<example>Call it once.</example>", "\n")
	if got != "\nExample:\nCall it once." {
		t.Errorf("expected %q, got %q", "\nExample:\nCall it once.", got)
	}
}

func TestRenderSee(t *testing.T) {
	got := xmldoc.Render(`<summary>Returns a <see cref="T:System.String"/>value.</summary>`, "\n")
	if got != "Returns a System.String value." {
		t.Errorf("expected %q, got %q", "Returns a System.String value.", got)
	}
}

func TestRenderSeeLangword(t *testing.T) {
	got := xmldoc.Render(`<summary>Defaults to <see langword="null"/>.</summary>`, "\n")
	if got != "Defaults to null." {
		t.Errorf("expected %q, got %q", "Defaults to null.", got)
	}
}

func TestRenderSeeAlso(t *testing.T) {
	got := xmldoc.Render(`<seealso cref="T:System.Int32"/>`, "\n")
	if got != "\nSee also: System.Int32 " {
		t.Errorf("expected %q, got %q", "\nSee also: System.Int32 ", got)
	}
}

func TestRenderException(t *testing.T) {
	got := xmldoc.Render(`<exception cref="T:System.ArgumentNullException">name is null.</exception>`, "\n")
	want := "\nSystem.ArgumentNullException: name is null."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderParamref(t *testing.T) {
	got := xmldoc.Render(`<summary>Uses <paramref name="count"/> items.</summary>`, "\n")
	if got != "Uses count items." {
		t.Errorf("expected %q, got %q", "Uses count items.", got)
	}
}

func TestRenderTypeparam(t *testing.T) {
	got := xmldoc.Render(`<typeparam name="T">the element type</typeparam>`, "\n")
	if got != "\n<T>: the element type" {
		t.Errorf("expected %q, got %q", "\n<T>: the element type", got)
	}
}

func TestRenderBrAndPara(t *testing.T) {
	if got := xmldoc.Render("one<br/>two", "\n"); got != "one\ntwo" {
		t.Errorf("expected %q, got %q", "one\ntwo", got)
	}

	if got := xmldoc.Render("<para>text</para>", "\n"); got != "\ntext" {
		t.Errorf("expected %q, got %q", "\ntext", got)
	}
}

func TestRenderCodePreservesWhitespace(t *testing.T) {
	fragment := "<code>\nif x {\n    y()\n}\n</code>"
	got := xmldoc.Render(fragment, "\n")
	want := "\nif x {\n    y()\n}\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderFilterPrioritySkipped(t *testing.T) {
	got := xmldoc.Render("<summary>Keep</summary><filterpriority>2<nested>drop</nested></filterpriority>", "\n")
	if got != "Keep" {
		t.Errorf("expected %q, got %q", "Keep", got)
	}
}

func TestRenderCaseInsensitiveTags(t *testing.T) {
	if got := xmldoc.Render("<SUMMARY>Hi</SUMMARY>", "\n"); got != "Hi" {
		t.Errorf("expected %q, got %q", "Hi", got)
	}

	if got := xmldoc.Render(`<PARAM name="x">v</PARAM>`, "\n"); got != "\nx: v" {
		t.Errorf("expected %q, got %q", "\nx: v", got)
	}
}

func TestRenderUnrecognizedTagTransparent(t *testing.T) {
	got := xmldoc.Render("<c>inline</c>", "\n")
	if got != "inline" {
		t.Errorf("expected %q, got %q", "inline", got)
	}
}

func TestRenderMultipleTopLevelElements(t *testing.T) {
	got := xmldoc.Render(`<param name="a">first</param><param name="b">second</param>`, "\n")
	want := "\na: first\nb: second"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderCustomLineEnding(t *testing.T) {
	got := xmldoc.Render("<remarks>Note.</remarks>", "\r\n")
	if got != "\r\nRemarks:\r\nNote." {
		t.Errorf("expected %q, got %q", "\r\nRemarks:\r\nNote.", got)
	}
}

func TestRenderMalformedReturnsInput(t *testing.T) {
	for _, fragment := range []string{
		"<param",
		"<summary>unterminated",
		"a & b",
		"<a></b>",
	} {
		if got := xmldoc.Render(fragment, "\n"); got != fragment {
			t.Errorf("expected malformed fragment %q returned unchanged, got %q", fragment, got)
		}
	}
}
