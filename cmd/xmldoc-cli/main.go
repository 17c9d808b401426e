package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"go.dw1.io/xmldoc"
	"go.dw1.io/xmldoc/internal/pager"
)

const (
	usage = `xmldoc-cli - XML documentation comment viewer

Reads an XML documentation fragment from a file (or stdin) and shows it as
plain text or as a structured, styled document.

Usage:
   xmldoc-cli [options]
   xmldoc-cli [options] <file>

Options:
   -annotations string  Folder searched for {Assembly}.ExternalAnnotations.xml files
   -assembly string     Containing assembly name for external annotation lookup
   -symbol string       Fully-qualified display string for external annotation lookup
   -style string        Glamour style (dark, light, notty, auto) (default: auto)
   -text                Output the flat plain-text rendering only
   -json                Output the structured comment as JSON
   -pager               Browse the output in an interactive pager
   -help                Show this help message

Examples:
   # Render a documentation fragment from a file
   xmldoc-cli comment.xml

   # Render from stdin as flat text
   cat comment.xml | xmldoc-cli -text

   # Merge external annotations for a symbol
   xmldoc-cli -annotations ./annotations -assembly Contoso.Core \
      -symbol "M:Contoso.Core.Widget.Run" comment.xml
`
)

var defaultWordWrapWidth = 80

type config struct {
	annotations string
	assembly    string
	symbol      string
	style       string
	textOutput  bool
	jsonOutput  bool
	usePager    bool
}

func main() {
	cfg := config{}

	flag.StringVar(&cfg.annotations, "annotations", "", "folder searched for external annotation files")
	flag.StringVar(&cfg.assembly, "assembly", "", "containing assembly name")
	flag.StringVar(&cfg.symbol, "symbol", "", "fully-qualified display string")
	flag.StringVar(&cfg.style, "style", "auto", "glamour style (dark, light, notty, auto)")
	flag.BoolVar(&cfg.textOutput, "text", false, "output flat plain text")
	flag.BoolVar(&cfg.jsonOutput, "json", false, "output structured JSON")
	flag.BoolVar(&cfg.usePager, "pager", false, "browse output in a pager")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "too many arguments; see usage")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, path string) error {
	fragment, err := readFragment(path)
	if err != nil {
		return err
	}

	var opts []xmldoc.Option
	if cfg.annotations != "" {
		opts = append(opts, xmldoc.WithAnnotationsDir(cfg.annotations))
	}

	c := xmldoc.New(opts...)

	if cfg.textOutput {
		fmt.Println(c.Render(fragment))

		return nil
	}

	result, err := c.Resolve(xmldoc.Member{Declaration: xmldoc.Declaration{
		DisplayName:  cfg.symbol,
		AssemblyName: cfg.assembly,
		Comment:      fragment,
	}})
	if err != nil {
		return fmt.Errorf("failed to resolve documentation: %w", err)
	}

	if cfg.jsonOutput {
		return outputJSON(result)
	}

	comment, ok := result.(xmldoc.Comment)
	if !ok {
		fmt.Println(result.Text())

		return nil
	}

	return outputStyled(comment, fragment, cfg)
}

func readFragment(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(data), nil
}

func outputJSON(result xmldoc.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(data))

	return nil
}

// buildCommentMarkdown lays the structured comment out as a markdown
// document for terminal display. The core library itself renders plain text
// only; this presentation belongs to the CLI.
func buildCommentMarkdown(c xmldoc.Comment, label string) string {
	var sb strings.Builder

	if label != "" {
		sb.WriteString(fmt.Sprintf("# %s\n\n", label))
	}

	if c.Summary != "" {
		sb.WriteString(c.Summary)
		sb.WriteString("\n\n")
	}

	writeSection := func(title, text string) {
		if text == "" {
			return
		}

		sb.WriteString(fmt.Sprintf("## %s\n\n%s\n\n", title, text))
	}

	writeSection("Remarks", c.Remarks)
	writeSection("Returns", c.Returns)
	writeSection("Value", c.Value)
	writeSection("Example", c.Example)

	writeNamed := func(title string, entries map[string]string) {
		if len(entries) == 0 {
			return
		}

		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString(fmt.Sprintf("## %s\n\n", title))
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("- `%s`: %s\n", name, entries[name]))
		}
		sb.WriteString("\n")
	}

	writeNamed("Parameters", c.Params)
	writeNamed("Type parameters", c.TypeParams)

	if len(c.Exceptions) > 0 {
		sb.WriteString("## Exceptions\n\n")
		for _, e := range c.Exceptions {
			sb.WriteString(fmt.Sprintf("- `%s`: %s\n", strings.TrimSpace(e.Cref), e.Text))
		}
		sb.WriteString("\n")
	}

	if len(c.SeeAlso) > 0 {
		sb.WriteString("## See also\n\n")
		for _, ref := range c.SeeAlso {
			sb.WriteString(fmt.Sprintf("- %s\n", strings.TrimSpace(ref)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func getWordWrapWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && width > 0 {
		if width <= defaultWordWrapWidth {
			return width
		}

		return defaultWordWrapWidth
	}

	return 0
}

func outputStyled(comment xmldoc.Comment, fragment string, cfg config) error {
	markdown := buildCommentMarkdown(comment, cfg.symbol)
	if markdown == "" {
		markdown = xmldoc.Render(fragment, "\n")
	}

	renderOpts := []glamour.TermRendererOption{}
	if width := getWordWrapWidth(); width > 0 {
		renderOpts = append(renderOpts, glamour.WithWordWrap(width))
	}

	switch cfg.style {
	case "auto":
		renderOpts = append(renderOpts, glamour.WithAutoStyle())
	default:
		renderOpts = append(renderOpts, glamour.WithStandardStyle(cfg.style))
	}

	r, err := glamour.NewTermRenderer(renderOpts...)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	rendered, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	if cfg.usePager {
		return pager.Run(pager.Document{
			Content: rendered,
			Raw:     fragment,
			Label:   cfg.symbol,
		})
	}

	fmt.Print(rendered)

	return nil
}
