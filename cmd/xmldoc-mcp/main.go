package main

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.dw1.io/xmldoc"
)

type renderArgs struct {
	Fragment   string `json:"fragment" jsonschema:"raw XML documentation fragment"`
	LineEnding string `json:"line_ending,omitempty" jsonschema:"token substituted for structural newlines - empty for newline"`
}

func renderHandler(ctx context.Context, req *mcp.CallToolRequest, args renderArgs) (*mcp.CallToolResult, any, error) {
	lineEnding := args.LineEnding
	if lineEnding == "" {
		lineEnding = "\n"
	}

	text := xmldoc.Render(args.Fragment, lineEnding)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

type resolveArgs struct {
	Kind           string `json:"kind,omitempty" jsonschema:"symbol category (parameter, typeparameter, alias) - empty for any other symbol"`
	Name           string `json:"name,omitempty" jsonschema:"parameter or type parameter name"`
	DisplayName    string `json:"display_name,omitempty" jsonschema:"fully-qualified display string of the declaration"`
	Assembly       string `json:"assembly,omitempty" jsonschema:"containing assembly name"`
	Comment        string `json:"comment,omitempty" jsonschema:"declaration's raw XML documentation markup"`
	AnnotationsDir string `json:"annotations_dir,omitempty" jsonschema:"folder searched for {Assembly}.ExternalAnnotations.xml files"`
	LineEnding     string `json:"line_ending,omitempty" jsonschema:"token substituted for structural newlines - empty for newline"`
}

func resolveHandler(ctx context.Context, req *mcp.CallToolRequest, args resolveArgs) (*mcp.CallToolResult, any, error) {
	var opts []xmldoc.Option
	if args.LineEnding != "" {
		opts = append(opts, xmldoc.WithLineEnding(args.LineEnding))
	}
	if args.AnnotationsDir != "" {
		opts = append(opts, xmldoc.WithAnnotationsDir(args.AnnotationsDir))
	}

	c := xmldoc.New(opts...)

	decl := xmldoc.Declaration{
		DisplayName:  args.DisplayName,
		AssemblyName: args.Assembly,
		Comment:      args.Comment,
	}

	var sym xmldoc.Symbol
	switch args.Kind {
	case "parameter":
		sym = xmldoc.Parameter{Name: args.Name, Containing: decl}
	case "typeparameter":
		sym = xmldoc.TypeParameter{Name: args.Name, Containing: decl}
	case "alias":
		sym = xmldoc.Alias{Target: decl}
	default:
		sym = xmldoc.Member{Declaration: decl}
	}

	result, err := c.Resolve(sym)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve documentation: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: result.Text()},
		},
		Meta: map[string]any{
			"display_name": args.DisplayName,
			"assembly":     args.Assembly,
			"kind":         args.Kind,
		},
	}, result, nil
}

func main() {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "xmldoc-mcp",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render an XML documentation fragment as plain text.",
	}, renderHandler)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve documentation for a symbol, merging external annotations.",
	}, resolveHandler)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
