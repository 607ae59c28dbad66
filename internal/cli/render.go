package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matforge/matforge/pkg/io"
	"github.com/matforge/matforge/pkg/material"
	"github.com/matforge/matforge/pkg/render/nodelink"
)

// =============================================================================
// Render Command
// =============================================================================

// renderCommand creates the render command for node-link diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var output string
	var detailed bool

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Render an imported graph as a node-link diagram",
		Long: `Render reads a graph JSON file written by import and produces a Graphviz
node-link diagram. The output format follows the file extension: .dot writes
the DOT source, .svg and .png render it with the embedded Graphviz engine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], output, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, .dot, .svg, or .png (default: input name with .svg)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include editor positions and asset paths in node labels")

	return cmd
}

// runRender loads the graph from input and renders it to the requested file.
func (c *CLI) runRender(ctx context.Context, input, output string, detailed bool) error {
	g, err := pkgio.ImportJSON(input)
	if err != nil {
		return err
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}

	if err := c.writeRender(ctx, g, output, nodelink.Options{Detailed: detailed}); err != nil {
		return err
	}

	printSuccess("Rendered %s", StyleHighlight.Render(g.Name()))
	printStats(g.Len(), len(g.Comments()), 0)
	printFile(output)
	return nil
}

// writeRender writes a DOT, SVG, or PNG rendering of g, picking the format
// from the output file extension.
func (c *CLI) writeRender(ctx context.Context, g *material.Graph, path string, opts nodelink.Options) error {
	dot := nodelink.ToDOT(g, opts)

	render := nodelink.RenderSVG
	switch ext := filepath.Ext(path); ext {
	case ".dot":
		return os.WriteFile(path, []byte(dot), 0o644)
	case ".png":
		render = nodelink.RenderPNG
	case ".svg":
	default:
		return fmt.Errorf("unsupported render format %q (use .dot, .svg, or .png)", ext)
	}

	spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
	spinner.Start()
	out, err := render(ctx, dot)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			return ctx.Err()
		}
		return fmt.Errorf("render %s: %w", strings.TrimPrefix(filepath.Ext(path), "."), err)
	}
	return os.WriteFile(path, out, 0o644)
}
