package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matforge/matforge/pkg/catalog"
	"github.com/matforge/matforge/pkg/export"
	"github.com/matforge/matforge/pkg/importer"
	pkgio "github.com/matforge/matforge/pkg/io"
	"github.com/matforge/matforge/pkg/localfetch"
	"github.com/matforge/matforge/pkg/material"
	"github.com/matforge/matforge/pkg/render/nodelink"
)

// =============================================================================
// Import Command
// =============================================================================

// importOpts holds flags for the import command.
type importOpts struct {
	output    string
	render    string
	jsonOut   bool
	owner     string
	subgraph  bool
	offline   bool
	noCache   bool
	noCatalog bool
}

// importCommand creates the import command for rebuilding material graphs.
func (c *CLI) importCommand() *cobra.Command {
	opts := &importOpts{}

	cmd := &cobra.Command{
		Use:   "import <file|asset-path>",
		Short: "Rebuild a material graph from an export document",
		Long: `Import reconstructs a material or material function expression graph from
an engine JSON export. The argument is either an export document on disk or
an asset path like /Game/Materials/M_Rock, which is fetched from the export
service (or the local export tree with --offline).

Unknown expression kinds and missing asset references never abort the run;
they are reported and the rest of the graph is still built.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the graph JSON to this file")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the graph JSON to stdout")
	cmd.Flags().StringVar(&opts.render, "render", "", "also render the graph to this .dot, .svg, or .png file")
	cmd.Flags().StringVar(&opts.owner, "owner", "", "restrict the run to records declared under this scope")
	cmd.Flags().BoolVar(&opts.subgraph, "subgraph", false, "reconstruct in isolation without attaching")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "never contact the export service")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the response cache")
	cmd.Flags().BoolVar(&opts.noCatalog, "no-catalog", false, "skip recording the session in the catalog")

	return cmd
}

// runImport loads the export records, runs the importer, and writes the
// requested outputs.
func (c *CLI) runImport(ctx context.Context, source string, opts *importOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	// With --json and no output file the graph itself goes to stdout, so
	// the summary has to stay off it.
	quiet := opts.jsonOut && opts.output == ""

	var client *localfetch.Client
	if !opts.offline {
		cl, err := c.newClient(opts.noCache)
		if err != nil {
			return err
		}
		client = cl
		defer client.Cache.Close()
	}

	doc, err := c.loadDocument(ctx, client, source)
	if err != nil {
		return err
	}
	if doc.Dropped > 0 && !quiet {
		printWarning("Dropped %d malformed export records", doc.Dropped)
	}

	dir, err := c.exportDir()
	if err != nil {
		return err
	}

	imp := importer.New(localfetch.NewRecoverer(dir, client, logger), logNotifier{logger}, logger)
	imp.Namespaces = namespaces(c.cfg.Namespaces)
	imp.Ignored = ignoredKinds(c.cfg.IgnoredKinds)
	imp.Recompile = recompileLog{logger}

	g, rep, err := imp.Import(ctx, doc.Records, importer.Options{
		Unit:            detectUnit(doc.Records),
		Owner:           opts.owner,
		Subgraph:        opts.subgraph,
		DuplicatePolicy: c.cfg.DuplicatePolicy,
	})
	if err != nil {
		return fmt.Errorf("import %s: %w", source, err)
	}
	prog.done(fmt.Sprintf("Imported %d nodes", rep.Nodes))

	if !quiet {
		printSuccess("Imported %s", StyleHighlight.Render(g.Name()))
		printStats(rep.Nodes, rep.Comments, rep.Warnings)
		for _, kind := range rep.Unsupported {
			printDetail("unsupported kind: %s", kind)
		}
		for _, ref := range rep.MissingRefs {
			printDetail("missing asset: %s", ref)
		}
	}

	c.recordSession(ctx, source, g, rep, opts.noCatalog, quiet)

	if opts.render != "" {
		if err := c.writeRender(ctx, g, opts.render, nodelink.Options{}); err != nil {
			return err
		}
		if !quiet {
			printFile(opts.render)
		}
	}

	if opts.jsonOut || opts.output != "" {
		if err := writeGraph(g, opts.output, logger); err != nil {
			return err
		}
		if opts.output != "" && !quiet {
			printFile(opts.output)
		}
	}

	if !quiet && opts.output == "" && !opts.jsonOut && opts.render == "" {
		printNextStep("Save the graph", fmt.Sprintf("%s import %s -o graph.json", appName, source))
	}

	return nil
}

// loadDocument reads export records from a local file, the local export
// tree, or the export service, depending on the source argument.
func (c *CLI) loadDocument(ctx context.Context, client *localfetch.Client, source string) (*export.Document, error) {
	if looksLikeFile(source) {
		return readDocument(source)
	}

	if client == nil {
		dir, err := c.exportDir()
		if err != nil {
			return nil, err
		}
		doc, err := readDocument(localfetch.ExportPath(dir, source))
		if err != nil {
			return nil, fmt.Errorf("%s is not in the local export tree %s (drop --offline to fetch it)", source, dir)
		}
		return doc, nil
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", source))
	spinner.Start()
	data, err := client.ExportsData(ctx, source)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			return nil, ctx.Err()
		}
		return nil, err
	}
	doc, err := export.ParseDocument(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse export for %s: %w", source, err)
	}
	return doc, nil
}

// readDocument parses an export document from a file on disk.
func readDocument(path string) (*export.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := export.ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// recordSession writes the import into the catalog unless disabled. Catalog
// trouble never fails the import.
func (c *CLI) recordSession(ctx context.Context, source string, g *material.Graph, rep *importer.Report, noCatalog, quiet bool) {
	store, err := c.newCatalog(noCatalog)
	if err != nil {
		loggerFromContext(ctx).Warn("catalog unavailable", "err", err)
		return
	}
	if store == nil {
		return
	}
	defer store.Close()

	sess := catalog.New(source, g, rep)
	if err := store.Put(ctx, sess); err != nil {
		loggerFromContext(ctx).Warn("record session", "err", err)
		return
	}
	if !quiet {
		printDetail("session %s", sess.ID)
	}
}

// =============================================================================
// Helpers
// =============================================================================

// looksLikeFile returns true if arg appears to be a file on disk rather than
// an asset path. Asset paths live under roots like /Game or /Engine and
// never carry a .json extension.
func looksLikeFile(arg string) bool {
	if _, err := os.Stat(arg); err == nil {
		return true
	}
	return strings.HasSuffix(strings.ToLower(arg), ".json")
}

// detectUnit picks the unit kind from the records. A material record wins
// over a function record when a document carries both.
func detectUnit(records []export.Record) material.UnitKind {
	unit := material.UnitMaterial
	for _, rec := range records {
		switch material.UnitKind(rec.Kind) {
		case material.UnitMaterial:
			return material.UnitMaterial
		case material.UnitFunction:
			unit = material.UnitFunction
		}
	}
	return unit
}

// writeGraph serializes g as JSON to the specified path (or stdout if empty).
// The logger is notified on success with the output path.
func writeGraph(g *material.Graph, path string, logger *log.Logger) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := pkgio.WriteJSON(g, out); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote graph to %s", path)
	}
	return nil
}

// nopCloser wraps a writer with a no-op Close, for stdout output.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// openOutput returns a writer for path, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// =============================================================================
// Importer Collaborators
// =============================================================================

// logNotifier surfaces importer notifications through the logger so stdout
// stays reserved for command output.
type logNotifier struct {
	logger *log.Logger
}

func (n logNotifier) Notify(msg string, severity importer.Severity) {
	switch severity {
	case importer.SeverityError:
		n.logger.Error(msg)
	case importer.SeverityWarning:
		n.logger.Warn(msg)
	default:
		n.logger.Info(msg)
	}
}

// recompileLog records graphs whose dependent assets changed during the
// run. The hook fires once per texture reference, so it logs at debug.
type recompileLog struct {
	logger *log.Logger
}

func (r recompileLog) OnDependentAssetChanged(graphName string) {
	r.logger.Debug("dependent asset changed, graph needs recompile", "graph", graphName)
}
