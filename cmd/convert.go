// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// read or fetch → extract → normalize → render → write.
//
// Nothing is written until every stage has succeeded.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/paste2md/core"
	"github.com/gaurav-prasanna/paste2md/core/extract"
	"github.com/gaurav-prasanna/paste2md/core/fetch"
	"github.com/gaurav-prasanna/paste2md/core/markdown"
	"github.com/gaurav-prasanna/paste2md/core/normalize"
	"github.com/gaurav-prasanna/paste2md/core/output"
	"github.com/gaurav-prasanna/paste2md/core/render"
)

const (
	engineRules     = "rules"
	engineReference = "reference"
)

var errUnknownEngine = errors.New("unknown engine")

// input is the HTML to convert plus where it came from.
type input struct {
	source string // file path, URL, or "-" for stdin
	data   []byte
	isURL  bool
}

func newConvertCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert HTML to Markdown and render it in the chosen format",
		Long: `Convert reads HTML from a file, from stdin, or from a URL, converts it to
Markdown with the selected flavor, and renders the result as Markdown, HTML,
JSON, or PDF. Output goes to stdout unless --output_dir is given.

Examples:
  pbpaste | paste2md convert
  paste2md convert page.html --flavor pandoc
  paste2md convert --url https://example.com --format json --output_dir ./out
  paste2md convert page.html --format pdf --output_dir ./out`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, v)
		},
	}

	f := cmd.Flags()
	f.String("url", "", "Fetch the HTML from this URL instead of a file or stdin")
	f.String("flavor", markdown.Basic.String(), "Markdown flavor: basic or pandoc")
	f.String("engine", engineRules, "Conversion engine: rules or reference")
	f.String("format", "markdown", fmt.Sprintf("Output format: one of %v", render.Formats()))
	f.Bool("extract", false, "Strip scripts, styles and form controls before converting")
	f.String("output_dir", "", "Output directory (default: stdout)")
	f.Bool("front-matter", false, "Prefix Markdown output with YAML front matter")

	if err := bindFlags(v, f, convertKeys); err != nil {
		panic(err)
	}
	return cmd
}

// convertKeys maps config keys to the convert flags that set them.
var convertKeys = map[string]string{
	"flavor":       "flavor",
	"engine":       "engine",
	"format":       "format",
	"extract":      "extract",
	"output_dir":   "output_dir",
	"front_matter": "front-matter",
}

// bindFlags binds each config key to its flag so viper resolves flag > env
// > file > default. A key naming a missing flag is an error.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := fs.Lookup(name)
		if flag == nil {
			return fmt.Errorf("binding config key %q: no flag --%s", key, name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding config key %q: %w", key, err)
		}
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string, v *viper.Viper) error {
	rawURL, _ := cmd.Flags().GetString("url")
	if rawURL != "" && len(args) > 0 {
		return fmt.Errorf("--url and a file argument are mutually exclusive")
	}

	// --- Validate settings before touching the input ---
	flavor, err := markdown.ParseFlavor(v.GetString("flavor"))
	if err != nil {
		return err
	}
	engine := v.GetString("engine")
	if engine != engineRules && engine != engineReference {
		return fmt.Errorf("%w %q (want rules or reference)", errUnknownEngine, engine)
	}
	renderer, err := render.Select(v.GetString("format"))
	if err != nil {
		return err
	}
	if mr, ok := renderer.(*render.MarkdownRenderer); ok {
		mr.FrontMatter = v.GetBool("front_matter")
	}

	// 1. Read or fetch
	var in *input
	if rawURL != "" {
		in, err = fetchInput(cmd.Context(), rawURL, fetch.New())
	} else {
		source := "-"
		if len(args) == 1 {
			source = args[0]
		}
		in, err = readInput(source, cmd.InOrStdin())
	}
	if err != nil {
		return err
	}
	verbosef(cmd, "→ Read %s (%s)\n", in.source, humanize.Bytes(uint64(len(in.data))))

	data, err := process(cmd, in, flavor, engine, v.GetBool("extract"), renderer)
	if err != nil {
		return err
	}

	// 5. Write
	writer, err := output.New(v.GetString("output_dir"), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(in.source, data, renderer.Extension())
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s (%s)\n", path, humanize.Bytes(uint64(len(data))))
	}
	return nil
}

// byteNormalizer is a core.Normalizer that also validates raw input.
type byteNormalizer interface {
	core.Normalizer
	NormalizeBytes(html []byte) (string, error)
}

// process runs one input through extract, normalize and render.
func process(
	cmd *cobra.Command,
	in *input,
	flavor markdown.Flavor,
	engine string,
	extractContent bool,
	renderer core.Renderer,
) ([]byte, error) {
	// 2-3. Extract and normalize to Markdown
	opts := []normalize.Option{normalize.WithFlavor(flavor)}
	if extractContent || in.isURL {
		opts = append(opts, normalize.WithExtractor(extract.New(extract.WithContainer(in.isURL))))
		verbosef(cmd, "→ Extracting content (container: %t)\n", in.isURL)
	}
	var normalizer byteNormalizer = normalize.New(opts...)
	if engine == engineReference {
		normalizer = normalize.NewReference(opts...)
	}
	md, err := normalizer.NormalizeBytes(in.data)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	verbosef(cmd, "→ Converted to %s Markdown with %s engine (%s)\n", flavor, engine, humanize.Bytes(uint64(len(md))))

	// 4. Render
	meta := core.DocumentMetadata{
		Source:      in.source,
		Title:       extract.Title(string(in.data)),
		Flavor:      flavor.String(),
		Engine:      engine,
		ConvertedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := renderer.Render(md, meta)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// fetchInput validates rawURL and fetches it.
func fetchInput(ctx context.Context, rawURL string, fetcher core.Fetcher) (*input, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	result, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	return &input{source: rawURL, data: []byte(result.HTML), isURL: true}, nil
}

// readInput reads a file, or stdin when source is "-".
func readInput(source string, stdin io.Reader) (*input, error) {
	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return &input{source: source, data: data}, nil
}
