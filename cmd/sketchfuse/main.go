package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/sketchfuse/bundle"
	"github.com/viant/sketchfuse/config"
	"github.com/viant/sketchfuse/document"
	"github.com/viant/sketchfuse/merger"
	"log/slog"
	"os"
)

var (
	configURL    string
	dataURL      string
	reuseStyleID bool
	symbolsPage  string
	replaceFirst bool
	verbose      bool
	appVersion   = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:           "sketchfuse",
	Short:         "sketchfuse: merge a theme into a design document",
	Long:          "Sketchfuse transplants the swatches, shared styles and symbols of a theme document onto a source document.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var mergeCmd = &cobra.Command{
	Use:   "merge <source> <theme> <output>",
	Short: "Merge a theme into a source document",
	Long:  "Merge the theme document into the source document and write the result to output. An existing output document is merged again in place.",
	Args:  cobra.ExactArgs(3),
	RunE:  runMerge,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <document>",
	Short: "Summarize a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a default configuration file",
	RunE:  runConfigGenerate,
}

func init() {
	rootCmd.Version = appVersion
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every change")

	mergeCmd.Flags().StringVar(&configURL, "config", config.DefaultURL, "Configuration file")
	mergeCmd.Flags().StringVar(&dataURL, "data", "", "JSON or YAML file with placeholder values")
	mergeCmd.Flags().BoolVar(&reuseStyleID, "reuse-style-id", false, "Keep source identifiers for merged swatches and styles")
	mergeCmd.Flags().StringVar(&symbolsPage, "symbols-page", merger.DefaultSymbolsPage, "Page receiving new symbol masters")
	mergeCmd.Flags().BoolVar(&replaceFirst, "replace-first", false, "Replace only the first occurrence of every placeholder")

	configGenerateCmd.Flags().StringVar(&configURL, "path", config.DefaultURL, "Configuration file to create")
	configCmd.AddCommand(configGenerateCmd)
	rootCmd.AddCommand(mergeCmd, inspectCmd, configCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger()
	fs := afs.New()

	cfg, err := config.Load(ctx, fs, configURL)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("reuse-style-id") {
		cfg.ReuseStyleID = reuseStyleID
	}
	if cmd.Flags().Changed("symbols-page") {
		cfg.SymbolsPage = symbolsPage
	}
	if cmd.Flags().Changed("replace-first") {
		cfg.ReplaceFirst = replaceFirst
	}
	if dataURL != "" {
		values, err := config.LoadData(ctx, fs, dataURL)
		if err != nil {
			return err
		}
		for key, value := range values {
			cfg.Data[key] = value
		}
	}
	logger.Debug("loaded config", slog.String("url", configURL), slog.Any("placeholders", cfg.Keys()))

	documents := bundle.New(fs)
	sourceURL, themeURL, outputURL := args[0], args[1], args[2]
	source, err := documents.Load(ctx, sourceURL)
	if err != nil {
		return fmt.Errorf("failed to load source %v: %w", sourceURL, err)
	}
	theme, err := documents.Load(ctx, themeURL)
	if err != nil {
		return fmt.Errorf("failed to load theme %v: %w", themeURL, err)
	}
	output, err := loadOutput(ctx, documents, source, outputURL)
	if err != nil {
		return err
	}

	options := append(cfg.Options(), merger.WithLogger(logger))
	stats, err := merger.New(options...).Merge(source, theme, output)
	if err != nil {
		return err
	}
	if err = documents.Save(ctx, output, outputURL); err != nil {
		return fmt.Errorf("failed to save output %v: %w", outputURL, err)
	}
	fingerprint, err := output.Fingerprint()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "merged %v + %v -> %v (%016x)\n", sourceURL, themeURL, outputURL, fingerprint)
	fmt.Fprintf(cmd.OutOrStdout(), "masters: %d replaced, %d inserted; instances rebound: %d; overrides: %d repaired, %d dangling\n",
		stats.MastersReplaced, stats.MastersInserted, stats.InstancesRebound, stats.OverridesRepaired, stats.OverridesDangling)
	fmt.Fprintf(cmd.OutOrStdout(), "colors updated: %d; styles reasserted: %d; texts substituted: %d\n",
		stats.ColorsUpdated, stats.StylesReasserted, stats.TextsSubstituted)
	return nil
}

// loadOutput reloads a previous output for re-merging, or seeds a new one from source
func loadOutput(ctx context.Context, documents *bundle.Service, source *document.Document, URL string) (*document.Document, error) {
	exists, err := documents.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check output %v: %w", URL, err)
	}
	if !exists {
		return merger.Seed(source), nil
	}
	output, err := documents.Load(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load output %v: %w", URL, err)
	}
	return output, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := bundle.New(afs.New()).Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fingerprint, err := doc.Fingerprint()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "document: %v (%016x)\n", doc.ObjectID, fingerprint)
	for _, page := range doc.Pages {
		fmt.Fprintf(out, "  page %q: %d layers\n", page.Name, len(page.Sublayers()))
	}
	fmt.Fprintf(out, "layers: %d, text layers: %d, masters: %d, instances: %d\n",
		len(doc.AllLayers()), len(doc.TextLayers()), len(doc.SymbolMasters()), len(doc.SymbolInstances()))
	swatches, layerStyles, textStyles := 0, 0, 0
	if doc.Swatches != nil {
		swatches = len(doc.Swatches.Objects)
	}
	if doc.LayerStyles != nil {
		layerStyles = len(doc.LayerStyles.Objects)
	}
	if doc.LayerTextStyles != nil {
		textStyles = len(doc.LayerTextStyles.Objects)
	}
	fmt.Fprintf(out, "swatches: %d, layer styles: %d, text styles: %d\n", swatches, layerStyles, textStyles)
	return nil
}

func runConfigGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fs := afs.New()
	exists, err := fs.Exists(ctx, configURL)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("config %v already exists", configURL)
	}
	if err = config.Save(ctx, fs, config.Default(), configURL); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %v\n", configURL)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
