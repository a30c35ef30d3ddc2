package merger

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/viant/sketchfuse/document"
	"log/slog"
	"strings"
	"time"
)

// ErrNilDocument is returned when a merge input is missing
var ErrNilDocument = errors.New("document was nil")

// Merger transplants the visual language of a theme document onto a source document.
// A Merger holds configuration only and may serve concurrent merges of disjoint documents.
type Merger struct {
	reuseStyleID bool
	symbolsPage  string
	replaceFirst bool
	data         map[string]string
	resolver     Resolver
	logger       *slog.Logger
	now          func() time.Time
	newID        func() string
}

// session carries the state of a single merge call
type session struct {
	*Merger
	source      *document.Document
	theme       *document.Document
	output      *document.Document
	stats       *Stats
	swatchRemap Remap
	styleRemap  Remap
}

// New creates a merger
func New(options ...Option) *Merger {
	m := &Merger{
		symbolsPage: DefaultSymbolsPage,
		resolver:    NameResolver{},
		logger:      slog.Default(),
		now:         time.Now,
		newID:       NewID,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// NewID returns a new upper case UUID, the identifier format of the host application
func NewID() string {
	return strings.ToUpper(uuid.NewString())
}

// Seed creates a fresh output document from source
func Seed(source *document.Document) *document.Document {
	output := source.Clone()
	output.ObjectID = NewID()
	return output
}

// Merge merges source and theme into output, modifying output in place.
// Source and theme are only read. Output is usually Seed(source) or a previously merged document.
func (m *Merger) Merge(source, theme, output *document.Document) (*Stats, error) {
	switch {
	case source == nil:
		return nil, fmt.Errorf("failed to merge source: %w", ErrNilDocument)
	case theme == nil:
		return nil, fmt.Errorf("failed to merge theme: %w", ErrNilDocument)
	case output == nil:
		return nil, fmt.Errorf("failed to merge output: %w", ErrNilDocument)
	}
	s := &session{
		Merger: m,
		source: source,
		theme:  theme,
		output: output,
		stats:  &Stats{},
	}
	s.mergeCollections()
	s.injectSymbols()
	s.repairOverrides()
	s.reconcileColors()
	s.reassertStyles()
	s.substituteText()
	output.SyncPageRefs()
	s.logger.Info("merged documents",
		slog.String("source", source.ObjectID),
		slog.String("theme", theme.ObjectID),
		slog.String("output", output.ObjectID),
		slog.Int("mastersReplaced", s.stats.MastersReplaced),
		slog.Int("mastersInserted", s.stats.MastersInserted),
		slog.Int("overridesRepaired", s.stats.OverridesRepaired),
		slog.Int("overridesDangling", s.stats.OverridesDangling),
		slog.Int("colorsUpdated", s.stats.ColorsUpdated),
		slog.Int("stylesReasserted", s.stats.StylesReasserted),
		slog.Int("textsSubstituted", s.stats.TextsSubstituted),
	)
	return s.stats, nil
}

func (s *session) mergeCollections() {
	var swatches []*document.Swatch
	swatches, s.swatchRemap, s.stats.Swatches = MergeCollection(swatchesOf(s.source), swatchesOf(s.theme), s.reuseStyleID)
	s.output.Swatches = swatchShell(s.output.Swatches, s.source.Swatches, s.theme.Swatches)
	s.output.Swatches.Objects = swatches

	layerStyles, layerRemap, layerStats := MergeCollection(stylesOf(s.source.LayerStyles), stylesOf(s.theme.LayerStyles), s.reuseStyleID)
	s.output.LayerStyles = styleShell("sharedStyleContainer", s.output.LayerStyles, s.source.LayerStyles, s.theme.LayerStyles)
	s.output.LayerStyles.Objects = layerStyles
	s.stats.LayerStyles = layerStats

	textStyles, textRemap, textStats := MergeCollection(stylesOf(s.source.LayerTextStyles), stylesOf(s.theme.LayerTextStyles), s.reuseStyleID)
	s.output.LayerTextStyles = styleShell("sharedTextStyleContainer", s.output.LayerTextStyles, s.source.LayerTextStyles, s.theme.LayerTextStyles)
	s.output.LayerTextStyles.Objects = textStyles
	s.stats.TextStyles = textStats

	s.styleRemap = Remap{}
	for from, to := range layerRemap {
		s.styleRemap[from] = to
	}
	for from, to := range textRemap {
		s.styleRemap[from] = to
	}
	s.logger.Info("merged collections",
		slog.Any("swatches", s.stats.Swatches),
		slog.Any("layerStyles", s.stats.LayerStyles),
		slog.Any("textStyles", s.stats.TextStyles),
	)
}

func swatchesOf(doc *document.Document) []*document.Swatch {
	if doc.Swatches == nil {
		return nil
	}
	return doc.Swatches.Objects
}

func stylesOf(container *document.SharedStyleContainer) []*document.SharedStyle {
	if container == nil {
		return nil
	}
	return container.Objects
}

// swatchShell returns an empty container carrying the properties of the first available candidate
func swatchShell(candidates ...*document.SwatchContainer) *document.SwatchContainer {
	for _, candidate := range candidates {
		if candidate != nil {
			shell := candidate.Clone()
			shell.Objects = nil
			return shell
		}
	}
	return &document.SwatchContainer{Class: "swatchContainer"}
}

func styleShell(class string, candidates ...*document.SharedStyleContainer) *document.SharedStyleContainer {
	for _, candidate := range candidates {
		if candidate != nil {
			shell := candidate.Clone()
			shell.Objects = nil
			return shell
		}
	}
	return &document.SharedStyleContainer{Class: class}
}
