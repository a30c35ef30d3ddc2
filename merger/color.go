package merger

import (
	"github.com/viant/sketchfuse/document"
	"log/slog"
)

// reconcileColors refreshes every swatch tagged color from the merged swatch collection:
// shared styles and shared text styles first, then every layer, children before their container.
func (s *session) reconcileColors() {
	for _, container := range []*document.SharedStyleContainer{s.output.LayerStyles, s.output.LayerTextStyles} {
		for _, style := range stylesOf(container) {
			s.reconcileStyle(style.Value)
		}
	}
	for _, page := range s.output.Pages {
		document.WalkPostOrder(page.Layers, func(layer *document.Layer) {
			s.reconcileLayer(layer)
		})
	}
}

func (s *session) reconcileLayer(layer *document.Layer) {
	s.reconcileStyle(layer.Style)
	if layer.AttributedString != nil {
		for _, run := range layer.AttributedString.Attributes {
			if run != nil && run.Attributes != nil {
				s.reconcileColor(run.Attributes.Color)
			}
		}
	}
	if layer.Class.HasBackground() {
		s.reconcileColor(layer.BackgroundColor)
	}
}

func (s *session) reconcileStyle(style *document.Style) {
	for _, color := range style.Colors() {
		s.reconcileColor(color)
	}
}

// reconcileColor overwrites the channels of a swatch tagged color; unresolved swatches are left alone
func (s *session) reconcileColor(color *document.Color) {
	if color == nil || color.SwatchID == "" {
		return
	}
	swatch := s.output.Swatches.ByID(color.SwatchID)
	if swatch == nil {
		if id, remapped := s.swatchRemap.Resolve(color.SwatchID); remapped {
			if swatch = s.output.Swatches.ByID(id); swatch != nil {
				color.SwatchID = id
			}
		}
	}
	if swatch == nil || swatch.Value == nil {
		s.logger.Debug("unresolved swatch", slog.String("swatchID", color.SwatchID))
		return
	}
	if color.SameRGBA(swatch.Value) {
		return
	}
	color.SetRGBA(swatch.Value)
	s.stats.ColorsUpdated++
}
