package merger

import (
	"github.com/viant/sketchfuse/document"
	"log/slog"
)

// reassertStyles resets the snapshot of every layer referencing a shared style to the canonical value
func (s *session) reassertStyles() {
	s.output.Walk(func(layer *document.Layer) bool {
		if layer.SharedStyleID != "" {
			s.reassert(layer)
		}
		if layer.Class == document.KindSymbolInstance {
			s.relinkStyleOverrides(layer)
		}
		return true
	})
}

// sharedStyle returns the output shared style with the supplied id, layer styles first
func (s *session) sharedStyle(id string) *document.SharedStyle {
	if style := s.output.LayerStyles.ByID(id); style != nil {
		return style
	}
	return s.output.LayerTextStyles.ByID(id)
}

func (s *session) lookupStyle(id string) *document.SharedStyle {
	if style := s.sharedStyle(id); style != nil {
		return style
	}
	if remapped, ok := s.styleRemap.Resolve(id); ok {
		return s.sharedStyle(remapped)
	}
	return nil
}

func (s *session) reassert(layer *document.Layer) {
	shared := s.lookupStyle(layer.SharedStyleID)
	if shared == nil || shared.Value == nil {
		s.logger.Debug("unresolved shared style", slog.String("layer", layer.ObjectID), slog.String("sharedStyleID", layer.SharedStyleID))
		return
	}
	if layer.Style == nil {
		layer.Style = &document.Style{}
	}
	layer.Style.Assign(shared.Value, shared.ValueID())
	layer.SharedStyleID = shared.ObjectID
	s.stats.StylesReasserted++
}

// relinkStyleOverrides rewrites style swap overrides pointing at a replaced shared style
func (s *session) relinkStyleOverrides(instance *document.Layer) {
	for _, value := range instance.OverrideValues {
		switch value.Path().Kind {
		case document.OverrideLayerStyle, document.OverrideTextStyle:
		default:
			continue
		}
		id, ok := value.StringValue()
		if !ok || id == "" {
			continue
		}
		if s.sharedStyle(id) != nil {
			continue
		}
		if shared := s.lookupStyle(id); shared != nil {
			value.SetStringValue(shared.ObjectID)
			s.stats.OverridesRepaired++
		}
	}
}
