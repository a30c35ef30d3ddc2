package merger

import (
	"context"
	"github.com/viant/sketchfuse/document"
	"log/slog"
)

// repairOverrides repairs the overrides of every output instance against its bound master.
// Instances bound to a symbol no master exposes come from an external library and are skipped.
func (s *session) repairOverrides() {
	for _, instance := range s.output.SymbolInstances() {
		if len(instance.OverrideValues) == 0 {
			continue
		}
		master := s.output.MasterBySymbolID(instance.SymbolID)
		if master == nil {
			s.logger.Debug("library symbol instance", slog.String("id", instance.ObjectID), slog.String("symbolID", instance.SymbolID))
			continue
		}
		s.repairInstance(instance, nil, master, slog.LevelDebug)
	}
}

// repairInstance rewrites override paths of instance so that they address layers of master.
// Unreachable identifiers are mapped by name: the name comes from previous, the master being
// replaced, or from the source document, and is resolved among master's sublayers.
// Dangling overrides are counted by the standalone pass only, which sees the final bindings.
func (s *session) repairInstance(instance, previous, master *document.Layer, level slog.Level) {
	if len(instance.OverrideValues) == 0 {
		return
	}
	sublayers := master.Sublayers()
	reachable := make(map[string]bool, len(sublayers))
	for _, layer := range sublayers {
		reachable[layer.ObjectID] = true
	}
	for _, value := range instance.OverrideValues {
		path := value.Path()
		changed := false
		for i, id := range path.IDs {
			if reachable[id] || (i > 0 && s.output.LayerByID(id) != nil) {
				continue
			}
			var match *document.Layer
			if name, ok := s.layerName(id, previous); ok {
				match = s.resolver.Resolve(name, sublayers)
			}
			if match == nil {
				if previous == nil {
					s.stats.OverridesDangling++
				}
				s.logger.Log(context.Background(), level, "dangling override",
					slog.String("instance", instance.ObjectID),
					slog.String("override", value.OverrideName),
					slog.String("layerID", id),
					slog.String("master", master.Name),
				)
				continue
			}
			path.IDs[i] = match.ObjectID
			changed = true
		}
		if changed {
			s.logger.Debug("repaired override",
				slog.String("instance", instance.ObjectID),
				slog.String("from", value.OverrideName),
				slog.String("to", path.String()),
			)
			value.OverrideName = path.String()
			s.stats.OverridesRepaired++
		}
	}
}

func (s *session) layerName(id string, previous *document.Layer) (string, bool) {
	if previous != nil {
		if layer := previous.FindByID(id); layer != nil {
			return layer.Name, true
		}
	}
	if layer := s.source.LayerByID(id); layer != nil {
		return layer.Name, true
	}
	return "", false
}
