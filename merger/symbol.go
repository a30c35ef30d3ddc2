package merger

import (
	"github.com/viant/sketchfuse/document"
	"log/slog"
)

// injectSymbols injects source masters, then theme masters, so the theme wins name ties
func (s *session) injectSymbols() {
	for _, master := range s.source.SymbolMasters() {
		s.inject(master)
	}
	for _, master := range s.theme.SymbolMasters() {
		s.inject(master)
	}
}

func (s *session) inject(master *document.Layer) {
	existing := s.resolver.Resolve(master.Name, s.output.SymbolMasters())
	if existing == nil {
		s.insert(master)
		return
	}
	s.replace(existing, master)
}

// replace repairs and rebinds every instance of existing, then overwrites existing with master
// keeping its layer identifier. Overrides are repaired while existing still holds its old children.
func (s *session) replace(existing, master *document.Layer) {
	previousSymbolID := existing.SymbolID
	for _, instance := range s.output.SymbolInstances() {
		if instance.SymbolID == previousSymbolID {
			s.repairInstance(instance, existing, master, slog.LevelWarn)
			if instance.SymbolID != master.SymbolID {
				instance.SymbolID = master.SymbolID
				s.stats.InstancesRebound++
			}
		}
		if previousSymbolID != master.SymbolID {
			s.relinkSymbolOverrides(instance, previousSymbolID, master.SymbolID)
		}
	}
	id := existing.ObjectID
	*existing = *master.Clone()
	existing.ObjectID = id
	s.stats.MastersReplaced++
	s.logger.Debug("replaced symbol master",
		slog.String("name", master.Name),
		slog.String("id", id),
		slog.String("previousSymbolID", previousSymbolID),
		slog.String("symbolID", master.SymbolID),
	)
}

// relinkSymbolOverrides rewrites nested symbol swaps pointing at a replaced component
func (s *session) relinkSymbolOverrides(instance *document.Layer, previousSymbolID, symbolID string) {
	for _, value := range instance.OverrideValues {
		if value.Path().Kind != document.OverrideSymbolID {
			continue
		}
		if current, ok := value.StringValue(); ok && current == previousSymbolID {
			value.SetStringValue(symbolID)
			s.stats.OverridesRepaired++
		}
	}
}

func (s *session) insert(master *document.Layer) {
	page, created := s.output.EnsurePage(s.symbolsPage, s.newID)
	if created {
		s.stats.PagesCreated++
		s.logger.Info("created symbols page", slog.String("name", page.Name), slog.String("id", page.ObjectID))
	}
	page.Layers = append(page.Layers, master.Clone())
	s.stats.MastersInserted++
	s.logger.Debug("inserted symbol master",
		slog.String("name", master.Name),
		slog.String("symbolID", master.SymbolID),
		slog.String("page", page.Name),
	)
}
