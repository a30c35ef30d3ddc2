package merger

import "log/slog"

// Stats summarizes the changes a merge applied to the output document
type Stats struct {
	Swatches          CollectionStats
	LayerStyles       CollectionStats
	TextStyles        CollectionStats
	MastersReplaced   int
	MastersInserted   int
	PagesCreated      int
	InstancesRebound  int
	OverridesRepaired int
	OverridesDangling int
	ColorsUpdated     int
	StylesReasserted  int
	TextsSubstituted  int
}

// CollectionStats counts the outcome of a named collection merge
type CollectionStats struct {
	Replaced int
	Appended int
	Kept     int
}

func (s CollectionStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("replaced", s.Replaced),
		slog.Int("appended", s.Appended),
		slog.Int("kept", s.Kept),
	)
}
