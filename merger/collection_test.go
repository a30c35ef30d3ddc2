package merger_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/viant/sketchfuse/document"
	"github.com/viant/sketchfuse/merger"
	"testing"
)

func TestMergeCollection(t *testing.T) {
	tests := []struct {
		description string
		source      []*document.Swatch
		theme       []*document.Swatch
		reuseID     bool
		expect      []*document.Swatch
		expectRemap merger.Remap
		expectStats merger.CollectionStats
	}{
		{
			description: "unmatched theme entry appended",
			source:      []*document.Swatch{swatch("S1", "Brand/Primary", "#FF0000")},
			theme:       []*document.Swatch{swatch("T1", "Brand/Secondary", "#00FF00")},
			expect:      []*document.Swatch{swatch("S1", "Brand/Primary", "#FF0000"), swatch("T1", "Brand/Secondary", "#00FF00")},
			expectRemap: merger.Remap{},
			expectStats: merger.CollectionStats{Appended: 1, Kept: 1},
		},
		{
			description: "matched entry replaced keeping theme id",
			source:      []*document.Swatch{swatch("S1", "Brand/Primary", "#FF0000"), swatch("S2", "Gray", "#888888")},
			theme:       []*document.Swatch{swatch("T1", "Brand/Primary", "#0000FF")},
			expect:      []*document.Swatch{swatch("T1", "Brand/Primary", "#0000FF"), swatch("S2", "Gray", "#888888")},
			expectRemap: merger.Remap{"S1": "T1"},
			expectStats: merger.CollectionStats{Replaced: 1, Kept: 1},
		},
		{
			description: "matched entry replaced adopting source id",
			source:      []*document.Swatch{swatch("S1", "Brand/Primary", "#FF0000")},
			theme:       []*document.Swatch{swatch("T1", "Brand/Primary", "#0000FF")},
			reuseID:     true,
			expect:      []*document.Swatch{swatch("S1", "Brand/Primary", "#0000FF")},
			expectRemap: merger.Remap{"T1": "S1"},
			expectStats: merger.CollectionStats{Replaced: 1},
		},
		{
			description: "name is the only key",
			source:      []*document.Swatch{swatch("X", "Brand/Primary", "#FF0000")},
			theme:       []*document.Swatch{swatch("X", "Brand/primary", "#0000FF")},
			expect:      []*document.Swatch{swatch("X", "Brand/Primary", "#FF0000"), swatch("X", "Brand/primary", "#0000FF")},
			expectRemap: merger.Remap{},
			expectStats: merger.CollectionStats{Appended: 1, Kept: 1},
		},
		{
			description: "duplicate source names replace the first only",
			source:      []*document.Swatch{swatch("S1", "Gray", "#888888"), swatch("S2", "Gray", "#777777")},
			theme:       []*document.Swatch{swatch("T1", "Gray", "#000000")},
			expect:      []*document.Swatch{swatch("T1", "Gray", "#000000"), swatch("S2", "Gray", "#777777")},
			expectRemap: merger.Remap{"S1": "T1"},
			expectStats: merger.CollectionStats{Replaced: 1, Kept: 1},
		},
		{
			description: "empty source",
			theme:       []*document.Swatch{swatch("T1", "Brand/Primary", "#0000FF")},
			expect:      []*document.Swatch{swatch("T1", "Brand/Primary", "#0000FF")},
			expectRemap: merger.Remap{},
			expectStats: merger.CollectionStats{Appended: 1},
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			sourceBefore := encoded(t, tc.source)
			themeBefore := encoded(t, tc.theme)
			actual, remap, stats := merger.MergeCollection(tc.source, tc.theme, tc.reuseID)
			assert.EqualValues(t, tc.expect, actual)
			assert.EqualValues(t, tc.expectRemap, remap)
			assert.EqualValues(t, tc.expectStats, stats)
			assert.Equal(t, sourceBefore, encoded(t, tc.source), "source must not change")
			assert.Equal(t, themeBefore, encoded(t, tc.theme), "theme must not change")
		})
	}
}

func TestMergeCollection_NameKeyed(t *testing.T) {
	source := []*document.SharedStyle{
		sharedStyle("S1", "Button/Primary", fillStyle("V1", document.MustParseHex("#FF0000"))),
		sharedStyle("S2", "Card", fillStyle("V2")),
	}
	theme := []*document.SharedStyle{
		sharedStyle("T1", "Button/Primary", fillStyle("V3", document.MustParseHex("#00FF00"))),
		sharedStyle("T2", "Badge", fillStyle("V4")),
	}
	for _, reuseID := range []bool{false, true} {
		actual, _, _ := merger.MergeCollection(source, theme, reuseID)
		for _, entry := range theme {
			var matched []*document.SharedStyle
			for _, candidate := range actual {
				if candidate.Name == entry.Name {
					matched = append(matched, candidate)
				}
			}
			if assert.Len(t, matched, 1, entry.Name) {
				assert.EqualValues(t, entry.Value, matched[0].Value)
			}
		}
		if reuseID {
			assert.Equal(t, "S1", actual[0].ObjectID)
		} else {
			assert.Equal(t, "T1", actual[0].ObjectID)
		}
	}
}

func TestRemap_Resolve(t *testing.T) {
	remap := merger.Remap{"A": "B", "B": "C", "X": "Y", "Y": "X"}
	tests := []struct {
		description string
		id          string
		expect      string
		expectOk    bool
	}{
		{description: "chain", id: "A", expect: "C", expectOk: true},
		{description: "last link", id: "B", expect: "C", expectOk: true},
		{description: "not remapped", id: "C", expect: "C"},
		{description: "cycle terminates", id: "X", expectOk: true},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual, ok := remap.Resolve(tc.id)
			assert.Equal(t, tc.expectOk, ok)
			if tc.expect != "" {
				assert.Equal(t, tc.expect, actual)
			}
		})
	}
}
