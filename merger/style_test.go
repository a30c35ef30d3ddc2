package merger_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/sketchfuse/document"
	"github.com/viant/sketchfuse/merger"
	"testing"
)

func styledRectangle(id, sharedStyleID string) *document.Layer {
	layer := rectangle(id, "Box", fillStyle(id+"-snapshot", document.MustParseHex("#FFFFFF")))
	layer.SharedStyleID = sharedStyleID
	return layer
}

func TestMerger_ReassertStyles(t *testing.T) {
	tests := []struct {
		description   string
		reuseID       bool
		sharedStyleID string
		expectShared  string
		expectValueID string
		expectHex     string
	}{
		{
			description:   "source style reasserted",
			sharedStyleID: "LS2",
			expectShared:  "LS2",
			expectValueID: "LV2",
			expectHex:     "#888888",
		},
		{
			description:   "replaced style followed to theme id",
			sharedStyleID: "LS1",
			expectShared:  "TS1",
			expectValueID: "TV1",
			expectHex:     "#00FF00",
		},
		{
			description:   "replaced style adopts source id",
			reuseID:       true,
			sharedStyleID: "LS1",
			expectShared:  "LS1",
			expectValueID: "TV1",
			expectHex:     "#00FF00",
		},
		{
			description:   "library style left untouched",
			sharedStyleID: "LIBRARY",
			expectShared:  "LIBRARY",
			expectValueID: "R1-snapshot",
			expectHex:     "#FFFFFF",
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			source := newDocument("SOURCE", page("P1", "Page 1", artboard("AB1", "Home", styledRectangle("R1", tc.sharedStyleID))))
			source.LayerStyles.Objects = []*document.SharedStyle{
				sharedStyle("LS1", "Button/Primary", fillStyle("LV1", document.MustParseHex("#FF0000"))),
				sharedStyle("LS2", "Card", fillStyle("LV2", document.MustParseHex("#888888"))),
			}
			theme := newDocument("THEME")
			theme.LayerStyles.Objects = []*document.SharedStyle{
				sharedStyle("TS1", "Button/Primary", fillStyle("TV1", document.MustParseHex("#00FF00"))),
			}

			output := merger.Seed(source)
			_, err := newMerger(merger.WithReuseStyleID(tc.reuseID)).Merge(source, theme, output)
			require.NoError(t, err)

			layer := output.LayerByID("R1")
			assert.Equal(t, tc.expectShared, layer.SharedStyleID)
			assert.Equal(t, tc.expectValueID, layer.Style.ObjectID)
			assert.Equal(t, tc.expectHex, layer.Style.Fills[0].Color.Hex())
		})
	}
}

func TestMerger_ReassertStyles_Invariant(t *testing.T) {
	label := text("T1", "Label", "Hello")
	label.SharedStyleID = "TXT1"
	source := newDocument("SOURCE", page("P1", "Page 1",
		artboard("AB1", "Home", styledRectangle("R1", "LS1"), group("G1", "Group", styledRectangle("R2", "LS2"), label)),
	))
	source.Swatches.Objects = []*document.Swatch{swatch("SW1", "Brand/Primary", "#FF0000")}
	source.LayerStyles.Objects = []*document.SharedStyle{
		sharedStyle("LS1", "Button/Primary", fillStyle("LV1", tagged("#AA0000", "SW1"))),
		sharedStyle("LS2", "Card", fillStyle("", document.MustParseHex("#888888"))),
	}
	source.LayerTextStyles.Objects = []*document.SharedStyle{
		sharedStyle("TXT1", "Body", fillStyle("TXV1", document.MustParseHex("#111111"))),
	}
	theme := newDocument("THEME")
	theme.LayerStyles.Objects = []*document.SharedStyle{
		sharedStyle("TLS1", "Button/Primary", fillStyle("TLV1", tagged("#AA0000", "SW1"))),
	}

	output := merger.Seed(source)
	stats, err := newMerger().Merge(source, theme, output)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.StylesReasserted)

	index := map[string]*document.SharedStyle{}
	for _, style := range append(output.LayerStyles.Objects, output.LayerTextStyles.Objects...) {
		index[style.ObjectID] = style
	}
	for _, layer := range output.AllLayers() {
		if layer.SharedStyleID == "" {
			continue
		}
		shared, ok := index[layer.SharedStyleID]
		require.True(t, ok, layer.ObjectID)
		expect := shared.Value.Clone()
		expect.ObjectID = shared.ValueID()
		assert.EqualValues(t, expect, layer.Style, layer.ObjectID)
	}
	assert.Equal(t, "#FF0000", output.LayerByID("R1").Style.Fills[0].Color.Hex(), "canonical colors are reconciled before reassertion")
	assert.Equal(t, "LS2", output.LayerByID("R2").Style.ObjectID, "shared style id used when the value has none")
}

func TestMerger_RelinkStyleOverrides(t *testing.T) {
	card := master("M1", "Card", "SYM1", text("A1", "Title", "Card"))
	source := newDocument("SOURCE", page("P1", "Page 1",
		artboard("AB1", "Home", instance("I1", "Card", "SYM1",
			override("A1_layerStyle", "LS1"),
			override("A1_textStyle", "LIBRARY"),
		)),
		card,
	))
	source.LayerStyles.Objects = []*document.SharedStyle{sharedStyle("LS1", "Button/Primary", fillStyle("LV1"))}
	theme := newDocument("THEME")
	theme.LayerStyles.Objects = []*document.SharedStyle{sharedStyle("TS1", "Button/Primary", fillStyle("TV1"))}

	output := merger.Seed(source)
	_, err := newMerger().Merge(source, theme, output)
	require.NoError(t, err)

	overrides := output.LayerByID("I1").OverrideValues
	value, _ := overrides[0].StringValue()
	assert.Equal(t, "TS1", value)
	value, _ = overrides[1].StringValue()
	assert.Equal(t, "LIBRARY", value)
}
