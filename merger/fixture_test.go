package merger_test

import (
	"encoding/json"
	"github.com/stretchr/testify/require"
	"github.com/viant/sketchfuse/document"
	"github.com/viant/sketchfuse/merger"
	"io"
	"log/slog"
	"testing"
	"time"
)

var fixedTime = time.Date(2022, time.February, 15, 9, 30, 0, 0, time.UTC)

func newMerger(options ...merger.Option) *merger.Merger {
	defaults := []merger.Option{
		merger.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		merger.WithClock(func() time.Time { return fixedTime }),
		merger.WithIDGenerator(func() string { return "SYMBOLS-PAGE" }),
	}
	return merger.New(append(defaults, options...)...)
}

func newDocument(id string, pages ...*document.Layer) *document.Document {
	doc := &document.Document{
		Class:           "document",
		ObjectID:        id,
		Swatches:        &document.SwatchContainer{Class: "swatchContainer"},
		LayerStyles:     &document.SharedStyleContainer{Class: "sharedStyleContainer"},
		LayerTextStyles: &document.SharedStyleContainer{Class: "sharedTextStyleContainer"},
		Pages:           pages,
	}
	doc.SyncPageRefs()
	return doc
}

func swatch(id, name, hex string) *document.Swatch {
	return &document.Swatch{Class: "swatch", ObjectID: id, Name: name, Value: document.MustParseHex(hex)}
}

func tagged(hex, swatchID string) *document.Color {
	color := document.MustParseHex(hex)
	color.SwatchID = swatchID
	return color
}

func fillStyle(id string, colors ...*document.Color) *document.Style {
	style := &document.Style{Class: "style", ObjectID: id, Fills: []*document.Paint{}}
	for _, color := range colors {
		style.Fills = append(style.Fills, &document.Paint{Class: "fill", Color: color})
	}
	return style
}

func sharedStyle(id, name string, value *document.Style) *document.SharedStyle {
	return &document.SharedStyle{Class: "sharedStyle", ObjectID: id, Name: name, Value: value}
}

func page(id, name string, layers ...*document.Layer) *document.Layer {
	result := document.NewPage(id, name)
	result.Layers = append(result.Layers, layers...)
	return result
}

func artboard(id, name string, layers ...*document.Layer) *document.Layer {
	return &document.Layer{Class: document.KindArtboard, ObjectID: id, Name: name, Frame: frame(), Layers: layers}
}

func group(id, name string, layers ...*document.Layer) *document.Layer {
	return &document.Layer{Class: document.KindGroup, ObjectID: id, Name: name, Frame: frame(), Layers: layers}
}

func master(id, name, symbolID string, layers ...*document.Layer) *document.Layer {
	return &document.Layer{Class: document.KindSymbolMaster, ObjectID: id, Name: name, SymbolID: symbolID, Frame: frame(), Layers: layers}
}

func instance(id, name, symbolID string, overrides ...*document.OverrideValue) *document.Layer {
	return &document.Layer{Class: document.KindSymbolInstance, ObjectID: id, Name: name, SymbolID: symbolID, Frame: frame(), OverrideValues: overrides}
}

func rectangle(id, name string, style *document.Style) *document.Layer {
	return &document.Layer{Class: document.KindRectangle, ObjectID: id, Name: name, Frame: frame(), Style: style}
}

func text(id, name, content string) *document.Layer {
	return &document.Layer{
		Class:    document.KindText,
		ObjectID: id,
		Name:     name,
		Frame:    frame(),
		Style:    fillStyle(id + "-style"),
		AttributedString: &document.AttributedString{
			Class:  "attributedString",
			String: content,
			Attributes: []*document.StringAttribute{
				{Class: "stringAttribute", Location: 0, Length: document.TextLength(content), Attributes: &document.TextAttributes{}},
			},
		},
	}
}

func override(name, value string) *document.OverrideValue {
	result := &document.OverrideValue{Class: "overrideValue", OverrideName: name}
	result.SetStringValue(value)
	return result
}

func frame() *document.Rect {
	return &document.Rect{Class: "rect", Width: 100, Height: 100}
}

func encoded(t *testing.T, value interface{}) string {
	data, err := json.Marshal(value)
	require.NoError(t, err)
	return string(data)
}

func fingerprint(t *testing.T, doc *document.Document) uint64 {
	value, err := doc.Fingerprint()
	require.NoError(t, err)
	return value
}
