package merger

import (
	"github.com/viant/sketchfuse/document"
	"log/slog"
	"sort"
	"strings"
)

const (
	dateLayout = "Mon Jan 02 2006"
	timeLayout = "15:04:05"
)

type placeholder struct {
	token string
	value string
}

// placeholders returns the substitution tokens in key order; date and time are built in
// unless the data defines them
func (m *Merger) placeholders() []placeholder {
	now := m.now()
	values := map[string]string{
		"date": now.Format(dateLayout),
		"time": now.Format(timeLayout),
	}
	for key, value := range m.data {
		values[key] = value
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	result := make([]placeholder, 0, len(keys))
	for _, key := range keys {
		result = append(result, placeholder{token: "{{" + key + "}}", value: values[key]})
	}
	return result
}

// Substitute replaces placeholder tokens in text
func (m *Merger) Substitute(text string) (string, bool) {
	return m.substitute(text, m.placeholders())
}

func (m *Merger) substitute(text string, placeholders []placeholder) (string, bool) {
	if !strings.Contains(text, "{{") {
		return text, false
	}
	changed := false
	for _, p := range placeholders {
		if !strings.Contains(text, p.token) {
			continue
		}
		if m.replaceFirst {
			text = strings.Replace(text, p.token, p.value, 1)
		} else {
			text = strings.ReplaceAll(text, p.token, p.value)
		}
		changed = true
	}
	return text, changed
}

// substituteText fills placeholders of every text layer and of every text override.
// Only the first attribute run is resized to the new text length.
func (s *session) substituteText() {
	placeholders := s.placeholders()
	for _, layer := range s.output.TextLayers() {
		content := layer.AttributedString
		if content == nil {
			continue
		}
		text, changed := s.substitute(content.String, placeholders)
		if !changed {
			continue
		}
		content.String = text
		if len(content.Attributes) > 0 && content.Attributes[0] != nil {
			content.Attributes[0].Length = document.TextLength(text)
		}
		s.stats.TextsSubstituted++
		s.logger.Debug("substituted text", slog.String("layer", layer.ObjectID))
	}
	for _, instance := range s.output.SymbolInstances() {
		for _, value := range instance.OverrideValues {
			if value.Path().Kind != document.OverrideStringValue {
				continue
			}
			current, ok := value.StringValue()
			if !ok {
				continue
			}
			if text, changed := s.substitute(current, placeholders); changed {
				value.SetStringValue(text)
				s.stats.TextsSubstituted++
			}
		}
	}
}
