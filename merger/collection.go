package merger

// Entry is a named, identified collection member such as a swatch or a shared style
type Entry[T any] interface {
	GetID() string
	SetID(id string)
	GetName() string
	Clone() T
}

// Remap maps identifiers that no longer exist in a merged collection to the surviving identifier
type Remap map[string]string

// Resolve follows the remap chain for id
func (r Remap) Resolve(id string) (string, bool) {
	resolved, ok := r[id]
	if !ok {
		return id, false
	}
	for i := 0; i < len(r); i++ {
		next, ok := r[resolved]
		if !ok || next == resolved {
			break
		}
		resolved = next
	}
	return resolved, true
}

// MergeCollection combines source and theme entries by name.
// A theme entry replaces the first entry with the same name, otherwise it is appended.
// Later source entries sharing that name are kept, so duplicates already in source survive.
// With reuseID the replacing entry adopts the replaced identifier and its own identifier is
// remapped to it; otherwise the replaced identifier is remapped to the theme identifier.
// Inputs are never modified.
func MergeCollection[T Entry[T]](source, theme []T, reuseID bool) ([]T, Remap, CollectionStats) {
	var stats CollectionStats
	result := make([]T, 0, len(source)+len(theme))
	index := map[string]int{}
	for _, entry := range source {
		if _, ok := index[entry.GetName()]; !ok {
			index[entry.GetName()] = len(result)
		}
		result = append(result, entry.Clone())
	}
	replacedSource := map[int]bool{}
	remap := Remap{}
	for _, entry := range theme {
		incoming := entry.Clone()
		i, ok := index[incoming.GetName()]
		if !ok {
			index[incoming.GetName()] = len(result)
			result = append(result, incoming)
			stats.Appended++
			continue
		}
		replaced := result[i].GetID()
		if id := incoming.GetID(); id != replaced {
			if reuseID {
				incoming.SetID(replaced)
				remap[id] = replaced
			} else {
				remap[replaced] = id
			}
		}
		result[i] = incoming
		stats.Replaced++
		if i < len(source) {
			replacedSource[i] = true
		}
	}
	stats.Kept = len(source) - len(replacedSource)
	return result, remap, stats
}
