package merger

import "github.com/viant/sketchfuse/document"

// Resolver finds the layer corresponding to a name among candidates.
// Candidates are supplied in traversal order.
type Resolver interface {
	Resolve(name string, candidates []*document.Layer) *document.Layer
}

// NameResolver matches layers by exact name, first candidate wins
type NameResolver struct{}

func (NameResolver) Resolve(name string, candidates []*document.Layer) *document.Layer {
	for _, candidate := range candidates {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}
