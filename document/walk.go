package document

// WalkFunc visits a layer; returning false skips the layer's children
type WalkFunc func(layer *Layer) bool

// Walk traverses layers depth-first in pre-order, descending into containers only
func Walk(layers []*Layer, fn WalkFunc) {
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if !fn(layer) {
			continue
		}
		if layer.Class.IsContainer() {
			Walk(layer.Layers, fn)
		}
	}
}

// WalkPostOrder traverses layers depth-first, visiting a container's children before the container
func WalkPostOrder(layers []*Layer, fn func(layer *Layer)) {
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if layer.Class.IsContainer() {
			WalkPostOrder(layer.Layers, fn)
		}
		fn(layer)
	}
}

// Walk traverses every layer of every page in pre-order; pages themselves are not visited
func (d *Document) Walk(fn WalkFunc) {
	for _, page := range d.Pages {
		Walk(page.Layers, fn)
	}
}

// AllLayers returns every layer below the pages in pre-order
func (d *Document) AllLayers() []*Layer {
	return d.collect(func(*Layer) bool { return true })
}

// TextLayers returns every text layer
func (d *Document) TextLayers() []*Layer {
	return d.collect(func(layer *Layer) bool { return layer.Class == KindText })
}

// SymbolMasters returns every symbol master
func (d *Document) SymbolMasters() []*Layer {
	return d.collect(func(layer *Layer) bool { return layer.Class == KindSymbolMaster })
}

// SymbolInstances returns every symbol instance
func (d *Document) SymbolInstances() []*Layer {
	return d.collect(func(layer *Layer) bool { return layer.Class == KindSymbolInstance })
}

// LayerByID returns the layer with the supplied id
func (d *Document) LayerByID(id string) *Layer {
	var found *Layer
	d.Walk(func(layer *Layer) bool {
		if found != nil {
			return false
		}
		if layer.ObjectID == id {
			found = layer
			return false
		}
		return true
	})
	return found
}

// MasterBySymbolID returns the symbol master exposing the supplied component id
func (d *Document) MasterBySymbolID(symbolID string) *Layer {
	for _, master := range d.SymbolMasters() {
		if master.SymbolID == symbolID {
			return master
		}
	}
	return nil
}

func (d *Document) collect(match func(*Layer) bool) []*Layer {
	var result []*Layer
	d.Walk(func(layer *Layer) bool {
		if match(layer) {
			result = append(result, layer)
		}
		return true
	})
	return result
}
