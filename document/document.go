package document

import (
	"encoding/json"
	"path"
)

const (
	fileRefClass = "MSJSONFileReference"
	pageRefClass = "MSImmutablePage"
	// PagesFolder holds page files relative to the bundle root
	PagesFolder = "pages"
)

// Document is the root of a design document: pages plus the shared collections
type Document struct {
	Class           string                `json:"_class"`
	ObjectID        string                `json:"do_objectID"`
	Swatches        *SwatchContainer      `json:"sharedSwatches"`
	LayerStyles     *SharedStyleContainer `json:"layerStyles"`
	LayerTextStyles *SharedStyleContainer `json:"layerTextStyles"`
	PageRefs        []*FileRef            `json:"pages"`
	Pages           []*Layer              `json:"-"`
	Meta            json.RawMessage       `json:"-"`
	User            json.RawMessage       `json:"-"`
	rest            Properties
}

type documentAlias Document

func (d *Document) UnmarshalJSON(data []byte) error {
	var err error
	d.rest, err = decode(data, (*documentAlias)(d))
	return err
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return encode((*documentAlias)(d), d.rest)
}

// FileRef references a page stored in its own file
type FileRef struct {
	Class    string `json:"_class"`
	RefClass string `json:"_ref_class"`
	Ref      string `json:"_ref"`
}

// PageID returns the page identifier the reference points at
func (r *FileRef) PageID() string {
	return path.Base(r.Ref)
}

// SyncPageRefs rebuilds PageRefs from Pages
func (d *Document) SyncPageRefs() {
	d.PageRefs = make([]*FileRef, 0, len(d.Pages))
	for _, page := range d.Pages {
		d.PageRefs = append(d.PageRefs, &FileRef{
			Class:    fileRefClass,
			RefClass: pageRefClass,
			Ref:      path.Join(PagesFolder, page.ObjectID),
		})
	}
}

// PageByName returns the first page with the supplied name
func (d *Document) PageByName(name string) *Layer {
	for _, page := range d.Pages {
		if page.Name == name {
			return page
		}
	}
	return nil
}

// EnsurePage returns the page with the supplied name, appending a new one created with newID if absent
func (d *Document) EnsurePage(name string, newID func() string) (*Layer, bool) {
	if page := d.PageByName(name); page != nil {
		return page, false
	}
	page := NewPage(newID(), name)
	d.Pages = append(d.Pages, page)
	d.SyncPageRefs()
	return page, true
}

// Clone creates a deep copy of the document
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := &Document{
		Class:           d.Class,
		ObjectID:        d.ObjectID,
		Swatches:        d.Swatches.Clone(),
		LayerStyles:     d.LayerStyles.Clone(),
		LayerTextStyles: d.LayerTextStyles.Clone(),
		Meta:            append(json.RawMessage(nil), d.Meta...),
		User:            append(json.RawMessage(nil), d.User...),
		rest:            d.rest.Clone(),
	}
	if d.PageRefs != nil {
		clone.PageRefs = make([]*FileRef, len(d.PageRefs))
		for i, ref := range d.PageRefs {
			copied := *ref
			clone.PageRefs[i] = &copied
		}
	}
	if d.Pages != nil {
		clone.Pages = make([]*Layer, len(d.Pages))
		for i, page := range d.Pages {
			clone.Pages[i] = page.Clone()
		}
	}
	return clone
}
