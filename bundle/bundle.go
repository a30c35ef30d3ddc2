package bundle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/sketchfuse/document"
	"os"
)

const (
	// DocumentFile holds the document root
	DocumentFile = "document.json"
	// MetaFile holds application metadata
	MetaFile = "meta.json"
	// UserFile holds per user workspace state
	UserFile = "user.json"

	fileMode = os.FileMode(0o644)
	dirMode  = os.FileMode(0o755)
)

// Service reads and writes unpacked design documents: a folder with document.json,
// one file per page under pages/ and the optional meta.json and user.json
type Service struct {
	fs afs.Service
}

// Load reads the document stored under URL
func (s *Service) Load(ctx context.Context, URL string) (*document.Document, error) {
	data, err := s.fs.DownloadWithURL(ctx, url.Join(URL, DocumentFile))
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", DocumentFile, err)
	}
	doc := &document.Document{}
	if err = json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", url.Join(URL, DocumentFile), err)
	}
	doc.Pages = make([]*document.Layer, 0, len(doc.PageRefs))
	for _, ref := range doc.PageRefs {
		pageURL := url.Join(URL, ref.Ref+".json")
		if data, err = s.fs.DownloadWithURL(ctx, pageURL); err != nil {
			return nil, fmt.Errorf("failed to download page %v: %w", ref.PageID(), err)
		}
		page := &document.Layer{}
		if err = json.Unmarshal(data, page); err != nil {
			return nil, fmt.Errorf("failed to decode %v: %w", pageURL, err)
		}
		doc.Pages = append(doc.Pages, page)
	}
	if doc.Meta, err = s.optional(ctx, url.Join(URL, MetaFile)); err != nil {
		return nil, err
	}
	if doc.User, err = s.optional(ctx, url.Join(URL, UserFile)); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Service) optional(ctx context.Context, URL string) (json.RawMessage, error) {
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return nil, err
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	return data, nil
}

// Exists returns true if URL holds a document
func (s *Service) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, url.Join(URL, DocumentFile))
}

// Save writes doc under URL, replacing any pages stored there before
func (s *Service) Save(ctx context.Context, doc *document.Document, URL string) error {
	doc.SyncPageRefs()
	pagesURL := url.Join(URL, document.PagesFolder)
	if exists, _ := s.fs.Exists(ctx, pagesURL); exists {
		if err := s.fs.Delete(ctx, pagesURL); err != nil {
			return fmt.Errorf("failed to clear %v: %w", pagesURL, err)
		}
	}
	if err := s.fs.Create(ctx, pagesURL, dirMode, true); err != nil {
		return fmt.Errorf("failed to create %v: %w", pagesURL, err)
	}
	for _, page := range doc.Pages {
		if err := s.upload(ctx, url.Join(pagesURL, page.ObjectID+".json"), page); err != nil {
			return err
		}
	}
	if err := s.upload(ctx, url.Join(URL, DocumentFile), doc); err != nil {
		return err
	}
	for name, data := range map[string]json.RawMessage{MetaFile: doc.Meta, UserFile: doc.User} {
		if len(data) == 0 {
			continue
		}
		if err := s.fs.Upload(ctx, url.Join(URL, name), fileMode, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("failed to upload %v: %w", name, err)
		}
	}
	return nil
}

func (s *Service) upload(ctx context.Context, URL string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %v: %w", URL, err)
	}
	if err = s.fs.Upload(ctx, URL, fileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload %v: %w", URL, err)
	}
	return nil
}

// New creates a bundle service
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}
