package document

import (
	"encoding/json"
	"fmt"
	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns the 64-bit highway hash of the supplied chunks written in order
func Hash(chunks ...[]byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	for _, chunk := range chunks {
		if _, err = hash.Write(chunk); err != nil {
			return 0, err
		}
	}
	return hash.Sum64(), nil
}

// Fingerprint hashes the document content: the root with page references derived from Pages,
// followed by every page in order. Workspace metadata is excluded.
func (d *Document) Fingerprint() (uint64, error) {
	root := *d
	root.SyncPageRefs()
	data, err := json.Marshal(&root)
	if err != nil {
		return 0, fmt.Errorf("failed to encode document %v: %w", d.ObjectID, err)
	}
	chunks := make([][]byte, 0, len(d.Pages)+1)
	chunks = append(chunks, data)
	for _, page := range d.Pages {
		if data, err = json.Marshal(page); err != nil {
			return 0, fmt.Errorf("failed to encode page %v: %w", page.ObjectID, err)
		}
		chunks = append(chunks, data)
	}
	return Hash(chunks...)
}
