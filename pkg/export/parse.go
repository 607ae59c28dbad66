package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is a decoded export document: the ordered record list plus a
// count of elements that could not be used.
type Document struct {
	Records []Record

	// Dropped counts array elements that were null, mis-shaped or missing
	// Name/Type. They are skipped, never fatal.
	Dropped int
}

// rawRecord mirrors the exporter's serialization of one entity.
type rawRecord struct {
	Type       string `json:"Type"`
	Name       string `json:"Name"`
	Outer      string `json:"Outer"`
	Class      string `json:"Class"`
	Properties Bag    `json:"Properties"`
}

// ParseDocument decodes an export document from r. The only fatal condition
// is a top level that is not a JSON array; individual bad elements are
// counted in Dropped.
func ParseDocument(r io.Reader) (*Document, error) {
	var elements []json.RawMessage
	if err := json.NewDecoder(r).Decode(&elements); err != nil {
		return nil, fmt.Errorf("decode export document: %w", err)
	}

	doc := &Document{Records: make([]Record, 0, len(elements))}
	for _, elem := range elements {
		var raw rawRecord
		if err := json.Unmarshal(elem, &raw); err != nil {
			doc.Dropped++
			continue
		}

		kind := raw.Type
		if kind == "" && raw.Class != "" {
			kind = NormalizeKind(raw.Class)
		}
		if raw.Name == "" || kind == "" {
			doc.Dropped++
			continue
		}

		props := raw.Properties
		if props == nil {
			props = Bag{}
		}
		doc.Records = append(doc.Records, Record{
			Name:       raw.Name,
			Kind:       kind,
			Outer:      raw.Outer,
			Properties: props,
		})
	}

	return doc, nil
}

// ReadDocumentFile reads and decodes an export document from a file.
func ReadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseDocument(f)
}
