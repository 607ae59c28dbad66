package export

import (
	"errors"
	"fmt"
	"strings"
)

// Duplicate-name policies for partitioning. Which one applies is a
// configuration decision, not a constant of the format.
const (
	// DuplicateLastWins overwrites earlier records that share a name and
	// records the collision as a data-integrity warning.
	DuplicateLastWins = "last-wins"

	// DuplicateFail keeps the first record for a name and makes the
	// partition report an error for the caller to surface.
	DuplicateFail = "fail"
)

// ErrDuplicateName is returned by Partition under the fail policy.
var ErrDuplicateName = errors.New("duplicate record name")

// PartitionOptions parameterize one partitioning pass.
type PartitionOptions struct {
	// UnitKind is the import unit's kind tag (e.g. "Material"). The record
	// whose kind equals UnitKind + "EditorOnlyData" is the unit's single
	// editor-metadata record.
	UnitKind string

	// Owner is the import unit's scope name.
	Owner string

	// FilterByOwner restricts the partition to records whose Outer equals
	// Owner. Used when reconstructing a nested subgraph from a document
	// that also carries the parent's records.
	FilterByOwner bool

	// DuplicatePolicy is DuplicateLastWins (default) or DuplicateFail.
	DuplicatePolicy string
}

// Index maps record names to their declarations for one import unit.
type Index struct {
	// Meta is the editor-metadata record, nil when the document has none.
	Meta *Record

	// ByName holds the node declarations.
	ByName map[string]Record

	// Order lists names in declaration order. Iterating Order is the only
	// sanctioned way to walk the index deterministically.
	Order []string

	// Duplicates lists names that appeared more than once, in first-collision
	// order. Non-empty Duplicates under the last-wins policy is a
	// data-integrity warning, not an error.
	Duplicates []string
}

// Partition splits one import unit's records into the editor-metadata record
// and the name-indexed node declarations.
//
// Exactly zero or one editor-metadata record results per partition; if the
// document unexpectedly carries several, the last one wins and the collision
// is recorded as a duplicate. Under the fail policy the returned index is
// still usable (first record wins) alongside the error.
func Partition(records []Record, opts PartitionOptions) (*Index, error) {
	if opts.DuplicatePolicy == "" {
		opts.DuplicatePolicy = DuplicateLastWins
	}

	metaKind := opts.UnitKind + "EditorOnlyData"
	idx := &Index{ByName: make(map[string]Record, len(records))}
	var err error

	for _, rec := range records {
		if opts.FilterByOwner && rec.Outer != opts.Owner {
			continue
		}

		if opts.UnitKind != "" && rec.Kind == metaKind {
			if idx.Meta != nil {
				idx.Duplicates = append(idx.Duplicates, rec.Name)
			}
			r := rec
			idx.Meta = &r
			continue
		}

		if rec.Name == "" {
			continue
		}

		if _, exists := idx.ByName[rec.Name]; exists {
			idx.Duplicates = append(idx.Duplicates, rec.Name)
			if opts.DuplicatePolicy == DuplicateFail {
				if err == nil {
					err = fmt.Errorf("%w: %s", ErrDuplicateName, rec.Name)
				}
				continue
			}
			// Last wins: overwrite in place, keep the original position.
			idx.ByName[rec.Name] = rec
			continue
		}

		idx.ByName[rec.Name] = rec
		idx.Order = append(idx.Order, rec.Name)
	}

	return idx, err
}

// Get returns the record for a name.
func (i *Index) Get(name string) (Record, bool) {
	rec, ok := i.ByName[name]
	return rec, ok
}

// Len returns the number of indexed node declarations.
func (i *Index) Len() int {
	return len(i.Order)
}

// String summarizes the index for logs.
func (i *Index) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d records", len(i.Order))
	if i.Meta != nil {
		b.WriteString(", editor metadata")
	}
	if len(i.Duplicates) > 0 {
		fmt.Fprintf(&b, ", %d duplicate names", len(i.Duplicates))
	}
	return b.String()
}
