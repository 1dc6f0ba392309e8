// Package symdb maintains a persistent symbol index over PSY-Q archives: a
// key-value store mapping each exported symbol to the archive and module
// that define it, so lookups across a large library collection skip the
// archive scan.
package symdb

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/psykit/psyk/pkg/psyq"
)

// Location identifies where a symbol is defined.
type Location struct {
	Library string `json:"library"`
	Module  string `json:"module"`
	Created string `json:"created"`
}

// DB is a symbol index backed by a pebble store.
type DB struct {
	db *pebble.DB
}

// Open opens the index at path, creating it if needed.
func Open(path string) (*DB, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// Close closes the underlying store.
func (d *DB) Close() error {
	return d.db.Close()
}

// symKey layout: "sym/" symbol NUL library NUL module. The NUL separators
// cannot appear in archive member names, so prefix scans over a symbol never
// bleed into a longer symbol's entries.
func symKey(symbol, library, module string) []byte {
	k := make([]byte, 0, 4+len(symbol)+1+len(library)+1+len(module))
	k = append(k, "sym/"...)
	k = append(k, symbol...)
	k = append(k, 0)
	k = append(k, library...)
	k = append(k, 0)
	k = append(k, module...)
	return k
}

// IndexLibrary records every export of every module in the archive under the
// given library name. Entries from a previous indexing of the same
// library/module pairs are overwritten in place.
func (d *DB) IndexLibrary(library string, lib *psyq.Lib) (int, error) {
	batch := d.db.NewBatch()
	defer batch.Close()

	count := 0
	for i := range lib.Modules {
		m := &lib.Modules[i]
		loc := Location{
			Library: library,
			Module:  m.Name(),
			Created: m.Metadata.Created.String(),
		}
		value, err := json.Marshal(loc)
		if err != nil {
			return 0, fmt.Errorf("encoding location for %s: %w", m.Name(), err)
		}
		for _, e := range m.Exports() {
			key := symKey(e.Name(), library, m.Name())
			if err := batch.Set(key, value, nil); err != nil {
				return 0, fmt.Errorf("indexing %s: %w", e.Name(), err)
			}
			count++
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return 0, fmt.Errorf("committing index for %s: %w", library, err)
	}
	return count, nil
}

// Lookup returns every known definition of symbol, across all indexed
// libraries.
func (d *DB) Lookup(symbol string) ([]Location, error) {
	prefix := append([]byte("sym/"+symbol), 0)
	upper := append([]byte("sym/"+symbol), 1)

	iter, err := d.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upper,
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var locs []Location
	for iter.First(); iter.Valid(); iter.Next() {
		var loc Location
		if err := json.Unmarshal(iter.Value(), &loc); err != nil {
			return nil, fmt.Errorf("decoding entry %q: %w", iter.Key(), err)
		}
		locs = append(locs, loc)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return locs, nil
}
