package repository

import (
	"context"
	"encoding/json"

	"github.com/ieee-igdtuw/chapter-core/internal/model"
)

// CollectionStore is the persisted record store. Each named collection holds
// one JSON array of records, written through as a unit.
//
// Load never fails from the caller's perspective: a missing or corrupt
// collection yields an empty array. Save fails only on storage faults; the
// fault is reported, never retried.
type CollectionStore interface {
	Load(ctx context.Context, name model.Collection) ([]byte, error)
	Save(ctx context.Context, name model.Collection, data []byte) error
}

// LoadAs loads a collection and decodes it into typed records. Data that does
// not decode as the expected shape counts as corrupt and yields an empty
// slice, matching the store's load-never-fails contract.
func LoadAs[T any](ctx context.Context, store CollectionStore, name model.Collection) ([]T, error) {
	data, err := store.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// SaveAs encodes typed records and writes them through as the collection's
// new contents. A nil slice writes an empty array, not JSON null.
func SaveAs[T any](ctx context.Context, store CollectionStore, name model.Collection, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return store.Save(ctx, name, data)
}
