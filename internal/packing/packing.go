// Package packing holds the collection operations behind the packing list.
// Every operation returns a new slice and leaves its input untouched, so
// snapshots handed to the view can never be changed underneath it.
package packing

import (
	"slices"

	"github.com/idilsaglam/packlist/internal/model"
)

// Add appends it to the end of items.
func Add(items []model.Item, it model.Item) []model.Item {
	out := make([]model.Item, 0, len(items)+1)
	out = append(out, items...)
	return append(out, it)
}

// Toggle flips Packed on the item with the given id. Unknown ids are a no-op.
func Toggle(items []model.Item, id int64) []model.Item {
	out := make([]model.Item, len(items))
	for i, it := range items {
		if it.ID == id {
			it.Packed = !it.Packed
		}
		out[i] = it
	}
	return out
}

// Delete drops the item with the given id. Unknown ids are a no-op.
func Delete(items []model.Item, id int64) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Clear returns an empty collection.
func Clear() []model.Item {
	return []model.Item{}
}

// Find returns the item with the given id.
func Find(items []model.Item, id int64) (model.Item, bool) {
	i := slices.IndexFunc(items, func(it model.Item) bool { return it.ID == id })
	if i < 0 {
		return model.Item{}, false
	}
	return items[i], true
}

// DisplayOrder returns a copy of items with unpacked items first. Insertion
// order is kept within each group.
func DisplayOrder(items []model.Item) []model.Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b model.Item) int {
		return packedRank(a) - packedRank(b)
	})
	return out
}

func packedRank(it model.Item) int {
	if it.Packed {
		return 1
	}
	return 0
}
