package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, idx := range append(uniqueIndexes, lookupIndexes...) {
		key := idx.collection
		for _, e := range idx.keys {
			key += "." + e.Key
		}
		assert.False(t, seen[key], "duplicate index %s", key)
		seen[key] = true
		assert.NotEmpty(t, idx.keys, idx.collection)
	}
}

func TestEventTypeSlugsAreUniquePerOwner(t *testing.T) {
	for _, idx := range uniqueIndexes {
		if idx.collection != "eventTypes" {
			continue
		}
		var fields []string
		for _, e := range idx.keys {
			fields = append(fields, e.Key)
		}
		assert.Equal(t, []string{"userId", "teamId", "slug"}, fields)
		return
	}
	t.Fatal("no unique index on eventTypes")
}
