package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialCollectionLocality(t *testing.T) {
	cases := []struct {
		collection SpecialCollection
		isLocal    bool
	}{
		{CollectionAll, false},
		{CollectionUnsorted, false},
		{CollectionTrash, false},
		{CollectionUntagged, true},
		{CollectionBroken, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.isLocal, tc.collection.IsLocal(), tc.collection.Title())
	}
}

func TestSpecialCollectionAsCollection(t *testing.T) {
	all := CollectionAll.AsCollection()
	assert.Equal(t, int64(0), all.ID)
	assert.Equal(t, "All", all.Title)

	trash := CollectionTrash.AsCollection()
	assert.Equal(t, int64(-99), trash.ID)
	assert.Equal(t, "Trash", trash.Title)
}

func TestCollectionWireFormat(t *testing.T) {
	payload := `{
		"_id": 42,
		"color": "#ff0000",
		"count": 7,
		"cover": ["https://example.com/cover.png"],
		"created": "2024-01-02T03:04:05.000Z",
		"expanded": true,
		"lastUpdate": "2024-02-03T04:05:06.000Z",
		"public": false,
		"sort": 3,
		"title": "Reading",
		"view": "list",
		"parent": {"$id": 7}
	}`

	var collection Collection
	require.NoError(t, json.Unmarshal([]byte(payload), &collection))

	assert.Equal(t, int64(42), collection.ID)
	assert.Equal(t, "Reading", collection.Title)
	assert.Equal(t, int64(7), collection.Parent)
	assert.Equal(t, 7, collection.Count)
	assert.False(t, collection.Created.IsZero())

	// Root collections have no parent member at all.
	var root Collection
	require.NoError(t, json.Unmarshal([]byte(`{"_id": 1, "count": 0, "cover": [], "expanded": false, "public": false, "sort": 0, "title": "Top", "view": "list"}`), &root))
	assert.Zero(t, root.Parent)
}
