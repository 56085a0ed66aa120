package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtshop/pkg/errs"
)

type testRecord struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func TestSetGetRoundTrip(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	require.NoError(t, store.Set("items", "orb", testRecord{Name: "Legendary Orb", Price: 5}))

	var got testRecord
	found, err := store.Get("items", "orb", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, testRecord{Name: "Legendary Orb", Price: 5}, got)
}

func TestGetAbsent(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	var got testRecord
	found, err := store.Get("items", "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetCorruptedRecord(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)
	store.data["items_bad"] = json.RawMessage(`{"name": `)

	var got testRecord
	_, err = store.Get("items", "bad", &got)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrParse)
}

func TestUpdateShallowMerge(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	require.NoError(t, store.Set("settings", "global", map[string]interface{}{
		"websiteName": "Growtopia Shop",
		"dlPrice":     5000,
	}))
	require.NoError(t, store.Update("settings", "global", map[string]interface{}{
		"dlPrice": 7000,
	}))

	got := make(map[string]interface{})
	found, err := store.Get("settings", "global", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Growtopia Shop", got["websiteName"])
	assert.Equal(t, float64(7000), got["dlPrice"])
}

func TestUpdateCreatesWhenAbsent(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	require.NoError(t, store.Update("settings", "global", map[string]interface{}{"dlPrice": 7000}))

	got := make(map[string]interface{})
	found, err := store.Get("settings", "global", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, float64(7000), got["dlPrice"])
}

func TestAddStampsIDAndCreatedAt(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	id, err := store.Add("users", testRecord{Name: "someone", Price: 0})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.True(t, strings.Contains(id, "_"), "generated id should carry the timestamp separator")

	got := make(map[string]interface{})
	found, err := store.Get("users", id, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id, got["id"])
	assert.NotEmpty(t, got["createdAt"])
}

func TestDelete(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	require.NoError(t, store.Set("session", "current", map[string]string{"uid": "u1"}))
	require.NoError(t, store.Delete("session", "current"))

	got := make(map[string]interface{})
	found, err := store.Get("session", "current", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestQueryOperators(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	require.NoError(t, store.Set("items", "a", testRecord{Name: "Orb", Price: 5}))
	require.NoError(t, store.Set("items", "b", testRecord{Name: "Seed", Price: 2}))
	require.NoError(t, store.Set("items", "c", testRecord{Name: "Wings", Price: 10}))

	cases := []struct {
		op    string
		value interface{}
		want  int
	}{
		{"==", 5, 1},
		{"!=", 5, 2},
		{">", 2, 2},
		{">=", 2, 3},
		{"<", 5, 1},
		{"<=", 5, 2},
	}
	for _, tc := range cases {
		matches, err := store.Query("items", "price", tc.op, tc.value)
		require.NoError(t, err, tc.op)
		assert.Len(t, matches, tc.want, "op %s", tc.op)
	}
}

func TestQueryStringEquality(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	require.NoError(t, store.Set("users", "u1", map[string]string{"email": "a@b.com"}))
	require.NoError(t, store.Set("users", "u2", map[string]string{"email": "c@d.com"}))

	matches, err := store.Query("users", "email", "==", "a@b.com")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestQueryUnknownOperator(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	_, err = store.Query("users", "email", "~=", "x")
	assert.Error(t, err)
}

func TestQueryIgnoresOtherCollections(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)

	require.NoError(t, store.Set("users", "u1", map[string]interface{}{"price": 5}))
	require.NoError(t, store.Set("items", "a", testRecord{Name: "Orb", Price: 5}))

	matches, err := store.Query("items", "price", "==", 5)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestFilePersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "store.json")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("items", "orb", testRecord{Name: "Orb", Price: 5}))

	reopened, err := Open(path)
	require.NoError(t, err)

	var got testRecord
	found, err := reopened.Get("items", "orb", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(5), got.Price)
}

func TestOpenCorruptedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	store, err := Open(path)
	require.NoError(t, err)

	records, err := store.List("items")
	require.NoError(t, err)
	assert.Empty(t, records)
}
