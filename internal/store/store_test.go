package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodipy/foodipy/internal/store"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func drivers(t *testing.T) map[string]store.Driver {
	t.Helper()

	fileDriver, err := store.NewFile(t.TempDir())
	require.NoError(t, err)

	return map[string]store.Driver{
		"memory": store.NewMemory(),
		"file":   fileDriver,
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	for name, d := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			in := []note{{ID: "1", Body: "first"}, {ID: "2", Body: "second"}}
			require.NoError(t, store.SaveCollection(d, "notes", in))

			out := store.LoadCollection[note](d, "notes")
			assert.Equal(t, in, out)
		})
	}
}

func TestLoadAbsentKeyIsEmpty(t *testing.T) {
	for name, d := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			out := store.LoadCollection[note](d, "never-written")
			assert.NotNil(t, out)
			assert.Empty(t, out)
		})
	}
}

func TestMalformedDataIsEmpty(t *testing.T) {
	for name, d := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, d.Put("corrupt", []byte("{not json]")))

			out := store.LoadCollection[note](d, "corrupt")
			assert.NotNil(t, out)
			assert.Empty(t, out)
		})
	}
}

func TestSaveNilCollectionStoresEmptyArray(t *testing.T) {
	d := store.NewMemory()
	require.NoError(t, store.SaveCollection[note](d, "notes", nil))

	raw, err := d.Get("notes")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestSingleRecordRoundTrip(t *testing.T) {
	d := store.NewMemory()

	_, ok := store.LoadRecord[note](d, "current")
	assert.False(t, ok)

	require.NoError(t, store.SaveRecord(d, "current", note{ID: "9", Body: "hello"}))
	got, ok := store.LoadRecord[note](d, "current")
	require.True(t, ok)
	assert.Equal(t, note{ID: "9", Body: "hello"}, got)

	require.NoError(t, d.Delete("current"))
	_, ok = store.LoadRecord[note](d, "current")
	assert.False(t, ok)
}

func TestDeleteAbsentKeyIsNoError(t *testing.T) {
	for name, d := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, d.Delete("never-written"))
		})
	}
}

func TestFileDriverSurvivesReopen(t *testing.T) {
	root := t.TempDir()

	d1, err := store.NewFile(root)
	require.NoError(t, err)
	require.NoError(t, store.SaveCollection(d1, "persisted", []note{{ID: "1"}}))

	d2, err := store.NewFile(root)
	require.NoError(t, err)
	out := store.LoadCollection[note](d2, "persisted")
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	d := store.NewMemory()
	require.NoError(t, d.Put("k", []byte("abc")))

	raw, err := d.Get("k")
	require.NoError(t, err)
	raw[0] = 'x'

	again, err := d.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestOpenNamedUnknownDriver(t *testing.T) {
	_, err := store.OpenNamed("carrier-pigeon")
	assert.Error(t, err)
}
