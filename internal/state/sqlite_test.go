package state

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore()
	require.NoError(t, store.Open(":memory:"), "failed to open store")
	require.NoError(t, store.Migrate(), "failed to migrate store")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func userModel() core.Model {
	return core.Model{
		Name:   "User",
		Source: "mssql",
		Fields: []core.Field{
			{Name: "id", Type: core.PrimitiveType(core.PrimitiveString), NonNull: true, Directives: []core.Directive{}},
			{
				Name:       "posts",
				Type:       core.ReferenceType("Post", "mssql"),
				Collection: true,
				Directives: []core.Directive{{
					Provider: "mssql",
					Name:     "relation",
					Args: map[string]core.Value{
						"weight": core.FloatValue(1.5),
						"keys":   core.ListValue(core.StringValue("a"), core.IntValue(2)),
					},
				}},
			},
		},
		Directives: []core.Directive{{
			Name: "source",
			Args: map[string]core.Value{"name": core.StringValue("mssql")},
		}},
	}
}

func postModel() core.Model {
	return core.Model{
		Name:       "Post",
		Source:     "default",
		Fields:     []core.Field{{Name: "id", Type: core.PrimitiveType(core.PrimitiveInt), Directives: []core.Directive{}}},
		Directives: []core.Directive{},
	}
}

func assertSameModel(t *testing.T, want, got core.Model) {
	t.Helper()
	w, err := json.Marshal(want)
	require.NoError(t, err)
	g, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(w), string(g))
}

func TestSQLiteStore_OpenClose(t *testing.T) {
	store := NewSQLiteStore()
	require.NoError(t, store.Open(":memory:"))
	assert.Equal(t, ":memory:", store.Path())
	require.NoError(t, store.Close())
}

func TestSQLiteStore_NotOpened(t *testing.T) {
	store := NewSQLiteStore()
	ctx := context.Background()

	assert.Error(t, store.Migrate())
	_, err := store.GetFileHashes(ctx, "a.graphql")
	assert.Error(t, err)
	assert.Error(t, store.SaveFile(ctx, "a.graphql", FileHashes{Content: "h", Config: "cfg"}, nil))
	_, err = store.ListModels(ctx)
	assert.Error(t, err)
	assert.NoError(t, store.Close())
}

func TestSQLiteStore_Migrate(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.MigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	latest, err := SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, latest, version, "all embedded migrations applied")

	// Running again is a no-op.
	require.NoError(t, store.Migrate())

	for _, table := range []string{"files", "models"} {
		rows, err := store.db.Query("SELECT 1 FROM " + table + " LIMIT 1")
		require.NoError(t, err, "table %s does not exist", table)
		_ = rows.Close()
	}
}

func TestSQLiteStore_SaveAndLoadFile(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	hashes, err := store.GetFileHashes(ctx, "schema/user.graphql")
	require.NoError(t, err)
	assert.Equal(t, FileHashes{}, hashes, "unknown file has no hashes")

	require.NoError(t, store.SaveFile(ctx, "schema/user.graphql", FileHashes{Content: "abc", Config: "cfg"}, []core.Model{userModel(), postModel()}))

	hashes, err = store.GetFileHashes(ctx, "schema/user.graphql")
	require.NoError(t, err)
	assert.Equal(t, FileHashes{Content: "abc", Config: "cfg"}, hashes)

	models, err := store.LoadFile(ctx, "schema/user.graphql")
	require.NoError(t, err)
	require.Len(t, models, 2)
	assertSameModel(t, userModel(), models[0])
	assertSameModel(t, postModel(), models[1])

	f, ok := models[0].Field("posts")
	require.True(t, ok)
	d, ok := f.Directive("relation")
	require.True(t, ok)
	w, ok := d.Args["weight"].Float()
	require.True(t, ok, "float arguments survive storage")
	assert.InDelta(t, 1.5, w, 0)
}

func TestSQLiteStore_SaveFile_Replaces(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "a.graphql", FileHashes{Content: "v1", Config: "cfg"}, []core.Model{userModel(), postModel()}))
	require.NoError(t, store.SaveFile(ctx, "a.graphql", FileHashes{Content: "v2", Config: "cfg"}, []core.Model{postModel()}))

	hashes, err := store.GetFileHashes(ctx, "a.graphql")
	require.NoError(t, err)
	assert.Equal(t, "v2", hashes.Content)

	models, err := store.LoadFile(ctx, "a.graphql")
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "Post", models[0].Name)

	files, err := store.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, 1, files[0].Models)
}

func TestSQLiteStore_SaveFile_NoModels(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "empty.graphql", FileHashes{Content: "h", Config: "cfg"}, nil))

	models, err := store.LoadFile(ctx, "empty.graphql")
	require.NoError(t, err)
	assert.Empty(t, models)

	hashes, err := store.GetFileHashes(ctx, "empty.graphql")
	require.NoError(t, err)
	assert.Equal(t, "h", hashes.Content)
}

func TestSQLiteStore_ListAndGetModels(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "b.graphql", FileHashes{Content: "hb", Config: "cfg"}, []core.Model{postModel()}))
	require.NoError(t, store.SaveFile(ctx, "a.graphql", FileHashes{Content: "ha", Config: "cfg"}, []core.Model{userModel()}))

	models, err := store.ListModels(ctx)
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "User", models[0].Name, "ordered by file path")
	assert.Equal(t, "Post", models[1].Name)

	m, err := store.GetModel(ctx, "User")
	require.NoError(t, err)
	assert.Equal(t, "mssql", m.Source)

	_, err = store.GetModel(ctx, "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found: Missing")
}

func TestSQLiteStore_DeleteFile(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "a.graphql", FileHashes{Content: "ha", Config: "cfg"}, []core.Model{userModel()}))
	require.NoError(t, store.SaveFile(ctx, "b.graphql", FileHashes{Content: "hb", Config: "cfg"}, []core.Model{postModel()}))

	require.NoError(t, store.DeleteFile(ctx, "a.graphql"))
	require.NoError(t, store.DeleteFile(ctx, "never-saved.graphql"))

	files, err := store.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "b.graphql", files[0].Path)
	assert.Equal(t, "hb", files[0].ContentHash)
	assert.Equal(t, "cfg", files[0].ConfigHash)
	assert.False(t, files[0].UpdatedAt.IsZero())

	models, err := store.ListModels(ctx)
	require.NoError(t, err)
	require.Len(t, models, 1, "models cascade with their file")
	assert.Equal(t, "Post", models[0].Name)
}

func TestSQLiteStore_SaveFile_ConfigHashReplaced(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFile(ctx, "a.graphql", FileHashes{Content: "h", Config: "one"}, []core.Model{postModel()}))
	require.NoError(t, store.SaveFile(ctx, "a.graphql", FileHashes{Content: "h", Config: "two"}, []core.Model{postModel()}))

	hashes, err := store.GetFileHashes(ctx, "a.graphql")
	require.NoError(t, err)
	assert.Equal(t, FileHashes{Content: "h", Config: "two"}, hashes)
}

func TestSQLiteStore_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	store := NewSQLiteStore()
	require.NoError(t, store.Open(path))
	require.NoError(t, store.Migrate())
	require.NoError(t, store.SaveFile(ctx, "a.graphql", FileHashes{Content: "ha", Config: "cfg"}, []core.Model{userModel()}))
	require.NoError(t, store.Close())

	reopened := NewSQLiteStore()
	require.NoError(t, reopened.Open(path))
	defer func() { _ = reopened.Close() }()
	require.NoError(t, reopened.Migrate())

	models, err := reopened.ListModels(ctx)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assertSameModel(t, userModel(), models[0])
}

var _ Store = (*SQLiteStore)(nil)
