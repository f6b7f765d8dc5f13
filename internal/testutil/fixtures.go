package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// UserSchema and PostSchema are small documents used across package tests.
const (
	UserSchema = `type User @source(name: "mssql") {
	id: ID!
	name: String!
	posts: [Post]
}
`
	PostSchema = `type Post {
	id: ID!
	title: String! @mssql_column(name: "post_title")
	author: User!
}
`
)

// WriteFiles writes files (relative path -> content) under dir, creating
// parent directories as needed.
func WriteFiles(t testing.TB, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// SetupSchemaProject creates a temporary project with a schema directory
// holding the user and post documents.
func SetupSchemaProject(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteFiles(t, dir, map[string]string{
		"schema/user.graphql": UserSchema,
		"schema/post.graphql": PostSchema,
		"schema/README.md":    "not a schema",
	})
	return dir
}
