package interpret

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilePath_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	res := FilePath{}.Interpret(path)

	require.NotNil(t, res)
	require.Equal(t, "true", itemValue(t, res, "Exists"))
	require.Equal(t, "file", itemValue(t, res, "Kind"))
	require.Equal(t, dir, itemValue(t, res, "Parent"))
	require.Equal(t, "notes.txt", itemValue(t, res, "Filename"))
	require.Equal(t, "txt", itemValue(t, res, "Extension"))
	require.Contains(t, itemValue(t, res, "Size"), "(5 bytes)")
}

func TestFilePath_Directory(t *testing.T) {
	dir := t.TempDir()

	res := FilePath{}.Interpret(dir)

	require.NotNil(t, res)
	require.Equal(t, "true", itemValue(t, res, "Exists"))
	require.Equal(t, "directory", itemValue(t, res, "Kind"))
	require.False(t, hasItem(res, "Size"), "size is only reported for regular files")
}

func TestFilePath_MissingPathIsNotADecline(t *testing.T) {
	res := FilePath{}.Interpret("/definitely/missing/path")

	require.NotNil(t, res, "a well-formed absent path still produces a result")
	require.Equal(t, "false", itemValue(t, res, "Exists"))
	require.Equal(t, "none", itemValue(t, res, "Kind"))
	require.Equal(t, "/definitely/missing", itemValue(t, res, "Parent"))
	require.Equal(t, "path", itemValue(t, res, "Filename"))
}

func TestFilePath_RelativePathDeclines(t *testing.T) {
	require.Nil(t, FilePath{}.Interpret("relative/path"))
	require.Nil(t, FilePath{}.Interpret("./dotted"))
	require.Nil(t, FilePath{}.Interpret("plain text"))
	require.Nil(t, FilePath{}.Interpret(""))
}

func TestFilePath_TildeExpands(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	res := FilePath{}.Interpret("~")

	require.NotNil(t, res)
	require.Equal(t, "true", itemValue(t, res, "Exists"))
	require.Equal(t, filepath.Base(home), itemValue(t, res, "Filename"))
}

func TestFilePath_SymlinkNotFollowed(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
	require.NoError(t, os.Symlink(target, link))

	res := FilePath{}.Interpret(link)

	require.NotNil(t, res)
	require.Equal(t, "symlink", itemValue(t, res, "Kind"))
	require.Equal(t, target, itemValue(t, res, "Target"))
}

func TestFilePath_NoExtensionItemWhenNone(t *testing.T) {
	res := FilePath{}.Interpret("/usr/bin/somebinary")

	require.NotNil(t, res)
	require.False(t, hasItem(res, "Extension"))
}
