package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, body string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func drain(t *testing.T, it *Iterator) (paths []string, failures []*FileReadError) {
	t.Helper()
	for {
		f, err := it.Next()
		if errors.Is(err, io.EOF) {
			return paths, failures
		}
		var fre *FileReadError
		if errors.As(err, &fre) {
			failures = append(failures, fre)
			continue
		}
		require.NoError(t, err)
		paths = append(paths, f.Path)
	}
}

func TestOpen_SelectsJavaRecursivelyInLexicalOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b/Z.java", "z\n")
	writeFile(t, root, "a/Y.java", "y\n")
	writeFile(t, root, "a/c/X.JAVA", "x\n")
	writeFile(t, root, "a/notes.txt", "nope\n")
	writeFile(t, root, "Top.java", "top\n")

	it, err := Open(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, it.Len())

	paths, failures := drain(t, it)
	assert.Empty(t, failures)
	assert.Equal(t, []string{
		filepath.Join(root, "Top.java"),
		filepath.Join(root, "a", "Y.java"),
		filepath.Join(root, "a", "c", "X.JAVA"),
		filepath.Join(root, "b", "Z.java"),
	}, paths)

	// exhausted iterators stay exhausted
	_, err = it.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpen_FreshSequencePerCall(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "A.java", "a\n")

	first, err := Open(root, Options{})
	require.NoError(t, err)
	p1, _ := drain(t, first)

	second, err := Open(root, Options{})
	require.NoError(t, err)
	p2, _ := drain(t, second)
	assert.Equal(t, p1, p2)
}

func TestOpen_PathErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"), Options{})
	var pe *PathError
	require.ErrorAs(t, err, &pe)

	file := writeFile(t, t.TempDir(), "A.java", "a")
	_, err = Open(file, Options{})
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, ErrNotDir)
}

func TestNext_ContentKeepsTerminators(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "A.java", "first\r\nsecond\n\nlast")

	it, err := Open(root, Options{})
	require.NoError(t, err)
	f, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"first\r\n", "second\n", "\n", "last"}, f.Lines)
}

func TestNext_SkippableFailures(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "A.java", "ok\n")
	writeFile(t, root, "B.java", "bin\x00ary")
	writeFile(t, root, "C.java", "this one is far too large\n")
	gone := writeFile(t, root, "D.java", "deleted before read\n")
	writeFile(t, root, "E.java", "ok\n")

	it, err := Open(root, Options{MaxBytes: 20})
	require.NoError(t, err)
	require.NoError(t, os.Remove(gone))

	paths, failures := drain(t, it)
	assert.Equal(t, []string{filepath.Join(root, "A.java"), filepath.Join(root, "E.java")}, paths)
	require.Len(t, failures, 3)
	assert.ErrorIs(t, failures[0], ErrBinary)
	assert.ErrorIs(t, failures[1], ErrTooLarge)
	assert.Equal(t, gone, failures[2].Path)
	assert.True(t, os.IsNotExist(errors.Unwrap(failures[2])))
}

func TestNext_UnreadableSubdirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := t.TempDir()
	writeFile(t, root, "A.java", "ok\n")
	locked := filepath.Join(root, "locked")
	writeFile(t, root, "locked/B.java", "hidden\n")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	it, err := Open(root, Options{})
	require.NoError(t, err)
	paths, failures := drain(t, it)
	assert.Equal(t, []string{filepath.Join(root, "A.java")}, paths)
	require.Len(t, failures, 1)
	assert.Equal(t, locked, failures[0].Path)
}

func TestOpen_FiltersAndIgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "com/app/Main.java", "m\n")
	writeFile(t, root, "com/app/R.java", "r\n")
	writeFile(t, root, "android/support/Frag.java", "f\n")
	writeFile(t, root, ".git/hooks/H.java", "h\n")
	writeFile(t, root, "com/app/Main.kt", "k\n")
	writeFile(t, root, ".assatignore", "R.java\n/android/\n")

	it, err := Open(root, Options{DefaultExcludes: true})
	require.NoError(t, err)
	paths, _ := drain(t, it)
	assert.Equal(t, []string{filepath.Join(root, "com", "app", "Main.java")}, paths)

	it, err = Open(root, Options{Extensions: NormalizeExtensions([]string{"java,KT"}), ExcludeGlobs: "**/Main.java,.git/**"})
	require.NoError(t, err)
	paths, _ = drain(t, it)
	assert.Equal(t, []string{filepath.Join(root, "com", "app", "Main.kt")}, paths)

	it, err = Open(root, Options{IncludeGlobs: "com/**"})
	require.NoError(t, err)
	paths, _ = drain(t, it)
	assert.Equal(t, []string{filepath.Join(root, "com", "app", "Main.java")}, paths)
}

func TestNormalizeExtensions(t *testing.T) {
	assert.Equal(t, []string{".java", ".kt"}, NormalizeExtensions([]string{"Java", ".kt,java", " "}))
	assert.Nil(t, NormalizeExtensions(nil))
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a\n"}, SplitLines("a\n"))
	assert.Equal(t, []string{"a\n", "b"}, SplitLines("a\nb"))
}

func TestAllowedByGlobs(t *testing.T) {
	assert.True(t, allowedByGlobs("a/B.java", "", ""))
	assert.True(t, allowedByGlobs("a/B.java", "**/*.java", ""))
	assert.False(t, allowedByGlobs("a/B.java", "*.kt", ""))
	assert.False(t, allowedByGlobs("a/B.java", "", "a/**"))
	assert.True(t, allowedByGlobs("a/B.java", "", "b/**"))
}

func TestOpen_FollowsSymlinkedFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	target := writeFile(t, t.TempDir(), "Shared.java", "KeyStore ks;\n")
	link := filepath.Join(root, "Linked.java")
	require.NoError(t, os.Symlink(target, link))
	dangling := filepath.Join(root, "Dangling.java")
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.java"), dangling))
	require.NoError(t, os.Symlink(t.TempDir(), filepath.Join(root, "dir.java")))

	it, err := Open(root, Options{})
	require.NoError(t, err)
	paths, failures := drain(t, it)
	assert.Equal(t, []string{link}, paths)
	require.Len(t, failures, 1)
	assert.Equal(t, dangling, failures[0].Path)
}

func TestOpen_UnreadableIgnoreFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := t.TempDir()
	writeFile(t, root, "A.java", "a\n")
	ign := writeFile(t, root, ".assatignore", "A.java\n")
	require.NoError(t, os.Chmod(ign, 0o000))

	_, err := Open(root, Options{})
	var pe *PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ign, pe.Path)
	assert.ErrorIs(t, err, os.ErrPermission)
}
