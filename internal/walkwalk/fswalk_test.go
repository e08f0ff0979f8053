package walkwalk

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mkfile(t *testing.T, root, rel string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(p, []byte("function x() {}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestCollectFilesFiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	b := mkfile(t, root, "src/b.js")
	a := mkfile(t, root, "src/a.JS")
	ts := mkfile(t, root, "lib/util.ts")
	mkfile(t, root, "README.md")
	mkfile(t, root, "node_modules/dep/index.js")
	mkfile(t, root, "build-out/bundle.js")

	got, err := CollectFiles(root, Options{
		Exts:    []string{".js", "ts"},
		Exclude: []string{"node_modules", "build"},
	})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	want := []string{ts, a, b}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CollectFiles = %v, want %v", got, want)
	}
}

func TestCollectFilesExcludePrefixOnlyForDirs(t *testing.T) {
	root := t.TempDir()
	builder := mkfile(t, root, "src/builder.js")
	distance := mkfile(t, root, "src/distance.js")
	mkfile(t, root, "src/dist/bundle.js")
	mkfile(t, root, "build-cache/x.js")
	mkfile(t, root, "src/build")

	got, err := CollectFiles(root, Options{Exclude: []string{"dist", "build"}})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	want := []string{builder, distance}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CollectFiles = %v, want %v", got, want)
	}
}

func TestCollectFilesHonorsGitignore(t *testing.T) {
	root := t.TempDir()
	keep := mkfile(t, root, "keep.js")
	mkfile(t, root, "gen/out.js")
	mkfile(t, root, "vendor.min.js")
	neg := mkfile(t, root, "important.min.js")
	if err := os.WriteFile(filepath.Join(root, ".gitignore"),
		[]byte("# generated\ngen/\n*.min.js\n!important.min.js\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := CollectFiles(root, Options{Exts: []string{".js"}, UseGitignore: true})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	want := []string{neg, keep}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CollectFiles = %v, want %v", got, want)
	}

	all, err := CollectFiles(root, Options{Exts: []string{".js"}})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("without gitignore got %v", all)
	}
}

func TestExpandKeepsOrderAndMissingPaths(t *testing.T) {
	root := t.TempDir()
	single := mkfile(t, root, "single.js")
	dir := filepath.Join(root, "mods")
	m1 := mkfile(t, root, "mods/one.js")
	m2 := mkfile(t, root, "mods/two.js")
	missing := filepath.Join(root, "missing.js")

	got, err := Expand([]string{single, missing, dir}, Options{Exts: []string{".js"}})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := []string{single, missing, m1, m2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}
}
