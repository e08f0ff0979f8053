// Package walkwalk expands directory inputs into a deterministic, filtered
// list of source files.
package walkwalk

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Options filters the files collected beneath a directory input.
type Options struct {
	Exts         []string // lowercase extensions including dot; empty = all files
	Exclude      []string // directory base-name prefixes and exact file names to skip
	UseGitignore bool     // honor the directory's root .gitignore
}

// Expand returns paths with every directory replaced by the files beneath
// it, in input order. Paths that are not directories (including ones that
// do not exist) pass through unchanged.
func Expand(paths []string, opt Options) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}
		files, err := CollectFiles(p, opt)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}

// CollectFiles walks root and returns matching regular files, sorted by
// their root-relative path. Returned paths keep root as their prefix.
func CollectFiles(root string, opt Options) ([]string, error) {
	ws := &walkState{
		root:    root,
		exts:    toSet(opt.Exts, strings.ToLower),
		exclude: opt.Exclude,
	}
	if opt.UseGitignore {
		// A missing or unreadable .gitignore just means no patterns.
		ws.patterns, _ = parseGitignore(filepath.Join(root, ".gitignore"))
	}
	if err := filepath.WalkDir(root, ws.visit); err != nil {
		return nil, err
	}
	sort.Slice(ws.files, func(i, j int) bool { return ws.files[i].rel < ws.files[j].rel })

	out := make([]string, len(ws.files))
	for i, f := range ws.files {
		out[i] = f.path
	}
	return out, nil
}

type walkedFile struct {
	rel  string // root-relative, forward slashes
	path string
}

type walkState struct {
	root     string
	exts     map[string]struct{}
	exclude  []string
	patterns []gitPattern
	files    []walkedFile
}

func (ws *walkState) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}
	rel, ok := ws.relative(path)
	if !ok {
		return nil
	}
	if rel == "." {
		return nil
	}
	if ws.shouldSkip(rel, d) {
		if d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}
	if d.IsDir() {
		return nil
	}
	if isSymlink(d) || !d.Type().IsRegular() {
		return nil
	}
	if !ws.matchesExt(path) {
		return nil
	}
	ws.files = append(ws.files, walkedFile{rel: rel, path: path})
	return nil
}

func (ws *walkState) relative(path string) (string, bool) {
	rel, err := filepath.Rel(ws.root, path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, "../") || rel == ".." {
		return "", false
	}
	return rel, true
}

func (ws *walkState) shouldSkip(rel string, d fs.DirEntry) bool {
	if isExcluded(filepath.Base(rel), d.IsDir(), ws.exclude) {
		return true
	}
	return matchGitignore(ws.patterns, rel, d.IsDir())
}

func (ws *walkState) matchesExt(path string) bool {
	if len(ws.exts) == 0 {
		return true
	}
	_, ok := ws.exts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// isSymlink reports whether the DirEntry is a symlink (file or directory).
func isSymlink(d fs.DirEntry) bool {
	return d.Type()&fs.ModeSymlink != 0
}

// isExcluded matches directories by prefix, so "build" also skips
// "build-out/", and files by exact name, so "builder.js" stays in.
func isExcluded(base string, isDir bool, exclude []string) bool {
	for _, k := range exclude {
		if k == "" {
			continue
		}
		if base == k || (isDir && strings.HasPrefix(base, k)) {
			return true
		}
	}
	return false
}

func toSet(list []string, norm func(string) string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, v := range list {
		v = norm(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if v[0] != '.' {
			v = "." + v
		}
		m[v] = struct{}{}
	}
	return m
}

// ---------------- .gitignore support ----------------

type gitPattern struct {
	neg     bool // pattern starts with '!'
	dirOnly bool // pattern ends with '/'
	rx      *regexp.Regexp
}

// parseGitignore reads a .gitignore file and compiles patterns. Minimal support:
//   - '#' comments, blank lines ignored
//   - '!' negation
//   - leading '/' anchors to the walk root
//   - trailing '/' restricts to directories
//   - '**' matches across directories
//   - '*' and '?' behave like shell globs (not crossing '/')
func parseGitignore(path string) ([]gitPattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var res []gitPattern
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		neg := strings.HasPrefix(line, "!")
		if neg {
			line = strings.TrimSpace(line[1:])
			if line == "" {
				continue
			}
		}
		dirOnly := strings.HasSuffix(line, "/")
		line = strings.TrimSuffix(line, "/")
		anchored := strings.HasPrefix(line, "/")
		line = strings.TrimPrefix(line, "/")
		res = append(res, gitPattern{neg: neg, dirOnly: dirOnly, rx: compileGitGlob(line, anchored)})
	}
	return res, s.Err()
}

func compileGitGlob(glob string, anchored bool) *regexp.Regexp {
	esc := regexp.QuoteMeta(glob)
	esc = strings.ReplaceAll(esc, `\*\*`, "\x00")
	esc = strings.ReplaceAll(esc, `\*`, "[^/]*")
	esc = strings.ReplaceAll(esc, `\?`, "[^/]")
	esc = strings.ReplaceAll(esc, "\x00", ".*")
	if anchored {
		return regexp.MustCompile("^" + esc + "$")
	}
	return regexp.MustCompile("(^|.*/)" + esc + "$")
}

// matchGitignore applies patterns in order; the last match wins.
func matchGitignore(pats []gitPattern, rel string, isDir bool) bool {
	ignored := false
	for _, p := range pats {
		if p.dirOnly && !isDir {
			continue
		}
		if p.rx.MatchString(rel) {
			ignored = !p.neg
		}
	}
	return ignored
}
