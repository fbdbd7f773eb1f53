package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*
var builtinFS embed.FS

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader rooted at a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// Only possible if the embed directive is broken.
		panic(fmt.Sprintf("level: builtin levels missing: %v", err))
	}
	return &Loader{fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Unparseable files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(extOf(path)) {
			return nil
		}

		lvl, err := l.load(path)
		if err != nil {
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.describe(), err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

func (l *Loader) load(path string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lvl, err := Parse(data, extOf(path))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if lvl.ID == "" {
		lvl.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if l.Root != "" {
		lvl.FilePath = filepath.Join(l.Root, filepath.FromSlash(path))
	}
	return lvl, nil
}

func (l *Loader) describe() string {
	if l.Root == "" {
		return "<builtin>"
	}
	return l.Root
}

// LoadFile loads a single level file from disk.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lvl, err := Parse(data, extOf(path))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if lvl.ID == "" {
		lvl.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	lvl.FilePath = path
	return lvl, nil
}

// Catalog returns the built-in levels followed by those found under dir.
// A level in dir replaces a built-in with the same ID. An empty or missing
// dir yields just the built-ins.
func Catalog(dir string) ([]Level, error) {
	levels, err := Builtin().LoadAll()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return levels, nil
	}
	if _, statErr := os.Stat(dir); statErr != nil {
		return levels, nil
	}

	custom, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(levels))
	for i, lvl := range levels {
		byID[lvl.ID] = i
	}
	for _, lvl := range custom {
		if i, ok := byID[lvl.ID]; ok {
			levels[i] = lvl
			continue
		}
		byID[lvl.ID] = len(levels)
		levels = append(levels, lvl)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
