package level

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a level descriptor file found on disk.
type Entry struct {
	Name string // File name without extension
	Path string
}

// ScanDirectory lists the level descriptor files in dir.
func ScanDirectory(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var levels []Entry
	for _, entry := range entries {
		// Skip directories and hidden files
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		levels = append(levels, Entry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].Name < levels[j].Name })
	return levels, nil
}

// LoadFile reads one level descriptor.
func LoadFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	d, err := ParseDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// LoadDirectory registers every valid descriptor in dir, replacing built-in
// levels with the same index. Broken files are logged and skipped. It
// returns the number of levels loaded.
func (r *Registry) LoadDirectory(dir string) (int, error) {
	entries, err := ScanDirectory(dir)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, e := range entries {
		d, err := LoadFile(e.Path)
		if err != nil {
			log.Printf("Warning: skipping level %s: %v", e.Name, err)
			continue
		}
		r.Register(d.Index, StaticLevel(d))
		loaded++
	}
	return loaded, nil
}
