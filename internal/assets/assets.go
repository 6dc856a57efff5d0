// Package assets holds the bundled artwork images as text art.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ErrNotFound is returned when an image ref has no bundled asset
var ErrNotFound = errors.New("assets: image not found")

//go:embed art/*.txt
var artFS embed.FS

// Lookup returns the text art for an image ref
func Lookup(ref string) (string, error) {
	if ref == "" || strings.ContainsAny(ref, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, ref)
	}

	data, err := artFS.ReadFile(path.Join("art", ref+".txt"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, ref)
		}
		return "", err
	}

	return strings.TrimRight(string(data), "\n"), nil
}

// Refs lists the bundled image refs in sorted order
func Refs() []string {
	entries, err := fs.ReadDir(artFS, "art")
	if err != nil {
		return nil
	}

	refs := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".txt"); ok {
			refs = append(refs, name)
		}
	}
	sort.Strings(refs)
	return refs
}
