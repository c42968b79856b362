package match

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// maxImages caps the image list attached to a single answer.
const maxImages = 15

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".svg":  {},
}

// listImages returns the web paths of the image files directly inside dir,
// sorted by filename. A missing or unreadable folder yields no images; the
// answer still goes out without them.
func listImages(dir, webPrefix string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := imageExtensions[ext]; !ok {
			continue
		}
		images = append(images, path.Join(webPrefix, entry.Name()))
	}

	sort.Strings(images)
	return images
}

// dedupeImages removes duplicates while preserving order and caps the list.
func dedupeImages(paths []string, limit int) []string {
	seen := make(map[string]struct{}, len(paths))
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
		if len(result) == limit {
			break
		}
	}
	return result
}

// slug converts a section tag like "Study Buddy" into its on-disk folder
// name ("study-buddy").
func slug(tag string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), " ", "-")
}
