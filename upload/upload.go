package upload

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// AllowedExtensions are the upload suffixes accepted by the report form.
var AllowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// AllowedExtension reports whether the file name ends in a permitted image
// extension. The check is case-insensitive and looks at the substring after
// the last dot; a name without a dot is rejected, not passed through.
func AllowedExtension(name string) bool {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(name[idx+1:])
	return AllowedExtensions[ext]
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
var repeatedDots = regexp.MustCompile(`\.{2,}`)

// SanitizeFilename reduces a client-supplied file name to a safe storage key:
// path components are stripped, anything outside [A-Za-z0-9_.-] becomes "_",
// and dot runs are collapsed so the result cannot traverse directories.
// The empty string means the name had nothing safe to keep.
func SanitizeFilename(name string) string {
	// Handle both separators; the client OS is unknown.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	name = unsafeChars.ReplaceAllString(name, "_")
	name = repeatedDots.ReplaceAllString(name, ".")
	name = strings.Trim(name, "._")

	if name == "" || name == "." {
		return ""
	}
	return name
}

// Save writes the upload to dir under name. An existing file with the same
// name is overwritten silently.
func Save(dir, name string, src io.Reader) error {
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Close()
}
