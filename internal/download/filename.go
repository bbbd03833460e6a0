package download

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

const fallbackName = "download"

var (
	markerPattern   = regexp.MustCompile(`\[FILENAME:([^\]]+)\]`)
	legacyPattern   = regexp.MustCompile(`Original filename: (.+)`)
	trailingPattern = regexp.MustCompile(`(\s*\[FILENAME:[^\]]+\]|\s*Original filename: .+)\s*$`)
)

// ExtractOriginalFilename returns the filename recorded in a listing
// description, or "" when there is none. The bracketed marker wins over the
// legacy line form.
func ExtractOriginalFilename(description string) string {
	if m := markerPattern.FindStringSubmatch(description); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := legacyPattern.FindStringSubmatch(description); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// WithFilenameMarker replaces any trailing filename marker of description
// with one naming name.
func WithFilenameMarker(description, name string) string {
	base := StripFilenameMarker(description)
	name = strings.TrimSpace(name)
	if name == "" {
		return base
	}
	if base == "" {
		return "[FILENAME:" + name + "]"
	}
	return base + "\n\n[FILENAME:" + name + "]"
}

// PreserveFilenameMarker carries the marker of previous over to next when an
// edit dropped it.
func PreserveFilenameMarker(previous, next string) string {
	if ExtractOriginalFilename(next) != "" {
		return next
	}
	name := ExtractOriginalFilename(previous)
	if name == "" {
		return next
	}
	return WithFilenameMarker(next, name)
}

// StripFilenameMarker removes a trailing filename marker.
func StripFilenameMarker(description string) string {
	return strings.TrimRightFunc(trailingPattern.ReplaceAllString(description, ""), unicode.IsSpace)
}

// SanitizeFilename reduces name to a single safe path element.
func SanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/', r == '\\', r == ':', unicode.IsControl(r):
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	name = filepath.Base(name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return fallbackName + ".bin"
	}
	return name
}

func nameWithExtension(display string) string {
	display = strings.TrimSpace(display)
	if display == "" {
		display = fallbackName
	}
	if strings.Contains(display, ".") {
		return display
	}
	return display + ".bin"
}
