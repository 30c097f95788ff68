// Package storage holds the MediaStorage backends of the story service.
package storage

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename keeps only the base name and replaces every character
// outside [a-zA-Z0-9._-] with an underscore.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	return unsafeFilenameChars.ReplaceAllString(base, "_")
}

// storedName prefixes the sanitized name with a random uuid so uploads never collide.
func storedName(filename string) string {
	return uuid.NewString() + "_" + SanitizeFilename(filename)
}

// cleanFolder normalizes folder into a relative slash path and rejects traversal.
func cleanFolder(folder string) (string, bool) {
	cleaned := path.Clean("/" + strings.ReplaceAll(folder, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || strings.HasPrefix(cleaned, "..") {
		return "", false
	}
	return cleaned, true
}

func contentTypeFor(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".ogg":
		return "audio/ogg"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	default:
		return "application/octet-stream"
	}
}
