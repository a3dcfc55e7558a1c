package gemini

import (
	"path/filepath"
	"strings"
)

// fallbackMIME is used for any extension not in the table.
const fallbackMIME = "application/octet-stream"

// mimeByExtension maps lowercase file extensions to the MIME type sent to
// the API. Inference is purely extension-based; file contents are never
// sniffed.
var mimeByExtension = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".mov":  "video/mov",
	".avi":  "video/avi",
	".webm": "video/webm",
	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
	".aac":  "audio/aac",
}

// extensionByMIME is the inverse table, used to name output files when the
// API returns binary media. Unknown MIME types map to no extension.
var extensionByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"video/mp4":  ".mp4",
	"video/mpeg": ".mpeg",
	"video/mov":  ".mov",
	"video/avi":  ".avi",
	"video/webm": ".webm",
	"audio/mp3":  ".mp3",
	"audio/wav":  ".wav",
	"audio/aac":  ".aac",
}

// mimeForPath returns the MIME type for a file path based on its extension.
func mimeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if m, ok := mimeByExtension[ext]; ok {
		return m
	}
	return fallbackMIME
}

// extensionForMIME returns the file extension for a MIME type, or "" if the
// type is not in the table.
func extensionForMIME(mimeType string) string {
	return extensionByMIME[mimeType]
}

// ensureExtension appends the extension implied by mimeType unless the name
// already ends with it. Names that already carry the right suffix (in any
// case) are returned unchanged, so the operation never double-appends.
func ensureExtension(name, mimeType string) string {
	ext := extensionForMIME(mimeType)
	if ext == "" || strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return name + ext
}
