package constants

import "strings"

// Formats for dispatcher routing.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed file formats handled by the dispatcher.
var FileTypes = []string{PDF, IMAGE}

// AllowedExtensions holds the default allowed file extensions for uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDF reports whether a MIME type or filename identifies a PDF.
func IsPDF(mime, filename string) bool {
	if strings.EqualFold(strings.TrimSpace(mime), "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

// ExtForMIME maps a content type to a storage extension, defaulting to jpg
// (messaging providers deliver images as jpeg unless told otherwise).
func ExtForMIME(mime string) string {
	switch {
	case strings.Contains(mime, "pdf"):
		return "pdf"
	case strings.Contains(mime, "png"):
		return "png"
	default:
		return "jpg"
	}
}
