package constants

import "strings"

// AllowedExtensions holds the image extensions accepted for extraction.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"bmp":  {},
	"tif":  {},
	"tiff": {},
	"webp": {},
	"heic": {},
	"heif": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImageExt reports whether ext (already normalized) is a supported image type.
func IsImageExt(ext string) bool {
	_, ok := AllowedExtensions[ext]
	return ok
}

// IsHEICExt reports whether ext needs conversion before OCR.
func IsHEICExt(ext string) bool {
	return ext == "heic" || ext == "heif"
}
