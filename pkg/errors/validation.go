package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxPathLength bounds user-supplied file paths.
const maxPathLength = 4096

// supportedExtensions lists the image formats the codec can read and write.
// WebP is decode-only and handled separately by [ValidateInputPath].
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// ValidateFactor checks a magnification factor. Each logical pixel becomes a
// factor×factor block, so anything below 1 cannot be drawn.
func ValidateFactor(factor int) error {
	if factor < 1 {
		return New(ErrCodeInvalidInput, "pixel size must be at least 1 (got %d)", factor)
	}
	return nil
}

// ValidateSegments checks a strip count before it divides width. Zero is
// rejected before any division happens. Counts above the width are allowed:
// every segment but the last is then zero columns wide.
func ValidateSegments(numSegments, width int) error {
	if numSegments < 1 {
		return New(ErrCodeInvalidInput, "number of segments must be at least 1 (got %d)", numSegments)
	}
	if width < 0 {
		return New(ErrCodeInvalidInput, "image width must not be negative (got %d)", width)
	}
	return nil
}

// ValidateInputPath validates a path to an image that will be decoded.
func ValidateInputPath(path string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] && ext != ".webp" {
		return New(ErrCodeInvalidFormat, "unsupported image format %q for %s", ext, path)
	}
	return nil
}

// ValidateOutputPath validates a path the encoder will write to.
// The extension selects the output format.
func ValidateOutputPath(path string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return New(ErrCodeInvalidFormat, "cannot write image format %q for %s (use png, jpg, gif, bmp or tiff)", ext, path)
	}
	return nil
}

// validatePath applies the checks shared by input and output paths:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func validatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
