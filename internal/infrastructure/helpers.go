package infrastructure

import "github.com/storekit/admin-backend/pkg/e"

// GetExtensionFromMIME maps an image MIME type to a file extension.
// Supports jpeg, jpg, png, webp. Returns e.ErrUnsupportedMediaType for
// anything else.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	default:
		return "bin", e.ErrUnsupportedMediaType
	}
}
