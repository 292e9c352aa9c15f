package domain

// Image describes an image object stored in S3-compatible storage.
type Image struct {
	ID        string // uuid
	Bucket    string
	ObjectKey string
	Bytes     []byte
	// Pass -1 in Size when the stream length is unknown
	// (note: passing -1 makes the client allocate a large buffer).
	Size        *int64
	ContentType *string // Example: "image/png"
}

func NewImage(id string, bucket string, objectKey string, data []byte, size *int64, contentType *string) *Image {
	return &Image{
		ID:          id,
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Bytes:       data,
		Size:        size,
		ContentType: contentType,
	}
}
