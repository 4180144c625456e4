package model

// MaxImageSize is the upload ceiling for product images.
const MaxImageSize = 5 << 20

// ImageUpload is a file received from an administrator.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StoredImage locates an uploaded image on the media host.
type StoredImage struct {
	URL      string
	PublicID string
}
