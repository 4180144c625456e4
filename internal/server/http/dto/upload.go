package dto

// UploadResponse acknowledges a stored image.
type UploadResponse struct {
	Message  string `json:"message"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
