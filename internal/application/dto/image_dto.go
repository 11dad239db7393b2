package dto

// ImageUploadResponse respuesta de POST /api/upload-image.
// URL debe terminar en una extensión de imagen permitida (ver validation.ValidateImageURL).
type ImageUploadResponse struct {
	URL         string  `json:"url" validate:"present,image_url"`
	Filename    string  `json:"filename" validate:"present"`
	Size        int64   `json:"size" validate:"present"`
	ContentType *string `json:"content_type"`
}
