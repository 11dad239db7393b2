package validation

import "strings"

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// ValidateImageURL acepta la URL si, en minúsculas, termina en una extensión de imagen permitida.
// No valida esquema, longitud ni existencia del recurso.
func ValidateImageURL(url string) (string, error) {
	if hasImageExtension(url) {
		return url, nil
	}
	return "", &ValidationError{Errors: []FieldError{{Field: "url", Tag: TagImageURL, Message: MsgInvalidImageFormat}}}
}

func hasImageExtension(url string) bool {
	lower := strings.ToLower(url)
	for _, ext := range allowedImageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
