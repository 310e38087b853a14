package declare_incident

import "github.com/m04kA/SMC-ProfileService/internal/domain"

// normalizeDescription обрезает описание до допустимой длины.
// Пустое описание допускается.
func normalizeDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= domain.MaxIncidentDescriptionLength {
		return description
	}
	return string(runes[:domain.MaxIncidentDescriptionLength])
}
