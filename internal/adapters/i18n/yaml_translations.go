package i18n

import (
	"fmt"
	"os"
	"terminal-itinerary-service/internal/domain"

	"gopkg.in/yaml.v3"
)

// LoadTranslations reads a YAML document keyed by language code.
// An empty path yields no translations; lookups then fall back to catalog text.
func LoadTranslations(path string) (domain.Translations, error) {
	if path == "" {
		return domain.Translations{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load translations: read %q: %w", path, err)
	}

	return ParseTranslations(data)
}

// ParseTranslations decodes a translations document.
func ParseTranslations(data []byte) (domain.Translations, error) {
	var t domain.Translations
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse translations: %w", err)
	}
	if t == nil {
		t = domain.Translations{}
	}

	for lang, pack := range t {
		for c := range pack.Categories {
			if _, err := domain.ParseCategory(string(c)); err != nil {
				return nil, fmt.Errorf("parse translations: language %q: %w", lang, err)
			}
		}
	}

	return t, nil
}
