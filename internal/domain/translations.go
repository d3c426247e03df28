package domain

import "strings"

// Localized text for one checkpoint.
type CheckpointText struct {
	Name        string `yaml:"name"`
	Location    string `yaml:"location"`
	Description string `yaml:"description"`
}

// Localized assistant message templates. {{suggestions}} is replaced by a
// comma-separated list of checkpoint names.
type MessageText struct {
	Suggestions  string `yaml:"suggestions"`
	NoResults    string `yaml:"no_results"`
	PlanConfirm  string `yaml:"plan_confirmation"`
	NothingToAdd string `yaml:"nothing_to_add"`
}

// Language pack: checkpoint text keyed by checkpoint id, category labels and messages.
type LanguagePack struct {
	Checkpoints map[string]CheckpointText `yaml:"checkpoints"`
	Categories  map[Category]string       `yaml:"categories"`
	Messages    MessageText               `yaml:"messages"`
}

// Translations maps a language code to its pack.
type Translations map[string]LanguagePack

// Localize returns cp with translated text for lang.
// An unknown language or id returns cp unchanged; empty fields keep the original text.
func (t Translations) Localize(cp Checkpoint, lang string) Checkpoint {
	pack, ok := t[lang]
	if !ok {
		return cp
	}
	text, ok := pack.Checkpoints[cp.ID]
	if !ok {
		return cp
	}

	if text.Name != "" {
		cp.Name = text.Name
	}
	if text.Location != "" {
		cp.Location = text.Location
	}
	if text.Description != "" {
		cp.Description = text.Description
	}
	return cp
}

// LocalizeAll applies Localize to every checkpoint.
func (t Translations) LocalizeAll(cps []Checkpoint, lang string) []Checkpoint {
	out := make([]Checkpoint, 0, len(cps))
	for _, cp := range cps {
		out = append(out, t.Localize(cp, lang))
	}
	return out
}

// CategoryLabel returns the localized category label, or the raw category.
func (t Translations) CategoryLabel(c Category, lang string) string {
	if label, ok := t[lang].Categories[c]; ok && label != "" {
		return label
	}
	return string(c)
}

// Message picks a localized template, falling back to English and then to fallback.
func (t Translations) Message(lang string, pick func(MessageText) string, fallback string) string {
	if s := pick(t[lang].Messages); s != "" {
		return s
	}
	if s := pick(t["en"].Messages); s != "" {
		return s
	}
	return fallback
}

// FillSuggestions substitutes names into a {{suggestions}} template.
func FillSuggestions(template string, names []string) string {
	return strings.ReplaceAll(template, "{{suggestions}}", strings.Join(names, ", "))
}
