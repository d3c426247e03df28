package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTranslations() Translations {
	return Translations{
		"en": {
			Messages: MessageText{
				Suggestions: "Try {{suggestions}}.",
				NoResults:   "Nothing found.",
			},
		},
		"zh": {
			Checkpoints: map[string]CheckpointText{
				"cafe": {Name: "咖啡厅", Location: "中央区域"},
			},
			Categories: map[Category]string{CategoryDining: "餐饮"},
			Messages:   MessageText{Suggestions: "建议：{{suggestions}}。"},
		},
	}
}

func TestLocalize(t *testing.T) {
	tr := sampleTranslations()
	cafe := Checkpoint{ID: "cafe", Name: "Cafe", Location: "Central", Description: "Coffee", Category: CategoryDining}

	zh := tr.Localize(cafe, "zh")
	assert.Equal(t, "咖啡厅", zh.Name)
	assert.Equal(t, "中央区域", zh.Location)
	assert.Equal(t, "Coffee", zh.Description, "empty translation keeps the original")
	assert.Equal(t, "Cafe", cafe.Name, "input must not be modified")

	assert.Equal(t, cafe, tr.Localize(cafe, "fr"), "unknown language")

	gate := Checkpoint{ID: "gate", Name: "Gate"}
	assert.Equal(t, gate, tr.Localize(gate, "zh"), "unknown id")

	all := tr.LocalizeAll([]Checkpoint{cafe, gate}, "zh")
	assert.Equal(t, []string{"咖啡厅", "Gate"}, []string{all[0].Name, all[1].Name})
}

func TestCategoryLabel(t *testing.T) {
	tr := sampleTranslations()

	assert.Equal(t, "餐饮", tr.CategoryLabel(CategoryDining, "zh"))
	assert.Equal(t, "lounge", tr.CategoryLabel(CategoryLounge, "zh"))
	assert.Equal(t, "dining", tr.CategoryLabel(CategoryDining, "en"))
}

func TestMessageFallbacks(t *testing.T) {
	tr := sampleTranslations()
	noResults := func(m MessageText) string { return m.NoResults }
	nothing := func(m MessageText) string { return m.NothingToAdd }

	assert.Equal(t, "Nothing found.", tr.Message("zh", noResults, "x"), "falls back to english")
	assert.Equal(t, "x", tr.Message("zh", nothing, "x"), "falls back to the default")
	assert.Equal(t, "建议：{{suggestions}}。", tr.Message("zh", func(m MessageText) string { return m.Suggestions }, ""))
}

func TestFillSuggestions(t *testing.T) {
	got := FillSuggestions("Try {{suggestions}}.", []string{"Duty Free", "Jade Dragon"})
	assert.Equal(t, "Try Duty Free, Jade Dragon.", got)
}
