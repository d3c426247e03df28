package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/platform/obs"
	"terminal-itinerary-service/internal/ports"

	"github.com/rs/zerolog"
)

// MaxFallbackSuggestions caps the local keyword matcher.
const MaxFallbackSuggestions = 3

type SuggestionSource string

const (
	SourceProvider SuggestionSource = "provider"
	SourceFallback SuggestionSource = "fallback"
	SourcePlanDay  SuggestionSource = "plan_my_day"
	SourceEmpty    SuggestionSource = "empty"
)

// Suggestion is what the assistant proposes for a query.
// When NeedsConfirmation is set, the caller should ask before adding Checkpoints.
type Suggestion struct {
	Text              string
	Checkpoints       []domain.Checkpoint
	Source            SuggestionSource
	NeedsConfirmation bool
}

// IDs returns the proposed checkpoint ids in order.
func (s Suggestion) IDs() []string {
	ids := make([]string, 0, len(s.Checkpoints))
	for _, cp := range s.Checkpoints {
		ids = append(ids, cp.ID)
	}
	return ids
}

// keywordRule maps a query substring to a category. Order matters: the first
// rule whose keyword appears in the query wins.
type keywordRule struct {
	keyword  string
	category domain.Category
}

var keywordRules = []keywordRule{
	{"lounge", domain.CategoryLounge},
	{"休息室", domain.CategoryLounge},
	{"貴賓室", domain.CategoryLounge},
	{"eat", domain.CategoryDining},
	{"food", domain.CategoryDining},
	{"dining", domain.CategoryDining},
	{"吃", domain.CategoryDining},
	{"餐廳", domain.CategoryDining},
	{"餐饮", domain.CategoryDining},
	{"吃飯", domain.CategoryDining},
	{"shop", domain.CategoryShopping},
	{"shopping", domain.CategoryShopping},
	{"購物", domain.CategoryShopping},
	{"商店", domain.CategoryShopping},
	{"rest", domain.CategoryRestroom},
	{"restroom", domain.CategoryRestroom},
	{"洗手間", domain.CategoryRestroom},
	{"gate", domain.CategoryGate},
	{"登機口", domain.CategoryGate},
}

const planMyDayPhrase = "plan my day"

// Suggester turns free-text queries into checkpoint proposals.
//
// The external provider is tried first; any provider failure is logged and
// answered by the local keyword matcher instead, so callers never see an error.
type Suggester struct {
	catalog      *domain.Catalog
	provider     ports.SuggestionProvider
	translations domain.Translations
	logger       zerolog.Logger
}

// NewSuggester wires a suggester. A nil provider means keyword matching only.
func NewSuggester(
	catalog *domain.Catalog,
	provider ports.SuggestionProvider,
	translations domain.Translations,
) (*Suggester, error) {
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("new suggester: %w", domain.ErrCatalogUnavailable)
	}

	return &Suggester{
		catalog:      catalog,
		provider:     provider,
		translations: translations,
		logger:       obs.Component("suggester"),
	}, nil
}

// Suggest answers a traveler query given the current selection.
func (s *Suggester) Suggest(ctx context.Context, query, lang string, selected []string) Suggestion {
	if strings.TrimSpace(query) == "" {
		return Suggestion{Source: SourceEmpty, Checkpoints: []domain.Checkpoint{}}
	}

	if strings.Contains(strings.ToLower(query), planMyDayPhrase) {
		return s.PlanMyDay(lang, selected)
	}

	if s.provider != nil {
		suggestion, err := s.fromProvider(ctx, query, lang, selected)
		if err == nil {
			return suggestion
		}
		s.logger.Warn().
			Err(err).
			Str("req_id", obs.RequestID(ctx)).
			Msg("suggestion provider failed, using keyword fallback")
	}

	matches := s.translations.LocalizeAll(KeywordSuggestions(s.catalog.All(), query), lang)
	text := s.translations.Message(lang, func(m domain.MessageText) string { return m.NoResults }, "")
	if len(matches) > 0 {
		template := s.translations.Message(lang, func(m domain.MessageText) string { return m.Suggestions }, "{{suggestions}}")
		text = domain.FillSuggestions(template, names(matches))
	}

	return Suggestion{
		Text:        text,
		Checkpoints: matches,
		Source:      SourceFallback,
	}
}

func (s *Suggester) fromProvider(ctx context.Context, query, lang string, selected []string) (_ Suggestion, err error) {
	defer obs.Time(ctx, "suggest.provider")(&err)

	unselected := make([]domain.Checkpoint, 0, s.catalog.Len())
	for _, cp := range s.catalog.All() {
		if !slices.Contains(selected, cp.ID) {
			unselected = append(unselected, s.translations.Localize(cp, lang))
		}
	}

	res, err := s.provider.Suggest(ctx, ports.SuggestionRequest{
		Query:      query,
		Language:   lang,
		Candidates: unselected,
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("suggest: provider: %w", err)
	}

	picked := make([]domain.Checkpoint, 0, len(res.CheckpointIDs))
	for _, id := range res.CheckpointIDs {
		idx := slices.IndexFunc(unselected, func(cp domain.Checkpoint) bool { return cp.ID == id })
		if idx < 0 {
			continue
		}
		picked = append(picked, unselected[idx])
	}

	return Suggestion{
		Text:              res.Text,
		Checkpoints:       picked,
		Source:            SourceProvider,
		NeedsConfirmation: len(picked) > 0,
	}, nil
}

// PlanMyDay proposes the first dining, lounge and shopping checkpoints of the
// catalog, minus those already selected.
func (s *Suggester) PlanMyDay(lang string, selected []string) Suggestion {
	all := s.translations.LocalizeAll(s.catalog.All(), lang)

	picked := make([]domain.Checkpoint, 0, 3)
	for _, category := range []domain.Category{domain.CategoryDining, domain.CategoryLounge, domain.CategoryShopping} {
		idx := slices.IndexFunc(all, func(cp domain.Checkpoint) bool { return cp.Category == category })
		if idx < 0 || slices.Contains(selected, all[idx].ID) {
			continue
		}
		picked = append(picked, all[idx])
	}

	if len(picked) == 0 {
		return Suggestion{
			Text:        s.translations.Message(lang, func(m domain.MessageText) string { return m.NothingToAdd }, ""),
			Checkpoints: picked,
			Source:      SourcePlanDay,
		}
	}

	template := s.translations.Message(lang, func(m domain.MessageText) string { return m.PlanConfirm }, "{{suggestions}}")
	return Suggestion{
		Text:              domain.FillSuggestions(template, names(picked)),
		Checkpoints:       picked,
		Source:            SourcePlanDay,
		NeedsConfirmation: true,
	}
}

// KeywordSuggestions is the local matcher used when the provider is unavailable.
//
// The query is lowercased and checked against the keyword table in order; the
// first hit selects a category. Up to MaxFallbackSuggestions non-mandatory
// checkpoints of that category are returned in catalog order. Without a hit,
// the first non-mandatory checkpoints are returned instead.
func KeywordSuggestions(catalog []domain.Checkpoint, query string) []domain.Checkpoint {
	normalized := strings.ToLower(query)
	if strings.TrimSpace(normalized) == "" {
		return []domain.Checkpoint{}
	}

	match := func(domain.Checkpoint) bool { return true }
	for _, rule := range keywordRules {
		if strings.Contains(normalized, rule.keyword) {
			category := rule.category
			match = func(cp domain.Checkpoint) bool { return cp.Category == category }
			break
		}
	}

	out := make([]domain.Checkpoint, 0, MaxFallbackSuggestions)
	for _, cp := range catalog {
		if len(out) == MaxFallbackSuggestions {
			break
		}
		if cp.Mandatory || !match(cp) {
			continue
		}
		out = append(out, cp)
	}

	return out
}

func names(cps []domain.Checkpoint) []string {
	out := make([]string, 0, len(cps))
	for _, cp := range cps {
		out = append(out, cp.Name)
	}
	return out
}
