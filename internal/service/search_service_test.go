package service

import (
	"context"
	"math"
	"reflect"
	"testing"
	"time"

	"spa-concierge/internal/catalog"
	"spa-concierge/internal/dto"
	"spa-concierge/internal/models"
	"spa-concierge/pkg/config"

	"go.uber.org/zap"
)

func newTestSearchService() *SearchService {
	libraries := newTestLibraryService("", time.Minute)
	return NewSearchService(libraries, &config.RetrievalConfig{MaxMatches: 4}, zap.NewNop())
}

func TestRetrieve_EmptyQueryMatchesNothing(t *testing.T) {
	svc := newTestSearchService()

	for _, query := range []string{"", "   ", "\n\t"} {
		result := svc.Retrieve(context.Background(), query, -1)
		if len(result.Matches) != 0 {
			t.Fatalf("query %q produced %d matches, want 0", query, len(result.Matches))
		}
		if len(result.Related) != 0 || len(result.SuggestedQuestions) != 0 {
			t.Fatalf("query %q produced related/questions without matches", query)
		}
	}
}

func TestRetrieve_Deterministic(t *testing.T) {
	svc := newTestSearchService()
	ctx := context.Background()

	first := svc.Retrieve(ctx, "is swelling after filler normal", -1)
	for i := 0; i < 5; i++ {
		again := svc.Retrieve(ctx, "is swelling after filler normal", -1)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("retrieval is not deterministic: run %d differs", i)
		}
	}
}

func TestRetrieve_ScoreBoundsAndThreshold(t *testing.T) {
	svc := newTestSearchService()

	queries := []string{
		"botox forehead lines when do results show",
		"is swelling after filler normal",
		"hair thinning prp",
		"xyzzy",
	}
	for _, q := range queries {
		result := svc.Retrieve(context.Background(), q, -1)
		for _, m := range result.Matches {
			if m.Score < 0 || m.Score > 1 {
				t.Fatalf("query %q: score %v out of [0,1]", q, m.Score)
			}
			if m.Score < scoreThreshold {
				t.Fatalf("query %q: match %q below threshold (%v)", q, m.Entry.ID, m.Score)
			}
		}
	}
}

func TestRetrieve_CapsRespected(t *testing.T) {
	svc := newTestSearchService()

	result := svc.Retrieve(context.Background(), "botox filler swelling results safety", 2)
	if len(result.Matches) > 2 {
		t.Fatalf("matches = %d, want <= 2", len(result.Matches))
	}
	if len(result.Related) > maxRelatedEntries {
		t.Fatalf("related = %d, want <= %d", len(result.Related), maxRelatedEntries)
	}
	if len(result.SuggestedQuestions) > maxSuggestedQuestions {
		t.Fatalf("questions = %d, want <= %d", len(result.SuggestedQuestions), maxSuggestedQuestions)
	}
}

func TestRetrieve_ZeroMaxMatches(t *testing.T) {
	svc := newTestSearchService()

	result := svc.Retrieve(context.Background(), "botox forehead", 0)
	if len(result.Matches) != 0 || len(result.Related) != 0 || len(result.SuggestedQuestions) != 0 {
		t.Fatalf("maxMatches=0 should return empty lists, got %+v", result)
	}
}

func TestRetrieve_ReportsLibraryProvenance(t *testing.T) {
	svc := newTestSearchService()

	result := svc.Retrieve(context.Background(), "botox", -1)
	if result.Library.Source != string(models.SourceLocal) {
		t.Fatalf("library source = %q, want local", result.Library.Source)
	}
	if result.Library.Version == 0 || result.Library.UpdatedAt == "" {
		t.Fatalf("library metadata missing: %+v", result.Library)
	}
}

func TestRetrieve_BotoxScenario(t *testing.T) {
	svc := newTestSearchService()

	result := svc.Retrieve(context.Background(), "botox forehead lines when do results show", -1)
	if len(result.Matches) == 0 {
		t.Fatal("expected matches for botox query")
	}

	found := false
	for _, m := range result.Matches {
		if m.Entry.ID == "injectables.botox-basics" || m.Entry.ID == "expectations.neuromodulator-timeline" {
			found = true
		}
	}
	if !found {
		ids := make([]string, 0, len(result.Matches))
		for _, m := range result.Matches {
			ids = append(ids, m.Entry.ID)
		}
		t.Fatalf("expected botox-basics or neuromodulator-timeline in top matches, got %v", ids)
	}

	hasQuestion := false
	for _, q := range result.SuggestedQuestions {
		if q == "When do results kick in?" {
			hasQuestion = true
		}
	}
	if !hasQuestion {
		t.Fatalf("expected %q among suggested questions, got %v", "When do results kick in?", result.SuggestedQuestions)
	}
}

func TestRetrieve_FillerSwellingScenario(t *testing.T) {
	svc := newTestSearchService()
	escalations := NewEscalationService(zap.NewNop())
	ctx := context.Background()

	query := "is swelling after filler normal"
	result := svc.Retrieve(ctx, query, -1)

	found := false
	for _, m := range result.Matches {
		if m.Entry.ID == "aftercare.filler-swelling-bruising" || m.Entry.ID == "expectations.filler-timeline" {
			found = true
		}
	}
	if !found {
		ids := make([]string, 0, len(result.Matches))
		for _, m := range result.Matches {
			ids = append(ids, m.Entry.ID)
		}
		t.Fatalf("expected a filler aftercare/timeline entry in matches, got %v", ids)
	}

	if escalations.ShouldEscalate(query, result.Matches) {
		t.Fatal("benign swelling question should not escalate")
	}

	urgent := query + " with severe pain"
	urgentResult := svc.Retrieve(ctx, urgent, -1)
	if !escalations.ShouldEscalate(urgent, urgentResult.Matches) {
		t.Fatal("adding 'severe pain' should flip escalation to true")
	}
}

func TestRankEntries_SelfSimilarityScoresOne(t *testing.T) {
	entries := catalog.Entries()
	entry := entries[0]

	ranked := rankEntries(entries, searchableText(entry))
	if ranked[0].Entry.ID != entry.ID {
		t.Fatalf("top match = %q, want %q", ranked[0].Entry.ID, entry.ID)
	}
	if math.Abs(ranked[0].Score-1.0) > 1e-9 {
		t.Fatalf("self score = %v, want 1.0", ranked[0].Score)
	}
}

func TestRankEntries_CategoryBoostMonotonic(t *testing.T) {
	base := models.KnowledgeEntry{
		Topic:       "Neuromodulator overview",
		Explanation: "Softens movement lines across the upper face.",
	}
	hinted := base
	hinted.ID = "test.hinted"
	hinted.Category = models.CategoryInjectables
	other := base
	other.ID = "test.other"
	other.Category = models.Category("unlisted-category")

	ranked := rankEntries([]models.KnowledgeEntry{hinted, other}, "botox for my upper face")

	scores := map[string]float64{}
	reasons := map[string]string{}
	for _, m := range ranked {
		scores[m.Entry.ID] = m.Score
		reasons[m.Entry.ID] = m.Reason
	}

	diff := scores["test.hinted"] - scores["test.other"]
	if diff < categoryBoost-1e-9 {
		t.Fatalf("hinted entry leads by %v, want >= %v", diff, categoryBoost)
	}
	if reasons["test.hinted"] != dto.ReasonCategoryBoost {
		t.Fatalf("hinted reason = %q, want %q", reasons["test.hinted"], dto.ReasonCategoryBoost)
	}
	if reasons["test.other"] != dto.ReasonSemantic {
		t.Fatalf("unhinted reason = %q, want %q", reasons["test.other"], dto.ReasonSemantic)
	}
}

func TestGatherRelated_DropsDanglingIDs(t *testing.T) {
	entries := []models.KnowledgeEntry{
		{ID: "a.one", Topic: "One", RelatedTopics: []string{"a.two", "ghost.nowhere"}},
		{ID: "a.two", Topic: "Two"},
	}
	matches := []dto.Match{{Entry: entries[0], Score: 0.5, Reason: dto.ReasonSemantic}}

	related := gatherRelated(entries, matches)
	if len(related) != 1 || related[0].ID != "a.two" {
		t.Fatalf("related = %+v, want just a.two", related)
	}
}

func TestSuggestQuestions_DeduplicatesAndCaps(t *testing.T) {
	matches := []dto.Match{
		{Entry: models.KnowledgeEntry{CommonQuestions: []string{"Q1?", "Q2?", "Q3?"}}},
		{Entry: models.KnowledgeEntry{CommonQuestions: []string{"Q1?", "Q4?"}}},
		{Entry: models.KnowledgeEntry{CommonQuestions: []string{"Q5?", "Q6?"}}},
		{Entry: models.KnowledgeEntry{CommonQuestions: []string{"Q7?", "Q8?"}}},
	}
	related := []models.KnowledgeEntry{
		{CommonQuestions: []string{"Q9?"}},
	}

	questions := suggestQuestions(matches, related)
	if len(questions) > maxSuggestedQuestions {
		t.Fatalf("questions = %d, want <= %d", len(questions), maxSuggestedQuestions)
	}

	seen := map[string]bool{}
	for _, q := range questions {
		if seen[q] {
			t.Fatalf("duplicate question %q in %v", q, questions)
		}
		seen[q] = true
	}
	// Q3 is each entry's third question and never eligible.
	if seen["Q3?"] {
		t.Fatalf("third question of a match should not appear, got %v", questions)
	}
}
