package service

import (
	"context"
	"sort"
	"strings"

	"spa-concierge/internal/dto"
	"spa-concierge/internal/models"
	"spa-concierge/pkg/config"

	"go.uber.org/zap"
)

const (
	// scoreThreshold is the minimum score an entry needs to be returned.
	scoreThreshold = 0.08
	// categoryBoost is added when the query hints an entry's category.
	// Numerically equal to the threshold today; tuned independently.
	categoryBoost = 0.08

	maxRelatedEntries     = 6
	maxSuggestedQuestions = 6
	questionsPerMatch     = 2
	questionsPerRelated   = 1
)

// SearchService ranks knowledge entries against a free-text query using
// trigram cosine similarity plus a category keyword boost, then gathers
// related entries and suggested follow-up questions for the chat layer.
type SearchService struct {
	libraries         *LibraryService
	defaultMaxMatches int
	logger            *zap.Logger
}

func NewSearchService(libraries *LibraryService, cfg *config.RetrievalConfig, logger *zap.Logger) *SearchService {
	return &SearchService{
		libraries:         libraries,
		defaultMaxMatches: cfg.MaxMatches,
		logger:            logger,
	}
}

// Retrieve scores every entry in the current library against the query.
// A negative maxMatches selects the configured default; zero is legal and
// returns an empty result. An empty query is not an error: nothing clears
// the score threshold, so the match list comes back empty.
func (s *SearchService) Retrieve(ctx context.Context, query string, maxMatches int) *dto.RetrievalResult {
	if maxMatches < 0 {
		maxMatches = s.defaultMaxMatches
	}

	lib := s.libraries.GetLibrary(ctx)

	ranked := rankEntries(lib.Entries, query)

	matches := make([]dto.Match, 0, maxMatches)
	for _, m := range ranked {
		if m.Score < scoreThreshold {
			break
		}
		if len(matches) >= maxMatches {
			break
		}
		matches = append(matches, m)
	}

	related := gatherRelated(lib.Entries, matches)
	questions := suggestQuestions(matches, related)

	s.logger.Info("Knowledge retrieval completed",
		zap.String("source", string(lib.Source)),
		zap.Int("matches", len(matches)),
	)

	return &dto.RetrievalResult{
		Library: dto.LibraryInfo{
			Source:    string(lib.Source),
			Version:   lib.Version,
			UpdatedAt: lib.UpdatedAt,
		},
		Matches:            matches,
		Related:            related,
		SuggestedQuestions: questions,
	}
}

// searchableText joins the fields an entry is ranked by. The who-lists,
// safety notes, and escalation triggers are deliberately left out: they
// drive display and escalation, not relevance.
func searchableText(e models.KnowledgeEntry) string {
	parts := []string{
		e.Topic,
		string(e.Category),
		e.Explanation,
		strings.Join(e.WhatItHelpsWith, " "),
		strings.Join(e.CommonQuestions, " "),
		strings.Join(e.RelatedTopics, " "),
	}
	return strings.Join(parts, " ")
}

// rankEntries scores every entry and returns them sorted by score
// descending. The sort is stable, so ties keep library order; callers must
// not rely on tie order.
func rankEntries(entries []models.KnowledgeEntry, query string) []dto.Match {
	queryVec := trigramVector(query)
	hints := categoryHints(query)

	ranked := make([]dto.Match, 0, len(entries))
	for _, entry := range entries {
		score := cosineSimilarity(queryVec, trigramVector(searchableText(entry)))
		reason := dto.ReasonSemantic
		if hints[entry.Category] {
			score += categoryBoost
			if score > 1 {
				score = 1
			}
			reason = dto.ReasonCategoryBoost
		}
		ranked = append(ranked, dto.Match{Entry: entry, Score: score, Reason: reason})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// gatherRelated resolves the union of the matches' relatedTopics against the
// library, in library iteration order. Dangling ids are silently dropped.
func gatherRelated(entries []models.KnowledgeEntry, matches []dto.Match) []models.KnowledgeEntry {
	wanted := make(map[string]bool)
	for _, m := range matches {
		for _, id := range m.Entry.RelatedTopics {
			wanted[id] = true
		}
	}

	related := make([]models.KnowledgeEntry, 0, maxRelatedEntries)
	for _, entry := range entries {
		if len(related) >= maxRelatedEntries {
			break
		}
		if wanted[entry.ID] {
			related = append(related, entry)
		}
	}
	return related
}

// suggestQuestions takes up to two commonQuestions per match, then one per
// related entry, de-duplicating exact repeats as they are encountered.
func suggestQuestions(matches []dto.Match, related []models.KnowledgeEntry) []string {
	seen := make(map[string]bool)
	questions := make([]string, 0, maxSuggestedQuestions)

	add := func(qs []string, limit int) {
		for i, q := range qs {
			if i >= limit || len(questions) >= maxSuggestedQuestions {
				return
			}
			if seen[q] {
				continue
			}
			seen[q] = true
			questions = append(questions, q)
		}
	}

	for _, m := range matches {
		add(m.Entry.CommonQuestions, questionsPerMatch)
	}
	for _, entry := range related {
		add(entry.CommonQuestions, questionsPerRelated)
	}
	return questions
}
