package dto

import "spa-concierge/internal/models"

// Match reasons reported to the caller.
const (
	ReasonSemantic      = "semantic"
	ReasonCategoryBoost = "category_boost"
)

type QueryRequest struct {
	Query      string `json:"query"`
	MaxMatches *int   `json:"maxMatches,omitempty"`
}

// LibraryInfo is the provenance metadata of the snapshot a result was
// computed against.
type LibraryInfo struct {
	Source    string `json:"source"`
	Version   int    `json:"version"`
	UpdatedAt string `json:"updatedAt"`
}

type Match struct {
	Entry  models.KnowledgeEntry `json:"entry"`
	Score  float64               `json:"score"`
	Reason string                `json:"reason"`
}

type RetrievalResult struct {
	Library            LibraryInfo             `json:"library"`
	Matches            []Match                 `json:"matches"`
	Related            []models.KnowledgeEntry `json:"related"`
	SuggestedQuestions []string                `json:"suggestedQuestions"`
}

// QueryResponse bundles the retrieval result with the escalation verdict so
// the chat layer does not need a second round trip.
type QueryResponse struct {
	RetrievalResult
	Escalate bool `json:"escalate"`
}

type EscalationRequest struct {
	Query   string  `json:"query"`
	Matches []Match `json:"matches"`
}

type EscalationResponse struct {
	Escalate bool `json:"escalate"`
}

type LibraryResponse struct {
	Library    LibraryInfo `json:"library"`
	EntryCount int         `json:"entryCount"`
}
