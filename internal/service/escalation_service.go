package service

import (
	"strings"

	"spa-concierge/internal/dto"

	"go.uber.org/zap"
)

// EscalationService decides whether a query should be routed to the safety
// response path instead of general education. The check is deliberately
// conservative: plain substring containment over the trigger phrases of the
// entries already surfaced as relevant, accepting false positives (a short
// trigger can match inside an unrelated word) in favor of caution.
type EscalationService struct {
	logger *zap.Logger
}

func NewEscalationService(logger *zap.Logger) *EscalationService {
	return &EscalationService{logger: logger}
}

// ShouldEscalate reports whether any trigger phrase from the supplied
// matches appears in the query. With no matches there is nothing to
// trigger on and the answer is false.
func (s *EscalationService) ShouldEscalate(query string, matches []dto.Match) bool {
	q := strings.ToLower(query)
	if q == "" {
		return false
	}

	for _, m := range matches {
		for _, trigger := range m.Entry.EscalationTriggers {
			t := strings.ToLower(trigger)
			if t == "" {
				continue
			}
			if strings.Contains(q, t) {
				s.logger.Warn("Escalation trigger matched",
					zap.String("trigger", t),
					zap.String("entry", m.Entry.ID),
				)
				return true
			}
		}
	}
	return false
}
