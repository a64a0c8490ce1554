package service

import (
	"testing"

	"spa-concierge/internal/dto"
	"spa-concierge/internal/models"

	"go.uber.org/zap"
)

func testMatches(triggers ...string) []dto.Match {
	return []dto.Match{
		{
			Entry: models.KnowledgeEntry{
				ID:                 "safety.test",
				EscalationTriggers: triggers,
			},
			Score:  0.4,
			Reason: dto.ReasonSemantic,
		},
	}
}

func TestShouldEscalate_TriggerPresent(t *testing.T) {
	svc := NewEscalationService(zap.NewNop())

	if !svc.ShouldEscalate("I have trouble breathing", testMatches("trouble breathing")) {
		t.Fatal("expected escalation for trigger phrase in query")
	}
}

func TestShouldEscalate_CaseInsensitive(t *testing.T) {
	svc := NewEscalationService(zap.NewNop())

	if !svc.ShouldEscalate("SEVERE PAIN since last night", testMatches("Severe Pain")) {
		t.Fatal("expected case-insensitive trigger match")
	}
}

func TestShouldEscalate_SubstringInsideWord(t *testing.T) {
	svc := NewEscalationService(zap.NewNop())

	// Containment is accepted even inside unrelated words; the gate favors
	// false positives over missed emergencies.
	if !svc.ShouldEscalate("feeling feverish today", testMatches("fever")) {
		t.Fatal("expected substring containment to trigger")
	}
}

func TestShouldEscalate_NoTriggerInQuery(t *testing.T) {
	svc := NewEscalationService(zap.NewNop())

	if svc.ShouldEscalate("is swelling after filler normal", testMatches("severe pain", "vision changes")) {
		t.Fatal("benign query should not escalate")
	}
}

func TestShouldEscalate_EmptyInputs(t *testing.T) {
	svc := NewEscalationService(zap.NewNop())

	if svc.ShouldEscalate("", nil) {
		t.Fatal("empty query with no matches should not escalate")
	}
	if svc.ShouldEscalate("trouble breathing", nil) {
		t.Fatal("no matches means no triggers to match")
	}
	if svc.ShouldEscalate("anything", testMatches("")) {
		t.Fatal("empty trigger strings must be ignored")
	}
}

func TestShouldEscalate_OnlySurfacedMatchesCount(t *testing.T) {
	svc := NewEscalationService(zap.NewNop())

	// "fever" is a trigger somewhere in the library, but not on these
	// matches, so it must not fire.
	if svc.ShouldEscalate("I think I have a fever", testMatches("severe pain")) {
		t.Fatal("triggers outside the supplied matches must be ignored")
	}
}
