package catalog

import "spa-concierge/internal/models"

var painRecoveryEntries = []models.KnowledgeEntry{
	{
		ID:          "pain-recovery.joint-injections",
		Topic:       "Regenerative joint injections",
		Category:    models.CategoryPainRecovery,
		Explanation: "Regenerative joint injections use concentrated platelets or similar biologics injected into an aching knee, shoulder, or hip to support the body's own repair response. They are an option for people with overuse injuries or early arthritis who want to delay or avoid steroids and surgery. Relief builds over weeks, not days.",
		WhatItHelpsWith: []string{
			"knee, shoulder, and hip pain from overuse",
			"early arthritis symptoms",
			"tendon and ligament recovery",
		},
		WhoItsFor: []string{
			"active adults with nagging joint pain",
		},
		WhoItsNotFor: []string{
			"advanced bone-on-bone arthritis",
			"active joint infection",
		},
		CommonQuestions: []string{
			"How soon can I train again?",
			"How is this different from a cortisone shot?",
		},
		SafetyNotes: []string{
			"Expect soreness in the joint for several days after injection.",
		},
		EscalationTriggers: []string{
			"joint is hot and swollen",
			"fever",
			"severe pain",
		},
		RelatedTopics: []string{
			"pain-recovery.shockwave",
		},
		UpdatedAt: "2025-01-30T00:00:00Z",
		Version:   2,
	},
	{
		ID:          "pain-recovery.shockwave",
		Topic:       "Shockwave therapy",
		Category:    models.CategoryPainRecovery,
		Explanation: "Shockwave therapy sends acoustic pulses into injured tendons and muscle tissue to stimulate blood flow and healing. Sessions take about 15 minutes with no needles and no downtime, and are typically done weekly for several weeks for conditions like plantar fasciitis and tennis elbow.",
		WhatItHelpsWith: []string{
			"plantar fasciitis",
			"tennis elbow and tendinopathy",
			"chronic muscle tightness",
		},
		WhoItsFor: []string{
			"people with stubborn tendon pain that rest has not fixed",
		},
		WhoItsNotFor: []string{
			"people on blood thinners",
			"treatment over a recent fracture",
		},
		CommonQuestions: []string{
			"Does shockwave hurt?",
			"How many sessions are typical?",
		},
		SafetyNotes:        []string{},
		EscalationTriggers: []string{},
		RelatedTopics: []string{
			"pain-recovery.joint-injections",
		},
		UpdatedAt: "2025-01-30T00:00:00Z",
		Version:   1,
	},
}
