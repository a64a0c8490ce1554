package catalog

import "spa-concierge/internal/models"

var hormonesEntries = []models.KnowledgeEntry{
	{
		ID:          "hormones.hrt-overview",
		Topic:       "Hormone replacement therapy",
		Category:    models.CategoryHormones,
		Explanation: "Hormone replacement therapy restores estrogen, progesterone, or testosterone to healthy ranges when levels decline with age or menopause. Dosing is tailored to lab results and symptoms like fatigue, low libido, sleep disruption, mood changes, and brain fog, and is re-checked on a regular lab schedule.",
		WhatItHelpsWith: []string{
			"fatigue and low energy",
			"menopause symptoms like hot flashes and night sweats",
			"low libido",
			"sleep and mood",
		},
		WhoItsFor: []string{
			"adults with symptomatic, lab-confirmed hormone decline",
		},
		WhoItsNotFor: []string{
			"people with certain hormone-sensitive cancers",
			"untreated blood-clotting disorders",
		},
		CommonQuestions: []string{
			"How soon will I feel different?",
			"Pellets, injections, or creams - which is right for me?",
			"How often is lab work done?",
		},
		SafetyNotes: []string{
			"Therapy always starts with comprehensive lab work, never symptoms alone.",
		},
		EscalationTriggers: []string{
			"chest pain",
			"leg swelling",
			"shortness of breath",
		},
		RelatedTopics: []string{
			"hormones.metabolic-panel",
			"expectations.hrt-timeline",
		},
		UpdatedAt: "2025-05-20T00:00:00Z",
		Version:   3,
	},
	{
		ID:          "hormones.metabolic-panel",
		Topic:       "Baseline lab work and metabolic panels",
		Category:    models.CategoryHormones,
		Explanation: "Before starting hormone or weight-loss therapy, a baseline panel measures thyroid function, sex hormones, metabolic markers, and vitamin levels. The panel establishes a starting point so changes can be attributed to treatment rather than guesswork, and it screens for conditions that would change the plan.",
		WhatItHelpsWith: []string{
			"identifying the actual driver of fatigue or weight changes",
			"safe, personalized dosing",
		},
		WhoItsFor: []string{
			"anyone starting hormone or medical weight-loss care",
		},
		WhoItsNotFor:    []string{},
		CommonQuestions: []string{
			"Do I need to fast before the blood draw?",
			"How long do results take?",
		},
		SafetyNotes: []string{},
		EscalationTriggers: []string{
			"fainting",
		},
		RelatedTopics: []string{
			"hormones.hrt-overview",
			"weight-loss.program-structure",
		},
		UpdatedAt: "2025-05-20T00:00:00Z",
		Version:   2,
	},
}
