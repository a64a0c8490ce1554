package catalog

import "spa-concierge/internal/models"

var injectablesEntries = []models.KnowledgeEntry{
	{
		ID:          "injectables.botox-basics",
		Topic:       "Botox and other neuromodulators",
		Category:    models.CategoryInjectables,
		Explanation: "Botox, Dysport, and similar neuromodulators temporarily relax the small facial muscles that crease the skin when you frown, squint, or raise your brows. Softening that movement smooths forehead lines, the 11s between the brows, and crow's feet. Treatment takes about ten minutes, and results build gradually rather than appearing the same day.",
		WhatItHelpsWith: []string{
			"forehead lines",
			"frown lines (the 11s)",
			"crow's feet",
			"preventing lines from etching in deeper",
		},
		WhoItsFor: []string{
			"adults bothered by movement-related lines",
			"people who want a subtle, refreshed look without surgery",
		},
		WhoItsNotFor: []string{
			"people who are pregnant or breastfeeding",
			"anyone with certain neuromuscular conditions",
		},
		CommonQuestions: []string{
			"When do results kick in?",
			"Will my face look frozen?",
			"How long does Botox last?",
		},
		SafetyNotes: []string{
			"Small bruises at injection sites are common and fade within days.",
			"Avoid rubbing the treated area for 24 hours.",
		},
		EscalationTriggers: []string{
			"trouble breathing",
			"trouble swallowing",
			"drooping eyelid",
			"vision changes",
		},
		RelatedTopics: []string{
			"expectations.neuromodulator-timeline",
			"injectables.filler-basics",
			"aftercare.tox-aftercare",
		},
		UpdatedAt: "2025-07-02T00:00:00Z",
		Version:   4,
	},
	{
		ID:          "injectables.filler-basics",
		Topic:       "Dermal fillers",
		Category:    models.CategoryInjectables,
		Explanation: "Dermal fillers are smooth hyaluronic-acid gels injected beneath the skin to restore volume in the cheeks, lips, and jawline, or to soften deep folds. Unlike neuromodulators, fillers work on structure rather than muscle movement, and most results are visible right away once initial swelling settles.",
		WhatItHelpsWith: []string{
			"lip volume and shape",
			"cheek and midface volume loss",
			"smile lines and marionette lines",
		},
		WhoItsFor: []string{
			"adults with volume loss or asymmetry they want addressed",
		},
		WhoItsNotFor: []string{
			"people with active skin infections near the treatment area",
			"people who are pregnant or breastfeeding",
		},
		CommonQuestions: []string{
			"Do lip fillers hurt?",
			"How long do fillers last?",
			"Can filler be dissolved?",
		},
		SafetyNotes: []string{
			"Swelling and bruising for a few days is expected, especially in the lips.",
			"Choose an injector who keeps hyaluronidase on hand.",
		},
		EscalationTriggers: []string{
			"skin turning white",
			"severe pain",
			"vision changes",
			"blanching",
		},
		RelatedTopics: []string{
			"aftercare.filler-swelling-bruising",
			"expectations.filler-timeline",
		},
		UpdatedAt: "2025-07-02T00:00:00Z",
		Version:   3,
	},
}
