package catalog

import "spa-concierge/internal/models"

var skincareEntries = []models.KnowledgeEntry{
	{
		ID:          "skincare.chemical-peels",
		Topic:       "Chemical peels",
		Category:    models.CategorySkincare,
		Explanation: "Chemical peels apply an acid solution to exfoliate the outer layers of skin in a controlled way. Light peels brighten dull skin with little downtime, while medium-depth peels address melasma, acne marks, and fine lines with several days of visible flaking. Depth is chosen to match your skin and your schedule.",
		WhatItHelpsWith: []string{
			"dullness and uneven tone",
			"melasma and dark spots",
			"acne and post-acne marks",
		},
		WhoItsFor: []string{
			"most skin types, with peel depth adjusted to tone",
		},
		WhoItsNotFor: []string{
			"recently sunburned or compromised skin",
			"people on isotretinoin",
		},
		CommonQuestions: []string{
			"How much will I peel?",
			"How often can I get a peel?",
		},
		SafetyNotes: []string{
			"Do not pick or peel flaking skin by hand.",
			"Daily sunscreen is mandatory afterward.",
		},
		EscalationTriggers: []string{
			"blistering",
			"spreading redness",
		},
		RelatedTopics: []string{
			"aesthetics.laser-resurfacing",
			"skincare.medical-facials",
		},
		UpdatedAt: "2025-04-09T00:00:00Z",
		Version:   2,
	},
	{
		ID:          "skincare.medical-facials",
		Topic:       "Medical-grade facials and HydraFacial",
		Category:    models.CategorySkincare,
		Explanation: "Medical-grade facials like HydraFacial combine deep cleansing, gentle chemical exfoliation, extractions, and infused serums in one no-downtime visit. They maintain skin health between stronger treatments and are commonly scheduled monthly or before events for an immediate glow.",
		WhatItHelpsWith: []string{
			"congestion and clogged pores",
			"hydration and glow",
			"maintaining results between bigger treatments",
		},
		WhoItsFor: []string{
			"nearly everyone, including sensitive skin",
		},
		WhoItsNotFor: []string{
			"active cold sores or open lesions in the treatment area",
		},
		CommonQuestions: []string{
			"Is there any downtime?",
			"How often should I come in?",
		},
		SafetyNotes:        []string{},
		EscalationTriggers: []string{},
		RelatedTopics: []string{
			"skincare.chemical-peels",
		},
		UpdatedAt: "2025-04-09T00:00:00Z",
		Version:   1,
	},
}
