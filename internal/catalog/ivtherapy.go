package catalog

import "spa-concierge/internal/models"

var ivTherapyEntries = []models.KnowledgeEntry{
	{
		ID:          "iv-therapy.drip-basics",
		Topic:       "IV vitamin drips",
		Category:    models.CategoryIVTherapy,
		Explanation: "IV vitamin therapy delivers fluids, electrolytes, and vitamins directly into the bloodstream, bypassing digestion. Drips are blended for goals like recovery after travel or illness, energy, hydration, and immune support. A typical session takes 30 to 60 minutes in a lounge chair.",
		WhatItHelpsWith: []string{
			"dehydration and jet lag",
			"post-illness recovery",
			"general energy support",
		},
		WhoItsFor: []string{
			"generally healthy adults wanting faster rehydration",
		},
		WhoItsNotFor: []string{
			"people with congestive heart failure or kidney disease",
		},
		CommonQuestions: []string{
			"How long does a drip take?",
			"How often can I get one?",
		},
		SafetyNotes: []string{
			"Mild bruising at the IV site can occur.",
		},
		EscalationTriggers: []string{
			"trouble breathing",
			"hives",
			"chest tightness",
		},
		RelatedTopics: []string{
			"iv-therapy.nad-infusions",
		},
		UpdatedAt: "2025-03-15T00:00:00Z",
		Version:   2,
	},
	{
		ID:          "iv-therapy.nad-infusions",
		Topic:       "NAD+ infusions",
		Category:    models.CategoryIVTherapy,
		Explanation: "NAD+ is a coenzyme involved in cellular energy production that declines with age. NAD+ infusions run slower than standard drips, often 2 to 4 hours, and are used by patients focused on energy, mental clarity, and healthy-aging routines. Evidence is still developing, and it is positioned as wellness support rather than treatment for any disease.",
		WhatItHelpsWith: []string{
			"energy and mental clarity routines",
			"healthy-aging protocols",
		},
		WhoItsFor: []string{
			"adults interested in longevity-focused wellness",
		},
		WhoItsNotFor: []string{
			"people who are pregnant or breastfeeding",
		},
		CommonQuestions: []string{
			"Why does the infusion take so long?",
			"How many sessions do people typically do?",
		},
		SafetyNotes: []string{
			"Flushing or nausea during the drip usually resolves by slowing the rate.",
		},
		EscalationTriggers: []string{
			"chest tightness",
			"trouble breathing",
		},
		RelatedTopics: []string{
			"iv-therapy.drip-basics",
		},
		UpdatedAt: "2025-03-15T00:00:00Z",
		Version:   1,
	},
}
