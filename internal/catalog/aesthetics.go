package catalog

import "spa-concierge/internal/models"

var aestheticsEntries = []models.KnowledgeEntry{
	{
		ID:          "aesthetics.microneedling-rf",
		Topic:       "RF microneedling (Morpheus8-style treatments)",
		Category:    models.CategoryAesthetics,
		Explanation: "Radiofrequency microneedling combines tiny sterile needles with heat energy delivered into the deeper layers of the skin. The controlled injury triggers collagen and elastin production, which tightens skin texture, softens acne scars, and improves laxity along the jawline and neck over a series of sessions.",
		WhatItHelpsWith: []string{
			"skin laxity on the face and neck",
			"acne scarring and texture",
			"fine lines",
		},
		WhoItsFor: []string{
			"adults noticing early skin laxity or scarring",
			"most skin tones, since RF energy bypasses the surface",
		},
		WhoItsNotFor: []string{
			"people with pacemakers or implanted electronic devices",
			"active acne flares or open lesions in the treatment area",
		},
		CommonQuestions: []string{
			"How many sessions will I need?",
			"What is the downtime like?",
			"Does RF microneedling hurt?",
		},
		SafetyNotes: []string{
			"Expect redness and pinpoint marks for two to three days.",
			"Strict sun protection is required while healing.",
		},
		EscalationTriggers: []string{
			"blistering",
			"signs of infection",
			"fever",
		},
		RelatedTopics: []string{
			"skincare.chemical-peels",
			"expectations.collagen-treatments",
		},
		UpdatedAt: "2025-06-11T00:00:00Z",
		Version:   2,
	},
	{
		ID:          "aesthetics.laser-resurfacing",
		Topic:       "Laser skin resurfacing",
		Category:    models.CategoryAesthetics,
		Explanation: "Laser resurfacing uses focused light energy to remove or heat thin columns of skin, prompting fresh, more even skin to take its place. Depending on the laser, it can target sun damage, redness, enlarged pores, and etched-in lines. Deeper settings give more dramatic change with more downtime.",
		WhatItHelpsWith: []string{
			"sun damage and brown spots",
			"uneven tone and texture",
			"fine lines around the eyes and mouth",
		},
		WhoItsFor: []string{
			"adults with photodamage or texture concerns",
		},
		WhoItsNotFor: []string{
			"recently tanned skin",
			"people on certain acne medications within the last six months",
		},
		CommonQuestions: []string{
			"How long is the recovery?",
			"Will it work for my skin tone?",
			"How many treatments are needed?",
		},
		SafetyNotes: []string{
			"Peeling and redness are part of normal healing.",
			"Pigment changes are possible and should be discussed beforehand.",
		},
		EscalationTriggers: []string{
			"blistering",
			"spreading redness",
			"signs of infection",
		},
		RelatedTopics: []string{
			"skincare.chemical-peels",
			"aesthetics.microneedling-rf",
		},
		UpdatedAt: "2025-06-11T00:00:00Z",
		Version:   2,
	},
}
