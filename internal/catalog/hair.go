package catalog

import "spa-concierge/internal/models"

var hairRestorationEntries = []models.KnowledgeEntry{
	{
		ID:          "hair-restoration.prp-hair",
		Topic:       "PRP for hair thinning",
		Category:    models.CategoryHairRestoration,
		Explanation: "PRP hair restoration draws a small amount of your blood, concentrates the platelets, and injects the growth-factor-rich plasma into thinning areas of the scalp. Platelets signal dormant follicles to re-enter their growth phase. It works best on thinning hair, not fully bald areas, and is done as a series with maintenance sessions.",
		WhatItHelpsWith: []string{
			"early hair thinning in men and women",
			"shedding after stress or postpartum",
			"supporting hair-transplant results",
		},
		WhoItsFor: []string{
			"people with miniaturized but still-living follicles",
		},
		WhoItsNotFor: []string{
			"fully bald (slick) areas",
			"people with platelet or clotting disorders",
		},
		CommonQuestions: []string{
			"How many sessions before I see regrowth?",
			"Does scalp PRP hurt?",
		},
		SafetyNotes: []string{
			"Scalp tenderness for a day or two is normal.",
		},
		EscalationTriggers: []string{
			"signs of infection",
			"fever",
		},
		RelatedTopics: []string{
			"expectations.hair-regrowth-timeline",
		},
		UpdatedAt: "2025-02-27T00:00:00Z",
		Version:   2,
	},
}
