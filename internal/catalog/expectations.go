package catalog

import "spa-concierge/internal/models"

var expectationsEntries = []models.KnowledgeEntry{
	{
		ID:          "expectations.neuromodulator-timeline",
		Topic:       "When Botox results show and how long they last",
		Category:    models.CategoryExpectations,
		Explanation: "Botox and Dysport results are not instant. Most people notice softening of forehead and frown lines around day 3 to 5, with the full result at two weeks. From there, results typically hold for three to four months before movement gradually returns. Regular treatment keeps lines from re-etching between visits.",
		WhatItHelpsWith: []string{
			"knowing when botox results show",
			"planning touch-up timing before events",
		},
		WhoItsFor: []string{
			"patients waiting on their first neuromodulator result",
		},
		WhoItsNotFor: []string{},
		CommonQuestions: []string{
			"When do results kick in?",
			"Why can I still move my forehead?",
			"How long until my two-week check?",
		},
		SafetyNotes: []string{
			"Judge nothing before day 14; asymmetry often evens out as product settles.",
		},
		EscalationTriggers: []string{
			"drooping eyelid",
		},
		RelatedTopics: []string{
			"injectables.botox-basics",
			"aftercare.tox-aftercare",
		},
		UpdatedAt: "2025-07-05T00:00:00Z",
		Version:   4,
	},
	{
		ID:          "expectations.filler-timeline",
		Topic:       "Filler results timeline",
		Category:    models.CategoryExpectations,
		Explanation: "Filler volume is visible immediately, but the first few days include swelling that exaggerates the result, which is normal after filler. The true result appears around two weeks once swelling resolves and the gel integrates. Depending on the product and area, results last from six months to two years.",
		WhatItHelpsWith: []string{
			"knowing whether early filler results are final",
			"planning refresh appointments",
		},
		WhoItsFor: []string{
			"patients in the first weeks after filler",
		},
		WhoItsNotFor: []string{},
		CommonQuestions: []string{
			"Why do my lips look bigger than I wanted?",
			"How long do fillers last?",
		},
		SafetyNotes: []string{},
		EscalationTriggers: []string{
			"severe pain",
			"vision changes",
		},
		RelatedTopics: []string{
			"injectables.filler-basics",
			"aftercare.filler-swelling-bruising",
		},
		UpdatedAt: "2025-07-05T00:00:00Z",
		Version:   3,
	},
	{
		ID:          "expectations.collagen-treatments",
		Topic:       "Collagen-stimulating treatments take time",
		Category:    models.CategoryExpectations,
		Explanation: "Treatments that rebuild collagen, like RF microneedling, lasers, and biostimulatory injectables, work on your body's repair timeline. Visible tightening starts around four to six weeks after a session and keeps improving for three to six months. Plan a series, then judge the result, not a single visit.",
		WhatItHelpsWith: []string{
			"setting realistic timelines for skin tightening",
		},
		WhoItsFor: []string{
			"patients mid-series wondering if it is working",
		},
		WhoItsNotFor: []string{},
		CommonQuestions: []string{
			"When will I see tightening?",
			"Why do I need multiple sessions?",
		},
		SafetyNotes:        []string{},
		EscalationTriggers: []string{},
		RelatedTopics: []string{
			"aesthetics.microneedling-rf",
			"aesthetics.laser-resurfacing",
		},
		UpdatedAt: "2025-07-05T00:00:00Z",
		Version:   2,
	},
	{
		ID:          "expectations.weight-loss-timeline",
		Topic:       "Weight-loss medication timeline",
		Category:    models.CategoryExpectations,
		Explanation: "GLP-1 programs start at a low dose and step up over the first two to three months, so early weeks are about tolerance, not maximum results. Most patients see steady loss of one to two pounds per week once at a working dose, with the larger totals accumulating over six to twelve months.",
		WhatItHelpsWith: []string{
			"setting month-by-month weight-loss expectations",
		},
		WhoItsFor: []string{
			"patients starting semaglutide or tirzepatide",
		},
		WhoItsNotFor: []string{},
		CommonQuestions: []string{
			"Why is my starting dose so low?",
			"When does the weight loss speed up?",
		},
		SafetyNotes:        []string{},
		EscalationTriggers: []string{
			"persistent vomiting",
		},
		RelatedTopics: []string{
			"weight-loss.glp1-basics",
		},
		UpdatedAt: "2025-08-01T00:00:00Z",
		Version:   2,
	},
	{
		ID:          "expectations.hrt-timeline",
		Topic:       "How fast hormone therapy works",
		Category:    models.CategoryExpectations,
		Explanation: "Hormone optimization is gradual. Sleep and mood often improve within the first few weeks, energy and libido over one to three months, and body-composition changes after three months or more. Labs are re-checked around the six-to-eight-week mark to fine-tune dosing before judging the protocol.",
		WhatItHelpsWith: []string{
			"knowing when each hormone benefit typically appears",
		},
		WhoItsFor: []string{
			"patients in their first months of therapy",
		},
		WhoItsNotFor: []string{},
		CommonQuestions: []string{
			"Why don't I feel different yet?",
			"When are labs re-checked?",
		},
		SafetyNotes:        []string{},
		EscalationTriggers: []string{
			"chest pain",
		},
		RelatedTopics: []string{
			"hormones.hrt-overview",
		},
		UpdatedAt: "2025-05-20T00:00:00Z",
		Version:   2,
	},
	{
		ID:          "expectations.hair-regrowth-timeline",
		Topic:       "Hair regrowth timeline after PRP",
		Category:    models.CategoryExpectations,
		Explanation: "Hair responds slowly because follicles cycle over months. After a PRP series, shedding usually slows first, around month two, with visible new growth and thickness between months three and six. Photos taken in consistent lighting are the honest way to track progress.",
		WhatItHelpsWith: []string{
			"tracking whether PRP is working",
		},
		WhoItsFor: []string{
			"patients mid-way through a PRP series",
		},
		WhoItsNotFor: []string{},
		CommonQuestions: []string{
			"Is more shedding at the start normal?",
			"When will I see new growth?",
		},
		SafetyNotes:        []string{},
		EscalationTriggers: []string{},
		RelatedTopics: []string{
			"hair-restoration.prp-hair",
		},
		UpdatedAt: "2025-02-27T00:00:00Z",
		Version:   1,
	},
}
