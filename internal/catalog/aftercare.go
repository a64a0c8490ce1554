package catalog

import "spa-concierge/internal/models"

var aftercareEntries = []models.KnowledgeEntry{
	{
		ID:          "aftercare.filler-swelling-bruising",
		Topic:       "Swelling and bruising after filler",
		Category:    models.CategoryAftercare,
		Explanation: "Swelling and bruising after filler are normal and expected, especially in the lips, where swelling can look dramatic for the first 24 to 48 hours. Cold compresses, sleeping slightly elevated, and skipping alcohol and strenuous exercise for a day all help. Bruises typically fade within a week, and the true result shows once swelling settles at about two weeks.",
		WhatItHelpsWith: []string{
			"knowing what normal filler swelling looks like",
			"reducing bruising after injections",
			"when to expect the final result",
		},
		WhoItsFor: []string{
			"anyone recently treated with dermal filler",
		},
		WhoItsNotFor: []string{},
		CommonQuestions: []string{
			"Is this much swelling normal?",
			"How long until lip swelling goes down?",
			"Can I ice the area?",
		},
		SafetyNotes: []string{
			"Normal swelling improves day over day; worsening pain does not.",
		},
		EscalationTriggers: []string{
			"severe pain",
			"skin turning white",
			"dusky or gray skin",
			"vision changes",
		},
		RelatedTopics: []string{
			"injectables.filler-basics",
			"expectations.filler-timeline",
		},
		UpdatedAt: "2025-07-18T00:00:00Z",
		Version:   4,
	},
	{
		ID:          "aftercare.tox-aftercare",
		Topic:       "Aftercare for Botox and Dysport",
		Category:    models.CategoryAftercare,
		Explanation: "After a neuromodulator appointment, stay upright for four hours, skip workouts for the rest of the day, and avoid rubbing or massaging the treated areas so product stays where it was placed. Small red bumps at injection sites settle within the hour; tiny bruises can take a few days.",
		WhatItHelpsWith: []string{
			"protecting your tox results in the first day",
			"knowing which after-effects are normal",
		},
		WhoItsFor: []string{
			"anyone treated with Botox, Dysport, or similar",
		},
		WhoItsNotFor: []string{},
		CommonQuestions: []string{
			"Can I work out after Botox?",
			"When can I lie down?",
		},
		SafetyNotes: []string{
			"A mild headache the first day is common and passes.",
		},
		EscalationTriggers: []string{
			"drooping eyelid",
			"trouble swallowing",
			"trouble breathing",
		},
		RelatedTopics: []string{
			"injectables.botox-basics",
			"expectations.neuromodulator-timeline",
		},
		UpdatedAt: "2025-07-18T00:00:00Z",
		Version:   3,
	},
}
