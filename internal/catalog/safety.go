package catalog

import "spa-concierge/internal/models"

var safetyEntries = []models.KnowledgeEntry{
	{
		ID:          "safety.warning-signs",
		Topic:       "Warning signs that need prompt medical attention",
		Category:    models.CategorySafety,
		Explanation: "Most treatment after-effects are mild and fade on their own, but a few symptoms should never be waited out. Severe or worsening pain, skin turning white or dusky near an injection site, vision changes, trouble breathing, trouble swallowing, spreading redness, or fever can signal a vascular event, an allergic reaction, or infection. Contact the clinic immediately or seek emergency care.",
		WhatItHelpsWith: []string{
			"telling normal after-effects from true warning signs",
			"knowing when to call the clinic versus 911",
		},
		WhoItsFor: []string{
			"every patient, before and after any treatment",
		},
		WhoItsNotFor: []string{},
		CommonQuestions: []string{
			"What symptoms mean I should call right away?",
			"Is my reaction normal or an emergency?",
		},
		SafetyNotes: []string{
			"When in doubt, call. No one will mind a false alarm.",
		},
		EscalationTriggers: []string{
			"severe pain",
			"trouble breathing",
			"trouble swallowing",
			"vision changes",
			"chest pain",
			"skin turning white",
			"spreading redness",
			"fever",
			"emergency",
		},
		RelatedTopics: []string{
			"aftercare.filler-swelling-bruising",
			"safety.allergic-reactions",
		},
		UpdatedAt: "2025-08-10T00:00:00Z",
		Version:   6,
	},
	{
		ID:          "safety.allergic-reactions",
		Topic:       "Allergic reactions to treatments",
		Category:    models.CategorySafety,
		Explanation: "True allergic reactions to modern injectables and IV therapy are rare but possible. Mild reactions look like itching or localized hives; serious ones involve swelling of the lips or tongue, widespread hives, wheezing, or trouble breathing and need emergency care immediately. Tell your provider about every allergy and prior reaction before treatment.",
		WhatItHelpsWith: []string{
			"recognizing an allergic reaction early",
			"preparing your allergy history before a visit",
		},
		WhoItsFor: []string{
			"patients with a history of allergies or sensitivities",
		},
		WhoItsNotFor: []string{},
		CommonQuestions: []string{
			"What does an allergic reaction feel like?",
			"Should I take an antihistamine before treatment?",
		},
		SafetyNotes: []string{
			"Clinics treating patients should stock emergency medications on site.",
		},
		EscalationTriggers: []string{
			"hives",
			"tongue swelling",
			"wheezing",
			"trouble breathing",
			"throat closing",
		},
		RelatedTopics: []string{
			"safety.warning-signs",
			"iv-therapy.drip-basics",
		},
		UpdatedAt: "2025-08-10T00:00:00Z",
		Version:   4,
	},
}
