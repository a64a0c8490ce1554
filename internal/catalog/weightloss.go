package catalog

import "spa-concierge/internal/models"

var weightLossEntries = []models.KnowledgeEntry{
	{
		ID:          "weight-loss.glp1-basics",
		Topic:       "GLP-1 medications (semaglutide, tirzepatide)",
		Category:    models.CategoryWeightLoss,
		Explanation: "GLP-1 medications such as semaglutide and tirzepatide mimic gut hormones that regulate appetite and blood sugar. Taken as a weekly injection under medical supervision, they slow stomach emptying and reduce hunger signaling, which helps most patients lose a meaningful percentage of body weight over several months.",
		WhatItHelpsWith: []string{
			"sustained, medically supervised weight loss",
			"appetite and craving control",
			"blood sugar regulation",
		},
		WhoItsFor: []string{
			"adults with a BMI in the qualifying range",
			"people who have struggled with diet-only approaches",
		},
		WhoItsNotFor: []string{
			"people with a personal or family history of medullary thyroid cancer",
			"people who are pregnant or planning pregnancy",
			"history of pancreatitis",
		},
		CommonQuestions: []string{
			"How much weight can I expect to lose?",
			"What are the common side effects?",
			"Do I have to stay on it forever?",
		},
		SafetyNotes: []string{
			"Nausea is common in the first weeks and usually improves as the dose settles.",
			"Regular follow-up visits are part of the program, not optional.",
		},
		EscalationTriggers: []string{
			"severe abdominal pain",
			"persistent vomiting",
			"severe stomach pain",
		},
		RelatedTopics: []string{
			"weight-loss.program-structure",
			"expectations.weight-loss-timeline",
		},
		UpdatedAt: "2025-08-01T00:00:00Z",
		Version:   5,
	},
	{
		ID:          "weight-loss.program-structure",
		Topic:       "What a medical weight-loss program includes",
		Category:    models.CategoryWeightLoss,
		Explanation: "A medical weight-loss program pairs prescription support with lab work, body-composition tracking, and regular provider check-ins. The goal is losing fat while protecting muscle, so programs typically include protein targets, strength-training guidance, and dose adjustments based on how you respond rather than a fixed schedule.",
		WhatItHelpsWith: []string{
			"structured, accountable weight loss",
			"preserving muscle while losing fat",
		},
		WhoItsFor: []string{
			"people who want clinical oversight rather than going it alone",
		},
		WhoItsNotFor: []string{
			"people looking for a quick fix without lifestyle changes",
		},
		CommonQuestions: []string{
			"How often are the check-ins?",
			"Is lab work required?",
			"What happens when I reach my goal?",
		},
		SafetyNotes: []string{
			"Rapid unsupervised weight loss can cost muscle and bone density.",
		},
		EscalationTriggers: []string{
			"fainting",
			"heart palpitations",
		},
		RelatedTopics: []string{
			"weight-loss.glp1-basics",
			"hormones.metabolic-panel",
		},
		UpdatedAt: "2025-08-01T00:00:00Z",
		Version:   3,
	},
}
