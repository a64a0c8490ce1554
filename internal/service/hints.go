package service

import (
	"strings"

	"spa-concierge/internal/models"
)

// categoryHintTokens maps each category to lowercase substrings that signal a
// query is about that domain. This is a coarse keyword gate, not a
// classifier: any token appearing anywhere in the lowercased query hints the
// category, and a query may hint several categories at once.
var categoryHintTokens = map[models.Category][]string{
	models.CategoryInjectables: {
		"botox", "dysport", "tox", "filler", "lip", "forehead", "11s", "crow", "injection",
	},
	models.CategoryAesthetics: {
		"morpheus", "microneedling", "laser", "resurfacing", "radiofrequency", "tighten",
	},
	models.CategoryWeightLoss: {
		"semaglutide", "tirzepatide", "ozempic", "wegovy", "glp", "weight", "appetite",
	},
	models.CategoryHormones: {
		"hormone", "testosterone", "estrogen", "hrt", "menopause", "libido", "pellet",
	},
	models.CategorySkincare: {
		"facial", "hydrafacial", "peel", "acne", "melasma", "retinol", "skincare",
	},
	models.CategoryIVTherapy: {
		"iv ", "drip", "infusion", "vitamin", "nad", "hydration",
	},
	models.CategoryHairRestoration: {
		"hair", "thinning", "scalp", "prp", "shedding", "regrowth",
	},
	models.CategoryPainRecovery: {
		"joint", "knee", "shoulder", "tendon", "shockwave", "plantar", "recovery",
	},
	models.CategoryAftercare: {
		"aftercare", "bruis", "swelling", "swollen", "downtime", "after my", "post-treatment",
	},
	models.CategorySafety: {
		"safe", "risk", "side effect", "reaction", "pregnan", "emergency", "worried",
	},
	models.CategoryComparisons: {
		" vs ", "versus", "difference between", "compare", "better than", "which is better",
	},
	models.CategoryExpectations: {
		"when do", "how long", "how soon", "results", "last", "timeline", "expect",
	},
}

// categoryHints returns the set of categories the query's keywords point at.
func categoryHints(query string) map[models.Category]bool {
	q := strings.ToLower(query)
	hints := make(map[models.Category]bool)
	for category, tokens := range categoryHintTokens {
		for _, token := range tokens {
			if strings.Contains(q, token) {
				hints[category] = true
				break
			}
		}
	}
	return hints
}
