package models

// Category tags a knowledge entry with the service domain it belongs to.
type Category string

const (
	CategoryInjectables     Category = "injectables"
	CategoryAesthetics      Category = "aesthetics"
	CategoryWeightLoss      Category = "weight-loss"
	CategoryHormones        Category = "hormones"
	CategorySkincare        Category = "skincare"
	CategoryIVTherapy       Category = "iv-therapy"
	CategoryHairRestoration Category = "hair-restoration"
	CategoryPainRecovery    Category = "pain-recovery"
	CategoryAftercare       Category = "aftercare"
	CategorySafety          Category = "safety"
	CategoryComparisons     Category = "comparisons"
	CategoryExpectations    Category = "expectations"
)

// Categories lists every recognized category tag.
func Categories() []Category {
	return []Category{
		CategoryInjectables,
		CategoryAesthetics,
		CategoryWeightLoss,
		CategoryHormones,
		CategorySkincare,
		CategoryIVTherapy,
		CategoryHairRestoration,
		CategoryPainRecovery,
		CategoryAftercare,
		CategorySafety,
		CategoryComparisons,
		CategoryExpectations,
	}
}

// KnowledgeEntry is a single patient-education record. Entries are treated as
// immutable once loaded; list order is display order and duplicates are kept.
type KnowledgeEntry struct {
	ID                 string   `json:"id" db:"id"`
	Topic              string   `json:"topic" db:"topic"`
	Category           Category `json:"category" db:"category"`
	Explanation        string   `json:"explanation" db:"explanation"`
	WhatItHelpsWith    []string `json:"whatItHelpsWith" db:"what_it_helps_with"`
	WhoItsFor          []string `json:"whoItsFor" db:"who_its_for"`
	WhoItsNotFor       []string `json:"whoItsNotFor" db:"who_its_not_for"`
	CommonQuestions    []string `json:"commonQuestions" db:"common_questions"`
	SafetyNotes        []string `json:"safetyNotes" db:"safety_notes"`
	EscalationTriggers []string `json:"escalationTriggers" db:"escalation_triggers"`
	RelatedTopics      []string `json:"relatedTopics" db:"related_topics"`
	UpdatedAt          string   `json:"updatedAt" db:"updated_at"`
	Version            int      `json:"version" db:"version"`
}

// LibrarySource records where a resolved library snapshot came from.
type LibrarySource string

const (
	SourceLocal  LibrarySource = "local"
	SourceRemote LibrarySource = "remote"
)

// KnowledgeLibrary is the resolved, queryable snapshot of all entries,
// tagged with its provenance. Version and UpdatedAt describe the snapshot
// as a whole, not individual entries.
type KnowledgeLibrary struct {
	Source    LibrarySource    `json:"source"`
	Version   int              `json:"version"`
	UpdatedAt string           `json:"updatedAt"`
	Entries   []KnowledgeEntry `json:"entries"`
}
