// Package catalog holds the knowledge entries that ship with the service.
// It is the fallback library when no remote document is configured or the
// remote endpoint is unreachable.
package catalog

import "spa-concierge/internal/models"

const (
	libraryVersion   = 7
	libraryUpdatedAt = "2025-08-18T00:00:00Z"
)

// Library assembles the bundled entries into a local snapshot.
func Library() models.KnowledgeLibrary {
	return models.KnowledgeLibrary{
		Source:    models.SourceLocal,
		Version:   libraryVersion,
		UpdatedAt: libraryUpdatedAt,
		Entries:   Entries(),
	}
}

// Entries returns the full ordered entry list. Domain sub-lists are
// concatenated in a fixed order so results are stable across calls.
func Entries() []models.KnowledgeEntry {
	groups := [][]models.KnowledgeEntry{
		aestheticsEntries,
		injectablesEntries,
		weightLossEntries,
		hormonesEntries,
		skincareEntries,
		ivTherapyEntries,
		hairRestorationEntries,
		painRecoveryEntries,
		aftercareEntries,
		safetyEntries,
		expectationsEntries,
	}

	var entries []models.KnowledgeEntry
	for _, g := range groups {
		entries = append(entries, g...)
	}
	return entries
}
