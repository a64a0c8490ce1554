package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"spa-concierge/internal/catalog"
	"spa-concierge/internal/models"
	"spa-concierge/pkg/config"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const librarySnapshotKey = "library"

// LibraryService resolves the knowledge library in use: a remotely published
// JSON document when one is configured and reachable, the bundled catalog
// otherwise. The resolved snapshot is cached for the configured TTL so a
// burst of chat traffic does not hammer the remote endpoint.
type LibraryService struct {
	remoteURL string
	client    *http.Client
	snapshots *cache.Cache
	logger    *zap.Logger
}

func NewLibraryService(cfg *config.KnowledgeConfig, logger *zap.Logger) *LibraryService {
	return &LibraryService{
		remoteURL: cfg.RemoteURL,
		client:    &http.Client{Timeout: cfg.FetchTimeout},
		snapshots: cache.New(cfg.CacheTTL, 10*time.Minute),
		logger:    logger,
	}
}

// GetLibrary returns the current snapshot. It never fails: every remote
// problem is absorbed, counted, and answered with the bundled catalog.
func (s *LibraryService) GetLibrary(ctx context.Context) models.KnowledgeLibrary {
	if v, ok := s.snapshots.Get(librarySnapshotKey); ok {
		return v.(models.KnowledgeLibrary)
	}

	lib, ok := s.fetchRemote(ctx)
	if !ok {
		lib = catalog.Library()
	}

	s.snapshots.Set(librarySnapshotKey, lib, cache.DefaultExpiration)
	return lib
}

// Flush drops the cached snapshot so the next call resolves fresh.
func (s *LibraryService) Flush() {
	s.snapshots.Flush()
}

// remoteLibraryPayload mirrors the published wire format. Entries is a
// pointer so a document without an entries array can be told apart from one
// with an empty array; only the former is rejected.
type remoteLibraryPayload struct {
	Source    string             `json:"source"`
	Version   int                `json:"version"`
	UpdatedAt string             `json:"updatedAt"`
	Entries   *[]json.RawMessage `json:"entries"`
}

func (s *LibraryService) fetchRemote(ctx context.Context) (models.KnowledgeLibrary, bool) {
	if s.remoteURL == "" {
		return models.KnowledgeLibrary{}, false
	}

	remoteFetchTotal.Inc()

	lib, err := s.doFetch(ctx)
	if err != nil {
		remoteFetchFailures.Inc()
		s.logger.Warn("Remote library unavailable, using bundled catalog",
			zap.String("url", s.remoteURL),
			zap.Error(err),
		)
		return models.KnowledgeLibrary{}, false
	}

	s.logger.Info("Remote library loaded",
		zap.Int("version", lib.Version),
		zap.Int("entries", len(lib.Entries)),
	)
	return lib, true
}

func (s *LibraryService) doFetch(ctx context.Context) (models.KnowledgeLibrary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.remoteURL, nil)
	if err != nil {
		return models.KnowledgeLibrary{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.KnowledgeLibrary{}, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.KnowledgeLibrary{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload remoteLibraryPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.KnowledgeLibrary{}, fmt.Errorf("decode payload: %w", err)
	}
	if payload.Entries == nil {
		return models.KnowledgeLibrary{}, fmt.Errorf("payload has no entries array")
	}

	entries := make([]models.KnowledgeEntry, 0, len(*payload.Entries))
	for i, raw := range *payload.Entries {
		var entry models.KnowledgeEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			s.logger.Warn("Dropping malformed remote entry",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		if entry.ID == "" || entry.Topic == "" {
			s.logger.Warn("Dropping remote entry without id or topic",
				zap.Int("index", i))
			continue
		}
		entries = append(entries, entry)
	}

	// Whatever the document claims, the snapshot in use came from the remote.
	return models.KnowledgeLibrary{
		Source:    models.SourceRemote,
		Version:   payload.Version,
		UpdatedAt: payload.UpdatedAt,
		Entries:   entries,
	}, nil
}
