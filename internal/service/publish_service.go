package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spa-concierge/internal/models"
	"spa-concierge/internal/repository"

	"go.uber.org/zap"
)

var ErrNothingToPublish = errors.New("content store has no entries to publish")

// PublishService renders the content store into the remote-library JSON
// document. Editors host the rendered document at the URL the library
// loader polls, which is how content changes go live without a deploy.
type PublishService struct {
	contentRepo *repository.ContentRepository
	logger      *zap.Logger
}

func NewPublishService(contentRepo *repository.ContentRepository, logger *zap.Logger) *PublishService {
	return &PublishService{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// BuildDocument assembles the publishable library snapshot. The snapshot
// version is the highest entry version in the store, so any edit moves the
// document version forward.
func (s *PublishService) BuildDocument(ctx context.Context) (*models.KnowledgeLibrary, error) {
	entries, err := s.contentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNothingToPublish
	}

	version := 0
	for _, e := range entries {
		if e.Version > version {
			version = e.Version
		}
	}

	doc := &models.KnowledgeLibrary{
		Source:    models.SourceRemote,
		Version:   version,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:   entries,
	}

	s.logger.Info("Library document built",
		zap.Int("version", doc.Version),
		zap.Int("entries", len(doc.Entries)),
	)
	return doc, nil
}
