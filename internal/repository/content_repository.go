package repository

import (
	"context"
	"errors"

	"spa-concierge/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var ErrEntryNotFound = errors.New("knowledge entry not found")

var entryColumns = []string{
	"id", "topic", "category", "explanation",
	"what_it_helps_with", "who_its_for", "who_its_not_for",
	"common_questions", "safety_notes", "escalation_triggers",
	"related_topics", "updated_at", "version",
}

// ContentRepository stores the editorially managed knowledge entries that
// get published as the remote library document.
type ContentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewContentRepository(db *pgxpool.Pool, logger *zap.Logger) *ContentRepository {
	return &ContentRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts an entry or, when the id already exists, replaces its
// content and bumps the stored version.
func (r *ContentRepository) Upsert(ctx context.Context, e *models.KnowledgeEntry) error {
	query := squirrel.Insert("knowledge_entries").
		Columns(entryColumns...).
		Values(
			e.ID, e.Topic, e.Category, e.Explanation,
			e.WhatItHelpsWith, e.WhoItsFor, e.WhoItsNotFor,
			e.CommonQuestions, e.SafetyNotes, e.EscalationTriggers,
			e.RelatedTopics, e.UpdatedAt, e.Version,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			topic = EXCLUDED.topic,
			category = EXCLUDED.category,
			explanation = EXCLUDED.explanation,
			what_it_helps_with = EXCLUDED.what_it_helps_with,
			who_its_for = EXCLUDED.who_its_for,
			who_its_not_for = EXCLUDED.who_its_not_for,
			common_questions = EXCLUDED.common_questions,
			safety_notes = EXCLUDED.safety_notes,
			escalation_triggers = EXCLUDED.escalation_triggers,
			related_topics = EXCLUDED.related_topics,
			updated_at = EXCLUDED.updated_at,
			version = knowledge_entries.version + 1`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ContentRepository) GetByID(ctx context.Context, id string) (*models.KnowledgeEntry, error) {
	query := squirrel.Select(entryColumns...).
		From("knowledge_entries").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	entry, err := scanEntry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// List returns every stored entry ordered by id, so published documents are
// stable across publishes.
func (r *ContentRepository) List(ctx context.Context) ([]models.KnowledgeEntry, error) {
	query := squirrel.Select(entryColumns...).
		From("knowledge_entries").
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.KnowledgeEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("knowledge_entries").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func scanEntry(row pgx.Row) (*models.KnowledgeEntry, error) {
	var e models.KnowledgeEntry
	err := row.Scan(
		&e.ID, &e.Topic, &e.Category, &e.Explanation,
		&e.WhatItHelpsWith, &e.WhoItsFor, &e.WhoItsNotFor,
		&e.CommonQuestions, &e.SafetyNotes, &e.EscalationTriggers,
		&e.RelatedTopics, &e.UpdatedAt, &e.Version,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
