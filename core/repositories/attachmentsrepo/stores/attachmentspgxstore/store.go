// Package attachmentspgxstore implements attachmentsrepo.Storer on
// PostgreSQL.
package attachmentspgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
	"github.com/jrazmi/taskboard/sdk/logger"
)

const columns = `id, comment_id, file_name, type, size_kb, created_at, is_visible`

// Store provides database access for Attachment.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new Attachment store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create inserts a new Attachment
func (s *Store) Create(ctx context.Context, input attachmentsrepo.CreateAttachment) (attachmentsrepo.Attachment, error) {
	const query = `
	INSERT INTO attachments (comment_id, file_name, type, size_kb, created_at, is_visible)
	VALUES (@comment_id, @file_name, @type, @size_kb, @created_at, @is_visible)
	RETURNING ` + columns

	args := pgx.NamedArgs{
		"comment_id": input.CommentID,
		"file_name":  input.FileName,
		"type":       input.Type,
		"size_kb":    input.SizeKB,
		"created_at": input.CreatedAt,
		"is_visible": input.IsVisible,
	}

	return s.queryOne(ctx, query, args)
}

// Get retrieves a single Attachment by ID
func (s *Store) Get(ctx context.Context, id int64) (attachmentsrepo.Attachment, error) {
	const query = `SELECT ` + columns + ` FROM attachments WHERE id = @id`

	record, err := s.queryOne(ctx, query, pgx.NamedArgs{"id": id})
	if errors.Is(err, pgx.ErrNoRows) {
		return attachmentsrepo.Attachment{}, fmt.Errorf("attachment %d: %w", id, repositories.ErrNotFound)
	}
	return record, err
}

// Update writes the mutable columns of attachment.
func (s *Store) Update(ctx context.Context, attachment attachmentsrepo.Attachment) (attachmentsrepo.Attachment, error) {
	const query = `
	UPDATE attachments SET
		file_name = @file_name,
		type = @type,
		size_kb = @size_kb,
		is_visible = @is_visible
	WHERE id = @id
	RETURNING ` + columns

	args := pgx.NamedArgs{
		"id":         attachment.ID,
		"file_name":  attachment.FileName,
		"type":       attachment.Type,
		"size_kb":    attachment.SizeKB,
		"is_visible": attachment.IsVisible,
	}

	record, err := s.queryOne(ctx, query, args)
	if errors.Is(err, pgx.ErrNoRows) {
		return attachmentsrepo.Attachment{}, fmt.Errorf("attachment %d: %w", attachment.ID, repositories.ErrNotFound)
	}
	return record, err
}

// Delete removes an Attachment
func (s *Store) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM attachments WHERE id = @id`

	result, err := s.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("attachment %d: %w", id, repositories.ErrNotFound)
	}
	return nil
}

// List retrieves Attachment records with filtering, ordering, and pagination
func (s *Store) List(ctx context.Context, filter attachmentsrepo.QueryFilter, orderBy fop.By, page fop.Page) ([]attachmentsrepo.Attachment, error) {
	query, args, err := buildListQuery(filter, orderBy, page)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[attachmentsrepo.Attachment])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return records, nil
}

func (s *Store) queryOne(ctx context.Context, query string, args pgx.NamedArgs) (attachmentsrepo.Attachment, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return attachmentsrepo.Attachment{}, postgresdb.HandlePgError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[attachmentsrepo.Attachment])
	if err != nil {
		return attachmentsrepo.Attachment{}, postgresdb.HandlePgError(err)
	}
	return record, nil
}
