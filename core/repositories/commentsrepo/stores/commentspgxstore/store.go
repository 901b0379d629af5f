// Package commentspgxstore implements commentsrepo.Storer on PostgreSQL.
package commentspgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
	"github.com/jrazmi/taskboard/sdk/logger"
)

const columns = `id, task_id, author, message, created_at, is_edit, rating`

// Store provides database access for Comment.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a new Comment store
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create inserts a new Comment
func (s *Store) Create(ctx context.Context, input commentsrepo.CreateComment) (commentsrepo.Comment, error) {
	const query = `
	INSERT INTO comments (task_id, author, message, created_at, is_edit, rating)
	VALUES (@task_id, @author, @message, @created_at, @is_edit, @rating)
	RETURNING ` + columns

	args := pgx.NamedArgs{
		"task_id":    input.TaskID,
		"author":     input.Author,
		"message":    input.Message,
		"created_at": input.CreatedAt,
		"is_edit":    input.IsEdit,
		"rating":     input.Rating,
	}

	return s.queryOne(ctx, query, args)
}

// Get retrieves a single Comment by ID
func (s *Store) Get(ctx context.Context, id int64) (commentsrepo.Comment, error) {
	const query = `SELECT ` + columns + ` FROM comments WHERE id = @id`

	record, err := s.queryOne(ctx, query, pgx.NamedArgs{"id": id})
	if errors.Is(err, pgx.ErrNoRows) {
		return commentsrepo.Comment{}, fmt.Errorf("comment %d: %w", id, repositories.ErrNotFound)
	}
	return record, err
}

// Update writes the mutable columns of comment.
func (s *Store) Update(ctx context.Context, comment commentsrepo.Comment) (commentsrepo.Comment, error) {
	const query = `
	UPDATE comments SET
		author = @author,
		message = @message,
		is_edit = @is_edit,
		rating = @rating
	WHERE id = @id
	RETURNING ` + columns

	args := pgx.NamedArgs{
		"id":      comment.ID,
		"author":  comment.Author,
		"message": comment.Message,
		"is_edit": comment.IsEdit,
		"rating":  comment.Rating,
	}

	record, err := s.queryOne(ctx, query, args)
	if errors.Is(err, pgx.ErrNoRows) {
		return commentsrepo.Comment{}, fmt.Errorf("comment %d: %w", comment.ID, repositories.ErrNotFound)
	}
	return record, err
}

// Delete removes a Comment and its attachments.
func (s *Store) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = @id`

	result, err := s.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %d: %w", id, repositories.ErrNotFound)
	}
	return nil
}

// List retrieves Comment records with filtering, ordering, and pagination
func (s *Store) List(ctx context.Context, filter commentsrepo.QueryFilter, orderBy fop.By, page fop.Page) ([]commentsrepo.Comment, error) {
	query, args, err := buildListQuery(filter, orderBy, page)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[commentsrepo.Comment])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return records, nil
}

func (s *Store) queryOne(ctx context.Context, query string, args pgx.NamedArgs) (commentsrepo.Comment, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return commentsrepo.Comment{}, postgresdb.HandlePgError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[commentsrepo.Comment])
	if err != nil {
		return commentsrepo.Comment{}, postgresdb.HandlePgError(err)
	}
	return record, nil
}
