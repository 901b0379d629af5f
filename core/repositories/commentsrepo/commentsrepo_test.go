package commentsrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/sdk/logger"
	"github.com/jrazmi/taskboard/sdk/validation"
)

type captureStore struct {
	created commentsrepo.CreateComment
	current commentsrepo.Comment
	written commentsrepo.Comment
}

func (s *captureStore) Create(_ context.Context, input commentsrepo.CreateComment) (commentsrepo.Comment, error) {
	s.created = input
	return commentsrepo.Comment{ID: 1, TaskID: input.TaskID, IsEdit: *input.IsEdit}, nil
}

func (s *captureStore) Get(context.Context, int64) (commentsrepo.Comment, error) {
	return s.current, nil
}

func (s *captureStore) Update(_ context.Context, c commentsrepo.Comment) (commentsrepo.Comment, error) {
	s.written = c
	return c, nil
}

func (s *captureStore) Delete(context.Context, int64) error {
	return errors.New("boom")
}

func (s *captureStore) List(context.Context, commentsrepo.QueryFilter, fop.By, fop.Page) ([]commentsrepo.Comment, error) {
	return nil, nil
}

func TestCreateDefaultsIsEdit(t *testing.T) {
	store := &captureStore{}
	repo := commentsrepo.NewRepository(logger.NewDiscard(), store)

	c, err := repo.Create(context.Background(), commentsrepo.CreateComment{TaskID: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if store.created.IsEdit == nil || *store.created.IsEdit {
		t.Fatalf("is_edit passed to store = %v, want false", store.created.IsEdit)
	}
	if c.IsEdit {
		t.Error("comment created as edited")
	}
}

func TestUpdateKeepsTaskAndCreatedAt(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &captureStore{current: commentsrepo.Comment{
		ID:        1,
		TaskID:    4,
		Author:    validation.StringPtr("ana"),
		Message:   validation.StringPtr("first"),
		CreatedAt: &created,
	}}
	repo := commentsrepo.NewRepository(logger.NewDiscard(), store)

	got, err := repo.Update(context.Background(), 1, commentsrepo.UpdateComment{
		Message: validation.StringPtr("second"),
		IsEdit:  validation.BoolPtr(true),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.TaskID != 4 || !got.CreatedAt.Equal(created) || *got.Author != "ana" {
		t.Errorf("immutable fields changed: %+v", got)
	}
	if *got.Message != "second" || !got.IsEdit {
		t.Errorf("update not applied: %+v", got)
	}
	if store.written.ID != 1 {
		t.Errorf("store wrote id %d", store.written.ID)
	}
}

func TestDeleteWrapsStoreError(t *testing.T) {
	repo := commentsrepo.NewRepository(logger.NewDiscard(), &captureStore{})

	err := repo.Delete(context.Background(), 1)
	if err == nil || err.Error() != "delete comment: boom" {
		t.Fatalf("err = %v", err)
	}
}
