package attachmentsrepo_test

import (
	"context"
	"testing"

	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/sdk/logger"
	"github.com/jrazmi/taskboard/sdk/validation"
)

type echoStore struct {
	created attachmentsrepo.CreateAttachment
	current attachmentsrepo.Attachment
}

func (s *echoStore) Create(_ context.Context, input attachmentsrepo.CreateAttachment) (attachmentsrepo.Attachment, error) {
	s.created = input
	return attachmentsrepo.Attachment{ID: 1, CommentID: input.CommentID, IsVisible: *input.IsVisible}, nil
}

func (s *echoStore) Get(context.Context, int64) (attachmentsrepo.Attachment, error) {
	return s.current, nil
}

func (s *echoStore) Update(_ context.Context, a attachmentsrepo.Attachment) (attachmentsrepo.Attachment, error) {
	return a, nil
}

func (s *echoStore) Delete(context.Context, int64) error { return nil }

func (s *echoStore) List(context.Context, attachmentsrepo.QueryFilter, fop.By, fop.Page) ([]attachmentsrepo.Attachment, error) {
	return nil, nil
}

func TestCreateVisibility(t *testing.T) {
	tests := []struct {
		name  string
		input *bool
		want  bool
	}{
		{name: "default visible", input: nil, want: true},
		{name: "explicit hidden", input: validation.BoolPtr(false), want: false},
		{name: "explicit visible", input: validation.BoolPtr(true), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &echoStore{}
			repo := attachmentsrepo.NewRepository(logger.NewDiscard(), store)

			got, err := repo.Create(context.Background(), attachmentsrepo.CreateAttachment{CommentID: 2, IsVisible: tt.input})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if got.IsVisible != tt.want {
				t.Errorf("is_visible = %v, want %v", got.IsVisible, tt.want)
			}
		})
	}
}

func TestUpdateKeepsComment(t *testing.T) {
	store := &echoStore{current: attachmentsrepo.Attachment{
		ID:        1,
		CommentID: 8,
		FileName:  validation.StringPtr("a.png"),
		SizeKB:    validation.Int32Ptr(12),
		IsVisible: true,
	}}
	repo := attachmentsrepo.NewRepository(logger.NewDiscard(), store)

	got, err := repo.Update(context.Background(), 1, attachmentsrepo.UpdateAttachment{IsVisible: validation.BoolPtr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.CommentID != 8 || *got.FileName != "a.png" || *got.SizeKB != 12 {
		t.Errorf("unsupplied fields changed: %+v", got)
	}
	if got.IsVisible {
		t.Error("is_visible not updated")
	}
}
