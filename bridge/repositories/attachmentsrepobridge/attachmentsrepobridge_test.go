package attachmentsrepobridge_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/taskboard/bridge/repositories/attachmentsrepobridge"
	"github.com/jrazmi/taskboard/bridge/scaffolding/mid"
	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

type stubStore struct {
	attachments map[int64]attachmentsrepo.Attachment
	listFilter  attachmentsrepo.QueryFilter
	listOrder   fop.By
}

func (s *stubStore) Create(_ context.Context, in attachmentsrepo.CreateAttachment) (attachmentsrepo.Attachment, error) {
	a := attachmentsrepo.Attachment{ID: int64(len(s.attachments) + 1), CommentID: in.CommentID, FileName: in.FileName,
		Type: in.Type, SizeKB: in.SizeKB, CreatedAt: in.CreatedAt, IsVisible: *in.IsVisible}
	s.attachments[a.ID] = a
	return a, nil
}

func (s *stubStore) Get(_ context.Context, id int64) (attachmentsrepo.Attachment, error) {
	a, ok := s.attachments[id]
	if !ok {
		return attachmentsrepo.Attachment{}, fmt.Errorf("attachment %d: %w", id, repositories.ErrNotFound)
	}
	return a, nil
}

func (s *stubStore) Update(_ context.Context, a attachmentsrepo.Attachment) (attachmentsrepo.Attachment, error) {
	s.attachments[a.ID] = a
	return a, nil
}

func (s *stubStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.attachments[id]; !ok {
		return fmt.Errorf("attachment %d: %w", id, repositories.ErrNotFound)
	}
	delete(s.attachments, id)
	return nil
}

func (s *stubStore) List(_ context.Context, filter attachmentsrepo.QueryFilter, orderBy fop.By, _ fop.Page) ([]attachmentsrepo.Attachment, error) {
	s.listFilter, s.listOrder = filter, orderBy
	out := make([]attachmentsrepo.Attachment, 0, len(s.attachments))
	for _, a := range s.attachments {
		out = append(out, a)
	}
	return out, nil
}

func setup() (*stubStore, http.Handler) {
	store := &stubStore{attachments: map[int64]attachmentsrepo.Attachment{}}
	log := logger.NewDiscard()
	wh := web.NewWebHandler(web.WithGlobalMiddleware(mid.Errors(log), mid.Panics()))
	attachmentsrepobridge.AddHttpRoutes(wh.Group(""), attachmentsrepobridge.Config{
		Log:        log,
		Repository: attachmentsrepo.NewRepository(log, store),
	})
	return store, wh
}

func send(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateAttachmentDefaultsVisible(t *testing.T) {
	_, h := setup()

	rec := send(h, http.MethodPost, "/attachments", `{"comment_id":2,"file_name":"plan.pdf","type":"pdf","size_kb":120}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}

	var got attachmentsrepo.Attachment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if !got.IsVisible || got.CommentID != 2 || *got.SizeKB != 120 || got.CreatedAt != nil {
		t.Errorf("got %+v", got)
	}
}

func TestCreateAttachmentValidation(t *testing.T) {
	_, h := setup()

	tests := []struct {
		name string
		body string
	}{
		{"missing comment", `{"file_name":"a.txt"}`},
		{"type too long", `{"comment_id":1,"type":"` + strings.Repeat("t", 101) + `"}`},
		{"size not a number", `{"comment_id":1,"size_kb":"big"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := send(h, http.MethodPost, "/attachments", tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d body = %s", rec.Code, rec.Body)
			}
		})
	}
}

func TestUpdateAttachmentHides(t *testing.T) {
	store, h := setup()
	send(h, http.MethodPost, "/attachments", `{"comment_id":2,"file_name":"plan.pdf"}`)

	rec := send(h, http.MethodPut, "/attachments/1", `{"is_visible":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
	got := store.attachments[1]
	if got.IsVisible || *got.FileName != "plan.pdf" {
		t.Errorf("stored = %+v", got)
	}

	if rec := send(h, http.MethodPut, "/attachments/9", `{"is_visible":false}`); rec.Code != http.StatusNotFound {
		t.Errorf("update missing = %d", rec.Code)
	}
}

func TestListAttachments(t *testing.T) {
	store, h := setup()
	send(h, http.MethodPost, "/attachments", `{"comment_id":2}`)

	rec := send(h, http.MethodGet, "/attachments?comment_id=2&sort_by=size_kb&sort_dir=desc", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got []attachmentsrepo.Attachment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("got %d attachments", len(got))
	}
	if *store.listFilter.CommentID != 2 {
		t.Errorf("filter = %+v", store.listFilter)
	}
	if store.listOrder.IsZero() {
		t.Error("sort_by=size_kb was dropped")
	}

	if rec := send(h, http.MethodGet, "/attachments?offset=-1", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("negative offset = %d", rec.Code)
	}
}

func TestMarshalToRepository(t *testing.T) {
	commentID, name, hidden := int64(9), "a.png", false

	created := attachmentsrepobridge.MarshalCreateToRepository(attachmentsrepobridge.CreateAttachmentInput{
		CommentID: &commentID, FileName: &name,
	})
	if created.CommentID != 9 || *created.FileName != "a.png" {
		t.Errorf("create = %+v", created)
	}
	if created.IsVisible != nil || created.SizeKB != nil {
		t.Errorf("absent fields should stay nil: %+v", created)
	}

	updated := attachmentsrepobridge.MarshalUpdateToRepository(attachmentsrepobridge.UpdateAttachmentInput{IsVisible: &hidden})
	if updated.IsVisible == nil || *updated.IsVisible || updated.FileName != nil {
		t.Errorf("update = %+v", updated)
	}
}
