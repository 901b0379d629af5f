package commentsrepobridge_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/taskboard/bridge/repositories/commentsrepobridge"
	"github.com/jrazmi/taskboard/bridge/scaffolding/mid"
	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

type stubStore struct {
	comments   map[int64]commentsrepo.Comment
	listFilter commentsrepo.QueryFilter
	listPage   fop.Page
}

func (s *stubStore) Create(_ context.Context, in commentsrepo.CreateComment) (commentsrepo.Comment, error) {
	c := commentsrepo.Comment{ID: int64(len(s.comments) + 1), TaskID: in.TaskID, Author: in.Author,
		Message: in.Message, CreatedAt: in.CreatedAt, IsEdit: *in.IsEdit, Rating: in.Rating}
	s.comments[c.ID] = c
	return c, nil
}

func (s *stubStore) Get(_ context.Context, id int64) (commentsrepo.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return commentsrepo.Comment{}, fmt.Errorf("comment %d: %w", id, repositories.ErrNotFound)
	}
	return c, nil
}

func (s *stubStore) Update(_ context.Context, c commentsrepo.Comment) (commentsrepo.Comment, error) {
	s.comments[c.ID] = c
	return c, nil
}

func (s *stubStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.comments[id]; !ok {
		return fmt.Errorf("comment %d: %w", id, repositories.ErrNotFound)
	}
	delete(s.comments, id)
	return nil
}

func (s *stubStore) List(_ context.Context, filter commentsrepo.QueryFilter, _ fop.By, page fop.Page) ([]commentsrepo.Comment, error) {
	s.listFilter, s.listPage = filter, page
	return nil, nil
}

func setup() (*stubStore, http.Handler) {
	store := &stubStore{comments: map[int64]commentsrepo.Comment{}}
	log := logger.NewDiscard()
	wh := web.NewWebHandler(web.WithGlobalMiddleware(mid.Errors(log), mid.Panics()))
	commentsrepobridge.AddHttpRoutes(wh.Group(""), commentsrepobridge.Config{
		Log:        log,
		Repository: commentsrepo.NewRepository(log, store),
	})
	return store, wh
}

func send(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateComment(t *testing.T) {
	store, h := setup()

	rec := send(h, http.MethodPost, "/comments", `{"task_id":4,"author":"kim","message":"looks good","created_at":"2024-03-01T09:30:00Z","rating":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}

	var got commentsrepo.Comment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.TaskID != 4 || got.IsEdit || *got.Rating != 5 {
		t.Errorf("got %+v", got)
	}
	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	if got.CreatedAt == nil || !got.CreatedAt.Equal(want) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, want)
	}
	if len(store.comments) != 1 {
		t.Errorf("stored %d comments", len(store.comments))
	}
}

func TestCreateCommentValidation(t *testing.T) {
	_, h := setup()

	tests := []struct {
		name string
		body string
	}{
		{"missing task", `{"message":"hi"}`},
		{"author too long", `{"task_id":1,"author":"` + strings.Repeat("x", 256) + `"}`},
		{"bad timestamp", `{"task_id":1,"created_at":"yesterday"}`},
		{"empty body", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := send(h, http.MethodPost, "/comments", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d body = %s", rec.Code, rec.Body)
			}
		})
	}
}

func TestUpdateCommentKeepsTask(t *testing.T) {
	store, h := setup()
	send(h, http.MethodPost, "/comments", `{"task_id":4,"message":"first"}`)

	rec := send(h, http.MethodPut, "/comments/1", `{"task_id":99,"message":"second","is_edit":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
	got := store.comments[1]
	if got.TaskID != 4 || *got.Message != "second" || !got.IsEdit {
		t.Errorf("stored = %+v", got)
	}
}

func TestListComments(t *testing.T) {
	store, h := setup()

	rec := send(h, http.MethodGet, "/comments?task_id=8&limit=5&offset=10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Errorf("body = %s", rec.Body)
	}
	if store.listFilter.TaskID == nil || *store.listFilter.TaskID != 8 {
		t.Errorf("filter = %+v", store.listFilter)
	}
	if store.listPage.Limit != 5 || store.listPage.Offset != 10 {
		t.Errorf("page = %+v", store.listPage)
	}
}

func TestDeleteComment(t *testing.T) {
	_, h := setup()
	send(h, http.MethodPost, "/comments", `{"task_id":4}`)

	if rec := send(h, http.MethodDelete, "/comments/1", ""); rec.Code != http.StatusOK || rec.Body.String() != `{"ok":true}` {
		t.Fatalf("delete = %d %s", rec.Code, rec.Body)
	}
	if rec := send(h, http.MethodGet, "/comments/1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d", rec.Code)
	}
	if rec := send(h, http.MethodGet, "/comments/abc", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id = %d", rec.Code)
	}
}

func TestMarshalToRepository(t *testing.T) {
	taskID, author, rating := int64(4), "ada", int32(5)

	created := commentsrepobridge.MarshalCreateToRepository(commentsrepobridge.CreateCommentInput{
		TaskID: &taskID, Author: &author, Rating: &rating,
	})
	if created.TaskID != 4 || *created.Author != "ada" || *created.Rating != 5 {
		t.Errorf("create = %+v", created)
	}
	if created.Message != nil || created.CreatedAt != nil || created.IsEdit != nil {
		t.Errorf("absent fields should stay nil: %+v", created)
	}

	updated := commentsrepobridge.MarshalUpdateToRepository(commentsrepobridge.UpdateCommentInput{Rating: &rating})
	if updated.Rating == nil || *updated.Rating != 5 || updated.Author != nil || updated.Message != nil {
		t.Errorf("update = %+v", updated)
	}
}
