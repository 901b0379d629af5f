package reportsrepobridge_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/taskboard/bridge/repositories/reportsrepobridge"
	"github.com/jrazmi/taskboard/bridge/scaffolding/mid"
	"github.com/jrazmi/taskboard/core/repositories/reportsrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
	"github.com/jrazmi/taskboard/sdk/validation"
)

type stubStore struct {
	fail     error
	left     *bool
	limit    int
	projects int64
}

func (s *stubStore) ProjectAggregate(context.Context) (reportsrepo.ProjectAggregate, error) {
	if s.fail != nil {
		return reportsrepo.ProjectAggregate{}, s.fail
	}
	return reportsrepo.ProjectAggregate{Count: s.projects, SumBudget: 12.5 * float64(s.projects)}, nil
}

func (s *stubStore) TaskAggregate(context.Context) (reportsrepo.TaskAggregate, error) {
	return reportsrepo.TaskAggregate{}, s.fail
}

func (s *stubStore) TasksWithProject(_ context.Context, left bool) ([]reportsrepo.TaskWithProject, error) {
	s.left = &left
	rows := []reportsrepo.TaskWithProject{
		{TaskID: 1, TaskName: "owned", ProjectID: validation.Int64Ptr(1), ProjectName: validation.StringPtr("alpha")},
	}
	if left {
		rows = append(rows, reportsrepo.TaskWithProject{TaskID: 2, TaskName: "orphan"})
	}
	return rows, nil
}

func (s *stubStore) ProjectTaskCount(context.Context) ([]reportsrepo.ProjectTaskCount, error) {
	return nil, s.fail
}

func (s *stubStore) NameUnion(context.Context) ([]string, error) {
	return []string{"alpha", "beta", "alpha"}, nil
}

func (s *stubStore) StringFunctions(_ context.Context, limit int) ([]reportsrepo.NameStats, error) {
	s.limit = limit
	return []reportsrepo.NameStats{{ID: 1, NameUpper: "ALPHA", NameLen: 5}}, nil
}

func setup(store *stubStore) http.Handler {
	log := logger.NewDiscard()
	wh := web.NewWebHandler(web.WithGlobalMiddleware(mid.Errors(log), mid.Panics()))
	group := wh.Group("")
	group.GET("/projects/{project_id}", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewJSONResponse(map[string]string{"route": "project"})
	})
	reportsrepobridge.AddHttpRoutes(group, reportsrepobridge.Config{
		Log:        log,
		Repository: reportsrepo.NewRepository(log, store),
	})
	return wh
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestProjectAggregateRoute(t *testing.T) {
	h := setup(&stubStore{projects: 2})

	rec := get(h, "/projects/aggregate")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got, want := rec.Body.String(), `{"count":2,"sum_budget":25}`; got != want {
		t.Errorf("body = %s, want %s", got, want)
	}

	if rec := get(h, "/projects/7"); !strings.Contains(rec.Body.String(), "project") {
		t.Errorf("/projects/7 routed to %s", rec.Body)
	}
}

func TestEmptyAggregateIsZero(t *testing.T) {
	h := setup(&stubStore{})

	if got := get(h, "/tasks/aggregate").Body.String(); got != `{"count":0,"avg_time":0}` {
		t.Errorf("body = %s", got)
	}
	if got := get(h, "/reports/project_task_count").Body.String(); got != `[]` {
		t.Errorf("empty report = %s", got)
	}
}

func TestTasksWithProjectLeft(t *testing.T) {
	tests := []struct {
		query    string
		wantLeft bool
		wantRows int
	}{
		{"", true, 2},
		{"?left=true", true, 2},
		{"?left=false", false, 1},
		{"?left=0", false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			store := &stubStore{}
			rec := get(setup(store), "/reports/tasks_with_project"+tt.query)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}

			var rows []map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
				t.Fatal(err)
			}
			if *store.left != tt.wantLeft || len(rows) != tt.wantRows {
				t.Errorf("left = %v rows = %d", *store.left, len(rows))
			}
			if tt.wantLeft && rows[1]["project_id"] != nil {
				t.Errorf("orphan project_id = %v", rows[1]["project_id"])
			}
		})
	}

	if rec := get(setup(&stubStore{}), "/reports/tasks_with_project?left=maybe"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad left = %d", rec.Code)
	}
}

func TestDemoEndpoints(t *testing.T) {
	store := &stubStore{}
	h := setup(store)

	if got := get(h, "/demo/sets").Body.String(); got != `["alpha","beta","alpha"]` {
		t.Errorf("sets = %s", got)
	}
	if got := get(h, "/demo/functions").Body.String(); got != `[{"id":1,"name_upper":"ALPHA","name_len":5}]` {
		t.Errorf("functions = %s", got)
	}
	if store.limit != reportsrepo.StringFunctionsLimit {
		t.Errorf("limit = %d", store.limit)
	}
}

func TestReportStoreFailure(t *testing.T) {
	h := setup(&stubStore{fail: errors.New("connection reset")})

	rec := get(h, "/projects/aggregate")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Errorf("cause leaked: %s", rec.Body)
	}
}
