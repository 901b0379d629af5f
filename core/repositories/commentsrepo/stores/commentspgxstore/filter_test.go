package commentspgxstore

import (
	"testing"

	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/sdk/validation"
)

func TestBuildListQueryByTask(t *testing.T) {
	query, args, err := buildListQuery(
		commentsrepo.QueryFilter{TaskID: validation.Int64Ptr(3)},
		fop.NewBy(commentsrepo.OrderByRating, fop.DESC),
		fop.Page{Limit: 5, Offset: 10},
	)
	if err != nil {
		t.Fatalf("buildListQuery: %v", err)
	}

	want := `SELECT ` + columns + ` FROM comments WHERE task_id = @task_id ORDER BY "rating" DESC LIMIT @limit OFFSET @offset`
	if query != want {
		t.Errorf("query =\n%s\nwant\n%s", query, want)
	}
	if args["task_id"] != int64(3) || args["limit"] != 5 || args["offset"] != 10 {
		t.Errorf("args = %v", args)
	}
}
