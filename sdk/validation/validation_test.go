package validation_test

import (
	"errors"
	"testing"

	"github.com/jrazmi/taskboard/sdk/validation"
)

type createInput struct {
	Name     *string `json:"name" validate:"required,max=5"`
	Priority *string `json:"priority" validate:"omitempty,max=3"`
	Size     *int    `json:"size_kb" validate:"omitempty,gte=0"`
}

func TestCheckPasses(t *testing.T) {
	in := createInput{Name: validation.StringPtr("")}
	if err := validation.Check(in); err != nil {
		t.Fatalf("empty but present name should pass: %v", err)
	}
}

func TestCheckReportsJSONNames(t *testing.T) {
	in := createInput{
		Priority: validation.StringPtr("urgent"),
		Size:     validation.IntPtr(-1),
	}

	err := validation.Check(in)
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T: %v", err, err)
	}

	got := map[string]bool{}
	for _, f := range fe {
		got[f.Field] = true
	}
	for _, want := range []string{"name", "priority", "size_kb"} {
		if !got[want] {
			t.Errorf("missing field error for %q in %v", want, fe)
		}
	}
}

func TestCoalesce(t *testing.T) {
	if got := validation.Coalesce("old", nil); got != "old" {
		t.Errorf("Coalesce(nil) = %q, want old", got)
	}
	if got := validation.Coalesce("old", validation.StringPtr("new")); got != "new" {
		t.Errorf("Coalesce(new) = %q, want new", got)
	}

	cur := validation.IntPtr(1)
	upd := validation.IntPtr(2)
	got := validation.CoalescePtr(cur, upd)
	if *got != 2 {
		t.Errorf("CoalescePtr = %d, want 2", *got)
	}
	*upd = 3
	if *got != 2 {
		t.Errorf("CoalescePtr aliased the update pointer")
	}
	if validation.CoalescePtr(cur, nil) != cur {
		t.Errorf("CoalescePtr(nil) should keep current")
	}
}
