package fopbridge_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
)

var fields = map[string]string{"budget": "budget"}

func TestParseOrderPage(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantBy   fop.By
		wantPage fop.Page
		wantErr  bool
	}{
		{name: "defaults", query: "", wantPage: fop.Page{Limit: 100}},
		{name: "desc", query: "sort_by=budget&sort_dir=desc&limit=2&offset=1", wantBy: fop.By{Field: "budget", Direction: fop.DESC}, wantPage: fop.Page{Limit: 2, Offset: 1}},
		{name: "unknown sort ignored", query: "sort_by=nope&sort_dir=desc", wantPage: fop.Page{Limit: 100}},
		{name: "zero limit", query: "limit=0", wantErr: true},
		{name: "negative offset", query: "offset=-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/projects?"+tt.query, nil)
			by, page, err := fopbridge.ParseOrderPage(r, fields)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if by != tt.wantBy || page != tt.wantPage {
				t.Errorf("got %+v %+v, want %+v %+v", by, page, tt.wantBy, tt.wantPage)
			}
		})
	}
}

func TestParams(t *testing.T) {
	if fopbridge.StringParam("") != nil {
		t.Error("empty string should be absent")
	}
	if v, err := fopbridge.Int64Param("project_id", "12"); err != nil || *v != 12 {
		t.Errorf("Int64Param = %v, %v", v, err)
	}
	if _, err := fopbridge.Int64Param("project_id", "x"); err == nil {
		t.Error("expected error for non integer")
	}
	if v, err := fopbridge.Float64Param("min_budget", "20.5"); err != nil || *v != 20.5 {
		t.Errorf("Float64Param = %v, %v", v, err)
	}
	if v, err := fopbridge.BoolParam("is_active", "false"); err != nil || *v {
		t.Errorf("BoolParam = %v, %v", v, err)
	}
	if v, err := fopbridge.BoolParam("is_active", ""); err != nil || v != nil {
		t.Errorf("empty BoolParam = %v, %v", v, err)
	}
}

func TestBoolParamSpellings(t *testing.T) {
	tests := []struct {
		value   string
		want    bool
		wantErr bool
	}{
		{value: "true", want: true},
		{value: "TRUE", want: true},
		{value: "1", want: true},
		{value: "yes", want: true},
		{value: "On", want: true},
		{value: "y", want: true},
		{value: "false", want: false},
		{value: "0", want: false},
		{value: "no", want: false},
		{value: "OFF", want: false},
		{value: "n", want: false},
		{value: "maybe", wantErr: true},
		{value: "2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := fopbridge.BoolParam("is_active", tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("BoolParam(%q) = %v, want error", tt.value, *got)
				}
				return
			}
			if err != nil || *got != tt.want {
				t.Errorf("BoolParam(%q) = %v, %v", tt.value, got, err)
			}
		})
	}
}

func TestListResponseNil(t *testing.T) {
	data, _, err := fopbridge.NewListResponse[int](nil).Encode()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("nil list encoded as %s", data)
	}
}

func TestOKResponse(t *testing.T) {
	data, _, _ := fopbridge.NewOKResponse().Encode()
	if string(data) != `{"ok":true}` {
		t.Errorf("got %s", data)
	}
}
