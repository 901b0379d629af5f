package postgresdb_test

import (
	"testing"

	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "simple", in: "budget", want: `"budget"`},
		{name: "underscore", in: "time_estimation", want: `"time_estimation"`},
		{name: "qualified", in: "p.name", want: `"p"."name"`},
		{name: "empty", in: "", wantErr: true},
		{name: "injection", in: "name; DROP TABLE projects", wantErr: true},
		{name: "quote", in: `name"`, wantErr: true},
		{name: "space", in: "name desc", wantErr: true},
		{name: "too many segments", in: "a.b.c", wantErr: true},
		{name: "leading digit", in: "1name", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := postgresdb.QuoteIdentifier(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("QuoteIdentifier(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("QuoteIdentifier(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("QuoteIdentifier(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
