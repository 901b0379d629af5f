package environment_test

import (
	"testing"
	"time"

	"github.com/jrazmi/taskboard/sdk/environment"
)

type testOptions struct {
	URL      string        `env:"URL" required:"true"`
	MaxConns int           `env:"MAX_CONNS" default:"25"`
	Ratio    float64       `env:"RATIO" default:"0.5"`
	Debug    bool          `env:"DEBUG" default:"false"`
	Timeout  time.Duration `env:"TIMEOUT" default:"5s"`
	Origins  []string      `env:"ORIGINS" default:"*" separator:","`
	Ignored  string
}

func TestParseEnvTagsDefaults(t *testing.T) {
	t.Setenv("TEST_URL", "postgres://localhost/db")

	var opts testOptions
	if err := environment.ParseEnvTags("TEST", &opts); err != nil {
		t.Fatalf("ParseEnvTags: %v", err)
	}

	if opts.URL != "postgres://localhost/db" {
		t.Errorf("URL = %q", opts.URL)
	}
	if opts.MaxConns != 25 {
		t.Errorf("MaxConns = %d, want 25", opts.MaxConns)
	}
	if opts.Ratio != 0.5 {
		t.Errorf("Ratio = %v, want 0.5", opts.Ratio)
	}
	if opts.Debug {
		t.Errorf("Debug = true, want false")
	}
	if opts.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", opts.Timeout)
	}
	if len(opts.Origins) != 1 || opts.Origins[0] != "*" {
		t.Errorf("Origins = %v, want [*]", opts.Origins)
	}
}

func TestParseEnvTagsOverrides(t *testing.T) {
	t.Setenv("TEST_URL", "postgres://db")
	t.Setenv("TEST_MAX_CONNS", "7")
	t.Setenv("TEST_DEBUG", "true")
	t.Setenv("TEST_TIMEOUT", "250ms")
	t.Setenv("TEST_ORIGINS", "http://a.test, http://b.test,")

	var opts testOptions
	if err := environment.ParseEnvTags("TEST", &opts); err != nil {
		t.Fatalf("ParseEnvTags: %v", err)
	}

	if opts.MaxConns != 7 {
		t.Errorf("MaxConns = %d, want 7", opts.MaxConns)
	}
	if !opts.Debug {
		t.Errorf("Debug = false, want true")
	}
	if opts.Timeout != 250*time.Millisecond {
		t.Errorf("Timeout = %v, want 250ms", opts.Timeout)
	}
	if len(opts.Origins) != 2 || opts.Origins[1] != "http://b.test" {
		t.Errorf("Origins = %v", opts.Origins)
	}
}

func TestParseEnvTagsRequired(t *testing.T) {
	t.Setenv("MISSING_URL", "")

	var opts testOptions
	if err := environment.ParseEnvTags("MISSING", &opts); err == nil {
		t.Fatal("expected error for missing required variable")
	}
}

func TestParseEnvTagsBadValue(t *testing.T) {
	t.Setenv("BAD_URL", "x")
	t.Setenv("BAD_MAX_CONNS", "lots")

	var opts testOptions
	if err := environment.ParseEnvTags("BAD", &opts); err == nil {
		t.Fatal("expected error for non-numeric int")
	}
}

func TestParseEnvTagsRejectsNonPointer(t *testing.T) {
	if err := environment.ParseEnvTags("", testOptions{}); err == nil {
		t.Fatal("expected error for non-pointer cfg")
	}
}

func TestGetEnvKeyPrefix(t *testing.T) {
	if got := environment.GetEnvKeyPrefix("", "PORT"); got != "PORT" {
		t.Errorf("got %q, want PORT", got)
	}
	if got := environment.GetEnvKeyPrefix("TASKBOARD", "PORT"); got != "TASKBOARD_PORT" {
		t.Errorf("got %q, want TASKBOARD_PORT", got)
	}
}
