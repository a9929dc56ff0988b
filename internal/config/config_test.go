package config

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"time"
)

func TestParseCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "http://localhost:5173", []string{"http://localhost:5173"}},
		{"trims and drops blanks", " a , , b ,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCSV(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d parts, got %d (%v)", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("part %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  time.Weekday
		ok    bool
	}{
		{"monday", time.Monday, true},
		{"Sunday", time.Sunday, true},
		{" SATURDAY ", time.Saturday, true},
		{"lunes", time.Sunday, false},
		{"", time.Sunday, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseWeekday(tt.input)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApplyEnvFile(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(buf, "", 0)

	t.Setenv("TIMEGRID_TEST_EXISTING", "kept")

	input := strings.Join([]string{
		"# comment",
		"",
		"export TIMEGRID_TEST_PORT=9090",
		`TIMEGRID_TEST_QUOTED="hello world"`,
		"TIMEGRID_TEST_EXISTING=overwritten",
		"not-a-pair",
	}, "\n")

	if err := applyEnvFile(logger, strings.NewReader(input)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := os.Getenv("TIMEGRID_TEST_PORT"); got != "9090" {
		t.Fatalf("expected TIMEGRID_TEST_PORT=9090, got %q", got)
	}
	if got := os.Getenv("TIMEGRID_TEST_QUOTED"); got != "hello world" {
		t.Fatalf("expected quotes stripped, got %q", got)
	}
	if got := os.Getenv("TIMEGRID_TEST_EXISTING"); got != "kept" {
		t.Fatalf("expected existing env to win, got %q", got)
	}

	t.Cleanup(func() {
		_ = os.Unsetenv("TIMEGRID_TEST_PORT")
		_ = os.Unsetenv("TIMEGRID_TEST_QUOTED")
	})
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("WEEK_START", "")

	buf := &bytes.Buffer{}
	cfg := Load(log.New(buf, "", 0))

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.WeekStart != time.Monday {
		t.Fatalf("expected Monday week start, got %v", cfg.WeekStart)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Fatalf("expected default CORS origins")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("CORS_ORIGINS", "https://app.example.com")
	t.Setenv("WEEK_START", "sunday")

	buf := &bytes.Buffer{}
	cfg := Load(log.New(buf, "", 0))

	if cfg.Port != "9191" {
		t.Fatalf("expected port 9191, got %s", cfg.Port)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://app.example.com" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSOrigins)
	}
	if cfg.WeekStart != time.Sunday {
		t.Fatalf("expected Sunday week start, got %v", cfg.WeekStart)
	}
}
