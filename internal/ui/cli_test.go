package ui

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/devoxx-schedule/internal/config"
	"github.com/javiermolinar/devoxx-schedule/internal/dateutil"
	"github.com/javiermolinar/devoxx-schedule/internal/db"
	"github.com/javiermolinar/devoxx-schedule/internal/schedule"
)

const testdataDir = "../schedule/testdata"

// monday is 2019-11-04, the first day of Devoxx Belgium 2019.
var monday = time.Date(2019, 11, 4, 10, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer) {
	t.Helper()
	DisableColor()
	t.Cleanup(EnableColor)

	var buf bytes.Buffer
	a := NewApp(cfg)
	a.out = &buf
	a.now = func() time.Time { return monday }
	a.root.SetOut(&buf)
	a.root.SetErr(&buf)
	return a, &buf
}

func execute(a *App, args ...string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(context.Background())
}

func offlineConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.Source.DataDir = dir
	return cfg
}

// scheduleServer serves <dir>/<day>.json at the schedules endpoint.
func scheduleServer(t *testing.T, dir string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		day, ok := strings.CutPrefix(r.URL.Path, "/api/public/schedules/")
		if !ok {
			http.NotFound(w, r)
			return
		}
		data, err := os.ReadFile(filepath.Join(dir, day+".json"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func onlineConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Source.BaseURL = baseURL
	cfg.Source.DataDir = filepath.Join(t.TempDir(), "schedule")
	cfg.Source.RequestsPerSecond = 0
	return cfg
}

func TestVersionCmd(t *testing.T) {
	a, out := newTestApp(t, config.Default())
	if err := execute(a, "version"); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got, want := out.String(), "devoxx-schedule dev (commit: none)\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestListCmd_Offline(t *testing.T) {
	a, out := newTestApp(t, offlineConfig(testdataDir))
	if err := execute(a, "list", "--offline", "monday"); err != nil {
		t.Fatalf("list: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if lines[0] != "=== Monday === [offline]" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 13 {
		t.Fatalf("got %d lines, want header plus 12 talks:\n%s", len(lines), out.String())
	}
	first := lines[1]
	for _, want := range []string{"09:30 - 12:30", "Room 8", "Monty Python meets the Cloud of Doom"} {
		if !strings.Contains(first, want) {
			t.Errorf("first line %q missing %q", first, want)
		}
	}
}

func TestListCmd_DefaultsToToday(t *testing.T) {
	a, out := newTestApp(t, offlineConfig(testdataDir))
	a.now = func() time.Time { return monday.AddDate(0, 0, 2) }

	if err := execute(a, "list", "-o"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.HasPrefix(out.String(), "=== Wednesday ===") {
		t.Errorf("expected Wednesday, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Java in 2020 and Beyond") {
		t.Errorf("missing Wednesday talk:\n%s", out.String())
	}
}

func TestListCmd_WeekendShowsMonday(t *testing.T) {
	a, out := newTestApp(t, offlineConfig(testdataDir))
	if err := execute(a, "list", "-o", "saturday"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.HasPrefix(out.String(), "=== Monday ===") {
		t.Errorf("expected Monday, got:\n%s", out.String())
	}
}

func TestListCmd_InvalidDay(t *testing.T) {
	a, _ := newTestApp(t, offlineConfig(testdataDir))
	err := execute(a, "list", "-o", "funday")
	if !errors.Is(err, dateutil.ErrInvalidDay) {
		t.Errorf("got %v, want ErrInvalidDay", err)
	}
}

func TestListCmd_LoadFailure(t *testing.T) {
	a, _ := newTestApp(t, offlineConfig(filepath.Join(testdataDir, "broken")))
	err := execute(a, "list", "-o", "thursday")
	if !errors.Is(err, schedule.ErrLoad) || !errors.Is(err, schedule.ErrDayNotFound) {
		t.Errorf("got %v, want a load error for a missing day", err)
	}
}

func TestListCmd_Online(t *testing.T) {
	srv := scheduleServer(t, testdataDir)
	a, out := newTestApp(t, onlineConfig(t, srv.URL))

	if err := execute(a, "list", "friday"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Contains(out.String(), "[offline]") {
		t.Error("online listing should not carry the offline badge")
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("got %d lines, want header plus 2 talks:\n%s", len(lines), out.String())
	}
}

func TestSyncCmd(t *testing.T) {
	srv := scheduleServer(t, testdataDir)
	cfg := onlineConfig(t, srv.URL)
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "archive.db")
	a, out := newTestApp(t, cfg)

	if err := execute(a, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	for _, d := range dateutil.Workdays {
		name := dateutil.DayName(d)
		got, err := os.ReadFile(filepath.Join(cfg.Source.DataDir, name+".json"))
		if err != nil {
			t.Fatalf("reading synced %s: %v", name, err)
		}
		want, _ := os.ReadFile(filepath.Join(testdataDir, name+".json"))
		if !bytes.Equal(got, want) {
			t.Errorf("synced %s differs from served document", name)
		}
	}
	if !strings.Contains(out.String(), "monday     12 talks") {
		t.Errorf("missing monday summary:\n%s", out.String())
	}

	store, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer func() { _ = store.Close() }()

	days, err := store.ListDays(context.Background())
	if err != nil {
		t.Fatalf("listing archive: %v", err)
	}
	if len(days) != 5 {
		t.Fatalf("archive has %d days, want 5", len(days))
	}
	for _, d := range days {
		if !d.FetchedAt.Equal(monday) {
			t.Errorf("%s fetched at %v, want %v", d.Day, d.FetchedAt, monday)
		}
	}
}

func TestSyncCmd_ThenOfflineArchive(t *testing.T) {
	srv := scheduleServer(t, testdataDir)
	cfg := onlineConfig(t, srv.URL)
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "archive.db")

	a, _ := newTestApp(t, cfg)
	if err := execute(a, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}
	srv.Close()

	// The data directory is gone; offline reads must come from the archive.
	if err := os.RemoveAll(cfg.Source.DataDir); err != nil {
		t.Fatal(err)
	}

	b, out := newTestApp(t, cfg)
	if err := execute(b, "list", "-o", "tuesday"); err != nil {
		t.Fatalf("list from archive: %v", err)
	}
	if !strings.Contains(out.String(), "Reactive Spring Deep Dive") {
		t.Errorf("missing archived talk:\n%s", out.String())
	}
}

func TestSyncCmd_InvalidDayWritesNothing(t *testing.T) {
	dir := t.TempDir()
	for _, d := range dateutil.Workdays {
		name := dateutil.DayName(d)
		src := filepath.Join(testdataDir, name+".json")
		if d == time.Tuesday {
			src = filepath.Join(testdataDir, "broken", "tuesday.json")
		}
		data, err := os.ReadFile(src)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	srv := scheduleServer(t, dir)
	cfg := onlineConfig(t, srv.URL)
	a, _ := newTestApp(t, cfg)

	err := execute(a, "sync")
	var loadErr *schedule.LoadError
	if !errors.As(err, &loadErr) || loadErr.Day != "tuesday" {
		t.Fatalf("got %v, want tuesday load error", err)
	}
	if _, err := os.Stat(cfg.Source.DataDir); !os.IsNotExist(err) {
		t.Errorf("data dir should not exist after failed sync, stat err = %v", err)
	}
}

func TestSyncCmd_Offline(t *testing.T) {
	a, _ := newTestApp(t, offlineConfig(t.TempDir()))
	if err := execute(a, "sync", "--offline"); !errors.Is(err, errSyncOffline) {
		t.Errorf("got %v, want errSyncOffline", err)
	}
}

func TestOpenLoader(t *testing.T) {
	tests := []struct {
		name    string
		offline bool
		format  string
		archive bool
		want    schedule.Format
	}{
		{name: "online", want: schedule.FormatStructured},
		{name: "online ignores line format", format: "line", want: schedule.FormatStructured},
		{name: "offline directory", offline: true, format: "line", want: schedule.FormatLine},
		{name: "offline archive", offline: true, format: "line", archive: true, want: schedule.FormatStructured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := offlineConfig(t.TempDir())
			if tt.format != "" {
				cfg.Source.Format = tt.format
			}
			if tt.archive {
				cfg.Storage.DBPath = filepath.Join(t.TempDir(), "archive.db")
			}
			a, _ := newTestApp(t, cfg)
			a.offline = tt.offline

			loader, closeSource, err := a.openLoader()
			if err != nil {
				t.Fatalf("openLoader: %v", err)
			}
			defer closeSource()

			if loader.Format() != tt.want {
				t.Errorf("format = %s, want %s", loader.Format(), tt.want)
			}
		})
	}
}

func TestArchiveCmd(t *testing.T) {
	srv := scheduleServer(t, testdataDir)
	cfg := onlineConfig(t, srv.URL)
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "archive.db")

	a, _ := newTestApp(t, cfg)
	if err := execute(a, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	b, out := newTestApp(t, cfg)
	if err := execute(b, "archive"); err != nil {
		t.Fatalf("archive: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header plus 5 days:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "monday") ||
		!strings.HasPrefix(strings.TrimSpace(lines[5]), "friday") {
		t.Errorf("days out of tab order:\n%s", out.String())
	}
}

func TestArchiveCmd_NotConfigured(t *testing.T) {
	a, _ := newTestApp(t, offlineConfig(t.TempDir()))
	if err := execute(a, "archive"); !errors.Is(err, errNoArchive) {
		t.Errorf("got %v, want errNoArchive", err)
	}
}
