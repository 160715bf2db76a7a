package mandel

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestRegionByName(t *testing.T) {
	for _, n := range RegionNames() {
		r, err := RegionByName(strings.ToUpper(n))
		if err != nil {
			t.Errorf("RegionByName(%q) = %v", n, err)
			continue
		}
		if r.Empty() {
			t.Errorf("region %q is empty", n)
		}
	}
	if _, err := RegionByName("atlantis"); err == nil {
		t.Error("RegionByName(atlantis) succeeded")
	}
}

func TestRegion_Contains(t *testing.T) {
	if !FullSet.Contains(-2, 1) || !FullSet.Contains(1, -1) {
		t.Error("FullSet does not contain its corners")
	}
	if FullSet.Contains(1.01, 0) {
		t.Error("FullSet contains 1.01")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(nil)

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if Logger().Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	e, err := NewEngine(testParams())
	if err != nil {
		t.Fatal(err)
	}
	e.Stop()
	if !strings.Contains(buf.String(), "engine ready") {
		t.Errorf("engine did not log through the configured logger: %s", buf.String())
	}
}
