package config

import (
	"testing"

	"github.com/csgedit/csgedit/internal/editflag"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if cfg.Tol.Dist != Default().Tol.Dist {
		t.Errorf("expected default tolerance, got %v", cfg.Tol)
	}
}

func TestParseOverridesTolerance(t *testing.T) {
	cfg, err := Parse([]byte("[tol]\ndist = 0.01\nperp = 1e-5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Tol.Dist != 0.01 || cfg.Tol.Perp != 1e-5 {
		t.Errorf("got %+v", cfg.Tol)
	}
}

func TestParseRotateAbout(t *testing.T) {
	cfg, err := Parse([]byte("rotate_about = \"eye\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.RotateAbout != editflag.PivotEye {
		t.Errorf("got %v", cfg.RotateAbout)
	}
}

func TestParseRejectsUnknownPivot(t *testing.T) {
	if _, err := Parse([]byte("rotate_about = \"nonsense\"\n")); err == nil {
		t.Fatal("expected error for unknown rotate_about")
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/path/does-not-exist.toml")
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if cfg.Tol != Default().Tol {
		t.Errorf("expected default tolerance for missing file")
	}
}
