package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	before := C
	if err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if C != before {
		t.Error("defaults changed without a config file")
	}
}

func TestLoadOverridesOnlyNamedFields(t *testing.T) {
	origCatch := Catch
	origC := C
	t.Cleanup(func() {
		Catch = origCatch
		C = origC
	})

	path := filepath.Join(t.TempDir(), "orchard.yaml")
	body := "catch:\n  walkSpeed: 450\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if Catch.WalkSpeed != 450 {
		t.Errorf("walkSpeed=%v want 450", Catch.WalkSpeed)
	}
	if Catch.StartingLives != origCatch.StartingLives {
		t.Errorf("untouched field changed: lives=%d want %d", Catch.StartingLives, origCatch.StartingLives)
	}
	if C.Width != origC.Width {
		t.Errorf("untouched section changed: width=%d want %d", C.Width, origC.Width)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orchard.yaml")
	if err := os.WriteFile(path, []byte("catch: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err == nil {
		t.Error("malformed config should be rejected")
	}
}

func TestDtMatchesTickRate(t *testing.T) {
	if got := C.Dt(); got != 1.0/float64(C.TPS) {
		t.Errorf("dt=%v want %v", got, 1.0/float64(C.TPS))
	}
}
