package engineconfig

import (
	"os"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	p, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if p != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", p, Default())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())
	want := EnginePrefs{
		ShowFPS:       true,
		ShowBodyCount: true,
		GridVisible:   false,
		PixelsPerUnit: 16,
		StartPaused:   true,
	}
	if err := Save(want); err != nil {
		t.Fatal(err)
	}
	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadInvalidJSONReturnsDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll("config", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(EngineConfigPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if p != Default() {
		t.Errorf("Load() = %+v, want defaults for invalid file", p)
	}
}

func TestLoadClampsZoom(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll("config", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(EngineConfigPath, []byte(`{"pixels_per_unit": -3}`), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if p.PixelsPerUnit != Default().PixelsPerUnit {
		t.Errorf("PixelsPerUnit = %v, want default for non-positive value", p.PixelsPerUnit)
	}
}
