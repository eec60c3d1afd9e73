package landing

import (
	"os"
	"path/filepath"
	"testing"

	"milagros/domain/partition"
	"milagros/internal/errors"
)

const testKey = partition.Key("2026-01-26")

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write source fixture: %v", err)
	}
	return path
}

func TestRunLandsFileAndMarker(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "Nacimientos_HGM.xlsx", "raw bytes")
	rawBase := filepath.Join(dir, "raw")

	stage := NewStage(source, rawBase, testKey, nil)
	result, err := stage.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Skipped {
		t.Fatal("first run must not be skipped")
	}

	content, err := os.ReadFile(result.Dest)
	if err != nil {
		t.Fatalf("destination not written: %v", err)
	}
	if string(content) != "raw bytes" {
		t.Errorf("destination content = %q, want %q", content, "raw bytes")
	}

	info, err := os.Stat(result.Marker)
	if err != nil {
		t.Fatalf("marker not written: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("marker must be zero-byte, got %d bytes", info.Size())
	}

	srcInfo, _ := os.Stat(source)
	destInfo, _ := os.Stat(result.Dest)
	if !destInfo.ModTime().Equal(srcInfo.ModTime()) {
		t.Errorf("destination mod time %v, want source mod time %v",
			destInfo.ModTime(), srcInfo.ModTime())
	}
}

// TestRunIsIdempotent: a second run with both artifacts present performs no
// copy; the destination keeps its content even when the source changed,
// because the check is existence-only.
func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "Nacimientos_HGM.xlsx", "original")
	rawBase := filepath.Join(dir, "raw")

	stage := NewStage(source, rawBase, testKey, nil)
	first, err := stage.Run()
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	// Mutate the source; an idempotent second run must not pick this up.
	if err := os.WriteFile(source, []byte("changed"), 0o644); err != nil {
		t.Fatal(err)
	}

	second, err := stage.Run()
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !second.Skipped {
		t.Fatal("second run must report skipped")
	}
	if second.Dest != first.Dest || second.Marker != first.Marker {
		t.Errorf("artifact paths changed between runs: %+v vs %+v", first, second)
	}

	content, _ := os.ReadFile(first.Dest)
	if string(content) != "original" {
		t.Errorf("skipped run rewrote destination: %q", content)
	}
}

// TestRunRecopiesWithoutMarker: a destination without its marker is not
// trusted and gets re-copied.
func TestRunRecopiesWithoutMarker(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "Nacimientos_HGM.xlsx", "fresh")
	rawBase := filepath.Join(dir, "raw")

	landingDir := testKey.Dir(rawBase)
	if err := os.MkdirAll(landingDir, 0o755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(landingDir, "Nacimientos_HGM.xlsx")
	if err := os.WriteFile(stale, []byte("stale partial copy"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := NewStage(source, rawBase, testKey, nil).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Skipped {
		t.Fatal("run must not skip when the marker is absent")
	}
	content, _ := os.ReadFile(result.Dest)
	if string(content) != "fresh" {
		t.Errorf("destination not re-copied: %q", content)
	}
}

func TestRunSourceMissing(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "no_such_file.xlsx")

	_, err := NewStage(source, filepath.Join(dir, "raw"), testKey, nil).Run()
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if code := errors.GetCode(err); code != errors.CodeSourceNotFound {
		t.Errorf("expected code %s, got %s (%v)", errors.CodeSourceNotFound, code, err)
	}
}
