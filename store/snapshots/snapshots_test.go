package snapshots

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestDir(t *testing.T) string {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, Directory), 0755); err != nil {
		t.Fatalf("failed to create snapshots dir: %v", err)
	}
	return dir
}

func writeTestFile(t *testing.T, storage, name, content string, modTime time.Time) string {
	path := filepath.Join(storage, Directory, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("failed to set modtime: %v", err)
	}
	return path
}

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestStore_Load_MissingDirectory(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir())
	records, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records, got %d", len(records))
	}
}

func TestStore_Load_SortsNewestFirstAndSkipsOtherFiles(t *testing.T) {
	t.Parallel()

	storage := setupTestDir(t)
	now := time.Now()
	writeTestFile(t, storage, "old.png", "a", now.Add(-2*time.Hour))
	writeTestFile(t, storage, "new.png", "bb", now.Add(-time.Hour))
	writeTestFile(t, storage, "notes.txt", "ignored", now)

	records, err := New(storage).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "new.png" || records[1].Name != "old.png" {
		t.Errorf("unexpected order: %s, %s", records[0].Name, records[1].Name)
	}
	if records[0].Size != 2 {
		t.Errorf("expected size 2, got %d", records[0].Size)
	}
}

func TestStore_Save_CreatesDirectoryAndAddsExtension(t *testing.T) {
	t.Parallel()

	storage := t.TempDir()
	s := New(storage)

	rec, err := s.Save("overview", writeString("png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "overview.png" {
		t.Errorf("expected overview.png, got %s", rec.Name)
	}
	if rec.Path != filepath.Join(storage, Directory, "overview.png") {
		t.Errorf("unexpected path %s", rec.Path)
	}

	data, err := os.ReadFile(rec.Path)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if string(data) != "png" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestStore_Save_UniqueNames(t *testing.T) {
	t.Parallel()

	storage := setupTestDir(t)
	writeTestFile(t, storage, "hands.png", "x", time.Now())
	writeTestFile(t, storage, "Hands-1.png", "x", time.Now())

	s := New(storage)
	rec, err := s.Save("hands.png", writeString("y"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "hands-2.png" {
		t.Errorf("expected hands-2.png, got %s", rec.Name)
	}

	records, _ := s.Load()
	if len(records) != 3 {
		t.Errorf("expected 3 records, got %d", len(records))
	}
}

func TestStore_Save_RemovesFileOnWriteError(t *testing.T) {
	t.Parallel()

	storage := t.TempDir()
	s := New(storage)

	_, err := s.Save("broken", func(io.Writer) error { return errors.New("boom") })
	if err == nil {
		t.Fatal("expected error")
	}
	if _, statErr := os.Stat(filepath.Join(storage, Directory, "broken.png")); !os.IsNotExist(statErr) {
		t.Errorf("expected partial file to be removed, got %v", statErr)
	}
}

func TestStore_Save_InvalidName(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir())
	for _, name := range []string{"", "   ", "../escape.png", `a\b`} {
		if _, err := s.Save(name, writeString("x")); err == nil {
			t.Errorf("expected error for %q", name)
		}
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	storage := setupTestDir(t)
	path := writeTestFile(t, storage, "gone.png", "x", time.Now())

	s := New(storage)
	records, _ := s.Load()
	if err := s.Delete(records[0]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected file to be deleted")
	}

	if err := s.Delete(Record{Name: "missing.png"}); err == nil {
		t.Error("expected error deleting missing snapshot")
	}
}

func TestStore_Rename(t *testing.T) {
	t.Parallel()

	storage := setupTestDir(t)
	writeTestFile(t, storage, "a.png", "x", time.Now())
	writeTestFile(t, storage, "b.png", "x", time.Now())

	s := New(storage)
	records, _ := s.Load()

	var rec Record
	for _, r := range records {
		if r.Name == "a.png" {
			rec = r
		}
	}

	if err := s.Rename(&rec, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "b-1.png" {
		t.Errorf("expected b-1.png, got %s", rec.Name)
	}
	if _, err := os.Stat(filepath.Join(storage, Directory, "b-1.png")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}

	if err := s.Rename(&rec, "b-1.png"); err != nil {
		t.Fatalf("renaming to own name should succeed: %v", err)
	}
	if rec.Name != "b-1.png" {
		t.Errorf("expected name to be kept, got %s", rec.Name)
	}
}

func TestStore_Rename_RejectsExtensionChange(t *testing.T) {
	t.Parallel()

	storage := setupTestDir(t)
	writeTestFile(t, storage, "a.png", "x", time.Now())

	s := New(storage)
	records, _ := s.Load()
	if err := s.Rename(&records[0], "a.jpg"); err == nil {
		t.Error("expected error when changing extension")
	}
}

func TestDefaultName(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	if got := DefaultName("hands", at); got != "hands-20250304-050607.png" {
		t.Errorf("unexpected name %s", got)
	}
}
