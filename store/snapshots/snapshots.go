package snapshots

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	Directory = "snapshots"
	Extension = ".png"
)

type Record struct {
	Name      string
	Path      string
	Size      int64
	UpdatedAt time.Time
}

type Store interface {
	Load() ([]Record, error)                                       // Load lists the snapshots in the storage directory, newest first.
	Save(name string, write func(io.Writer) error) (Record, error) // Save writes a new snapshot under a unique name.
	Delete(record Record) error                                    // Delete removes the snapshot file.
	Rename(record *Record, newName string) error                   // Rename moves the snapshot to a new unique name.
	Dir() string                                                   // Dir is the directory snapshots live in.
}

// New returns a store rooted at <storage>/snapshots.
func New(storage string) Store {
	return &store{
		dir: filepath.Join(storage, Directory),
	}
}

type store struct {
	mu      sync.Mutex
	dir     string
	records []Record
}

// DefaultName builds a snapshot name from the focus target and time.
func DefaultName(focus string, at time.Time) string {
	return fmt.Sprintf("%s-%s%s", focus, at.Format("20060102-150405"), Extension)
}

func (s *store) Dir() string {
	return s.dir
}

func (s *store) Load() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	return slices.Clone(s.records), nil
}

func (s *store) Save(name string, write func(io.Writer) error) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateName(name); err != nil {
		return Record{}, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Record{}, fmt.Errorf("failed to create snapshots directory: %w", err)
	}

	if err := s.load(); err != nil {
		return Record{}, err
	}

	if filepath.Ext(name) == "" {
		name += Extension
	}
	name = s.generateUniqueName(name, "")
	path := filepath.Join(s.dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return Record{}, fmt.Errorf("failed to create snapshot: %w", err)
	}

	if err := write(file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return Record{}, fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := file.Close(); err != nil {
		return Record{}, err
	}

	record, err := loadRecord(path)
	if err != nil {
		return Record{}, err
	}

	s.records = append([]Record{record}, s.records...)
	return record, nil
}

func (s *store) Delete(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, record.Name)

	if err := os.Remove(path); err != nil {
		return err
	}

	s.records = slices.DeleteFunc(s.records, func(r Record) bool {
		return r.Name == record.Name
	})

	return nil
}

func (s *store) Rename(record *Record, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateName(newName); err != nil {
		return err
	}

	ext := filepath.Ext(newName)

	if ext == "" {
		ext = filepath.Ext(record.Name)
		newName += ext
	}

	if ext != filepath.Ext(record.Name) {
		return errors.New("cannot change file extension when renaming snapshot")
	}

	uniqueName := s.generateUniqueName(newName, record.Name)

	oldPath := filepath.Join(s.dir, record.Name)
	newPath := filepath.Join(s.dir, uniqueName)

	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}

	oldName := record.Name
	record.Name = uniqueName
	record.Path = newPath

	for i := range s.records {
		if s.records[i].Name == oldName {
			s.records[i] = *record
			break
		}
	}

	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("snapshot name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid snapshot name %q", name)
	}
	return nil
}

// generateUniqueName appends -1, -2, ... until name does not clash with an
// existing snapshot other than oldName. Comparison ignores case.
func (s *store) generateUniqueName(name string, oldName string) string {
	ext := filepath.Ext(name)

	taken := make(map[string]bool, len(s.records))
	for _, r := range s.records {
		if filepath.Ext(r.Name) == ext && r.Name != oldName {
			taken[strings.ToLower(strings.TrimSuffix(r.Name, ext))] = true
		}
	}

	base := strings.TrimSuffix(name, ext)
	candidate := base

	for counter := 1; taken[strings.ToLower(candidate)]; counter++ {
		candidate = base + "-" + strconv.Itoa(counter)
	}

	return candidate + ext
}

func loadRecord(path string) (Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Name:      filepath.Base(path),
		Path:      path,
		Size:      info.Size(),
		UpdatedAt: info.ModTime(),
	}, nil
}

func (s *store) load() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.records = nil
			return nil
		}
		return err
	}

	var records []Record
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Extension) {
			continue
		}

		record, err := loadRecord(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	slices.SortStableFunc(records, func(i, j Record) int {
		if i.UpdatedAt.After(j.UpdatedAt) {
			return -1
		}

		if i.UpdatedAt.Before(j.UpdatedAt) {
			return 1
		}

		return 0
	})

	s.records = records
	return nil
}
