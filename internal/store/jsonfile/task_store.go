package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/store"
)

const DefaultPath = "tasks.json"

// TaskStore keeps the whole collection in one JSON file.
//
// Every Save rewrites the file through a temp file and an atomic rename, so a
// failed write leaves the previous content in place. There is no locking: one
// process is assumed to own the file for the duration of a command.
type TaskStore struct {
	path string
}

func New(path string) *TaskStore {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	return &TaskStore{path: path}
}

func (s *TaskStore) Path() string {
	return s.path
}

// EnsureInitialized creates the file holding an empty collection when it does
// not exist yet.
func (s *TaskStore) EnsureInitialized() error {
	info, err := os.Stat(s.path)
	switch {
	case err == nil:
		if info.IsDir() {
			return &store.StorageError{Op: "init", Path: s.path, Err: errors.New("path is a directory")}
		}
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return &store.StorageError{Op: "init", Path: s.path, Err: err}
	}

	data, err := marshalStable([]domain.Task{})
	if err != nil {
		return &store.StorageError{Op: "init", Path: s.path, Err: err}
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return &store.StorageError{Op: "init", Path: s.path, Err: err}
	}
	return nil
}

func (s *TaskStore) Load() ([]domain.Task, error) {
	if err := s.EnsureInitialized(); err != nil {
		return nil, err
	}

	var tasks []domain.Task
	if err := readJSONStrict(s.path, &tasks); err != nil {
		return nil, &store.StorageError{Op: "load", Path: s.path, Err: err}
	}
	if tasks == nil {
		// a literal null on disk
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *TaskStore) Save(tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}

	data, err := marshalStable(tasks)
	if err != nil {
		return &store.StorageError{Op: "marshal", Path: s.path, Err: err}
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return &store.StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// marshalStable writes indented JSON with a trailing newline. HTML characters
// are left unescaped so names like "a<b" stay readable in the file.
func marshalStable(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readJSONStrict(path string, dst any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("invalid JSON: empty file")
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("invalid JSON: trailing content")
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
