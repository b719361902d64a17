package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/idilsaglam/todolist/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI. Every save is a full rewrite.

// DefaultFileName is the store file used when no other path is configured.
const DefaultFileName = "todo.json"

// ErrInvalidDocument reports content that does not parse as a task list.
var ErrInvalidDocument = errors.New("invalid store document")

// Backend reads and writes the raw store document.
// Read must return an error matching fs.ErrNotExist when there is no document yet.
type Backend interface {
	Read() ([]byte, error)
	Write(b []byte) error
}

// FileBackend keeps the document in a file on local disk.
type FileBackend struct {
	Path string
}

func NewFileBackend(path string) *FileBackend {
	if path == "" {
		path = DefaultFileName
	}
	return &FileBackend{Path: path}
}

func (f *FileBackend) Read() ([]byte, error) {
	return os.ReadFile(f.Path)
}

func (f *FileBackend) Write(b []byte) error {
	if err := os.WriteFile(f.Path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// MemoryBackend keeps the document in memory. Used by tests.
type MemoryBackend struct {
	data   []byte
	exists bool
	writes int
}

// NewMemoryBackend returns a backend holding initial; nil means no document.
func NewMemoryBackend(initial []byte) *MemoryBackend {
	m := &MemoryBackend{}
	if initial != nil {
		m.data = append([]byte(nil), initial...)
		m.exists = true
	}
	return m
}

func (m *MemoryBackend) Read() ([]byte, error) {
	if !m.exists {
		return nil, &fs.PathError{Op: "open", Path: "memory", Err: fs.ErrNotExist}
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryBackend) Write(b []byte) error {
	m.data = append([]byte(nil), b...)
	m.exists = true
	m.writes++
	return nil
}

// Bytes returns a copy of the current document.
func (m *MemoryBackend) Bytes() []byte { return append([]byte(nil), m.data...) }

// Writes reports how many times the document was rewritten.
func (m *MemoryBackend) Writes() int { return m.writes }

// Load reads and decodes the document. A missing document is an empty list.
// Content that is not a valid task list yields an empty list together with an
// error wrapping ErrInvalidDocument, so callers can decide to recover.
func Load(b Backend) ([]model.Task, error) {
	raw, err := b.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	tasks, err := Decode(raw)
	if err != nil {
		return []model.Task{}, err
	}
	return tasks, nil
}

// Save encodes tasks and overwrites the document.
func Save(b Backend, tasks []model.Task) error {
	raw, err := Encode(tasks)
	if err != nil {
		return err
	}
	return b.Write(raw)
}

// Decode parses a store document: a JSON array of {description, completed} objects.
func Decode(raw []byte) ([]model.Task, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidDocument)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return tasks, nil
}

// Encode renders tasks as pretty-printed JSON. A nil slice is written as [].
func Encode(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}
