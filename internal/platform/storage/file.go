package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gatewise/visitflow/pkg/sentinel"
)

// FileSnapshots keeps one <namespace>.json file per namespace under Dir.
// Writes go through a temp file and rename so a crash mid-write never leaves
// a torn snapshot behind.
type FileSnapshots struct {
	dir string
}

func NewFileSnapshots(dir string) (*FileSnapshots, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}
	return &FileSnapshots{dir: dir}, nil
}

func (f *FileSnapshots) Load(_ context.Context, namespace string) ([]byte, error) {
	path, err := f.path(namespace)
	if err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("no snapshot for %s: %w", namespace, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", namespace, err)
	}
	return blob, nil
}

func (f *FileSnapshots) Save(_ context.Context, namespace string, blob []byte) error {
	path, err := f.path(namespace)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, namespace+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save snapshot %s: %v: %w", namespace, err, sentinel.ErrUnavailable)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save snapshot %s: %v: %w", namespace, err, sentinel.ErrUnavailable)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save snapshot %s: %v: %w", namespace, err, sentinel.ErrUnavailable)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save snapshot %s: %v: %w", namespace, err, sentinel.ErrUnavailable)
	}
	return nil
}

func (f *FileSnapshots) Delete(_ context.Context, namespace string) error {
	path, err := f.path(namespace)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete snapshot %s: %w", namespace, err)
	}
	return nil
}

func (f *FileSnapshots) path(namespace string) (string, error) {
	if namespace == "" || strings.ContainsAny(namespace, `/\`) {
		return "", fmt.Errorf("bad namespace %q: %w", namespace, sentinel.ErrInvalidInput)
	}
	return filepath.Join(f.dir, namespace+".json"), nil
}
