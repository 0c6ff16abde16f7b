package syllabus

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/akeil/syllabus/internal/errors"
	"github.com/akeil/syllabus/internal/fs"
	"github.com/akeil/syllabus/internal/logging"
)

const draftExt = ".json"

type fsStorage struct {
	dir string
	reg *Registry
	mx  sync.RWMutex
}

// NewFilesystemStorage returns a Storage that keeps each draft as a JSON
// file in the given directory. Loaded drafts start from the defaults of reg.
func NewFilesystemStorage(dir string, reg *Registry) Storage {
	return &fsStorage{dir: dir, reg: reg}
}

func (f *fsStorage) Save(name string, s *FormState) error {
	logging.Debug("Storage save %q", name)
	path, err := f.path(name)
	if err != nil {
		return err
	}

	data, err := Serialize(s)
	if err != nil {
		return err
	}

	f.mx.Lock()
	defer f.mx.Unlock()

	err = fs.WriteFile(path, data)
	if err != nil {
		logging.Warning("Failed to save draft %q: %v", name, err)
		return errors.Wrap(err, "save draft %q", name)
	}
	return nil
}

func (f *fsStorage) Load(name string) (*FormState, error) {
	logging.Debug("Storage load %q", name)
	path, err := f.path(name)
	if err != nil {
		return nil, err
	}

	f.mx.RLock()
	defer f.mx.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("no draft %q", name)
		}
		return nil, err
	}

	return Load(f.reg, data)
}

func (f *fsStorage) List() ([]string, error) {
	f.mx.RLock()
	defer f.mx.RUnlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || strings.HasPrefix(n, ".") || filepath.Ext(n) != draftExt {
			continue
		}
		names = append(names, strings.TrimSuffix(n, draftExt))
	}
	sort.Strings(names)
	return names, nil
}

func (f *fsStorage) Delete(name string) error {
	logging.Debug("Storage delete %q", name)
	path, err := f.path(name)
	if err != nil {
		return err
	}

	f.mx.Lock()
	defer f.mx.Unlock()

	err = os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return errors.NewNotFound("no draft %q", name)
	}
	return err
}

// path maps a draft name to its file. Names may carry the .json extension
// but must not point outside the storage directory.
func (f *fsStorage) path(name string) (string, error) {
	name = strings.TrimSuffix(name, draftExt)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", errors.NewValidationError("invalid draft name %q", name)
	}
	return filepath.Join(f.dir, name+draftExt), nil
}
