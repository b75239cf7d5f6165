package storage

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// KeyValue is durable byte storage with synchronous reads and writes. The
// last write for a key wins.
type KeyValue interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileStore keeps every slot in a single JSON file, read and rewritten in
// full on each operation. A missing or unreadable file behaves as an empty
// store so a corrupt file can always be written over.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get(key string) ([]byte, bool, error) {
	slots, err := f.read()
	if err != nil {
		return nil, false, err
	}
	value, ok := slots[key]
	return value, ok, nil
}

func (f *FileStore) Set(key string, value []byte) error {
	slots, err := f.read()
	if err != nil {
		return err
	}
	slots[key] = value
	return f.write(slots)
}

func (f *FileStore) Delete(key string) error {
	slots, err := f.read()
	if err != nil {
		return err
	}
	delete(slots, key)
	return f.write(slots)
}

func (f *FileStore) read() (map[string][]byte, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string][]byte{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read storage file")
	}

	slots := map[string][]byte{}
	if err := json.Unmarshal(raw, &slots); err != nil {
		log.WithError(err).WithField("path", f.path).Warn("storage file is unreadable, starting empty")
		return map[string][]byte{}, nil
	}
	return slots, nil
}

func (f *FileStore) write(slots map[string][]byte) error {
	raw, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode storage file")
	}
	return errors.Wrap(os.WriteFile(f.path, raw, 0666), "write storage file")
}
