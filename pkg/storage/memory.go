package storage

// MemoryStore is a KeyValue for tests and ephemeral runs.
type MemoryStore struct {
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: map[string][]byte{}}
}

func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	value, ok := m.slots[key]
	return value, ok, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.slots[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	delete(m.slots, key)
	return nil
}
