package settings

// MemStore is an in-memory Store for tests and for running without a
// database.
type MemStore struct {
	values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores key=value.
func (s *MemStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}
