package storage

// MemoryStore is an in-memory Provider for tests.
type MemoryStore struct {
	values map[string]string

	// FailReads / FailWrites force errors, for exercising the repository's
	// fallback and propagation paths.
	FailReads  error
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	if s.FailReads != nil {
		return "", false, s.FailReads
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
