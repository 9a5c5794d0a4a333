package datastore

import (
	"errors"
)

// ErrNotFound reports that a queried xpath holds no value. It is not a
// failure: the reconciliation merge policy treats it as "keep the current
// in-memory value".
var ErrNotFound = errors.New("datastore: item not found")

// Session is the path-addressed get/set boundary to the datastore. Get
// returns ErrNotFound for absent items; any other error is a real query
// failure.
type Session interface {
	Get(xpath string) (Value, error)
	Set(xpath string, value Value) error
	Commit() error
}

// MemSession is an in-memory Session. It backs the standalone test-mode
// entry point and the package tests; a production build would wire a real
// datastore client behind the same interface.
type MemSession struct {
	values  map[string]Value
	commits int
}

func NewMemSession() *MemSession {
	return &MemSession{values: make(map[string]Value)}
}

func (s *MemSession) Get(xpath string) (Value, error) {
	if value, ok := s.values[xpath]; ok {
		return value, nil
	}
	return Value{}, ErrNotFound
}

func (s *MemSession) Set(xpath string, value Value) error {
	s.values[xpath] = value
	return nil
}

func (s *MemSession) Commit() error {
	s.commits++
	return nil
}

// Commits returns how many times Commit was called.
func (s *MemSession) Commits() int {
	return s.commits
}
