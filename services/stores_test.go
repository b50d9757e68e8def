package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"conspiracy/models"
	"conspiracy/repository"
)

// memStore backs the service tests with an in-memory implementation of the
// store interfaces. It enforces the same composite-key uniqueness and
// credit atomicity as the database schema, under one mutex, so the
// concurrency properties of the processor can be exercised for real.
type memStore struct {
	mu        sync.Mutex
	flags     []models.Flag
	correct   map[string]string
	incorrect map[string]models.IncorrectSubmission
	points    map[int64]int

	failLookup bool
	failCredit bool
}

func newMemStore() *memStore {
	return &memStore{
		correct:   make(map[string]string),
		incorrect: make(map[string]models.IncorrectSubmission),
		points:    make(map[int64]int),
	}
}

func key(userID int64, code string) string {
	return fmt.Sprintf("%d|%s", userID, code)
}

func (m *memStore) addFlag(code string, points int, name string) {
	m.flags = append(m.flags, models.Flag{ID: uint(len(m.flags) + 1), Code: code, Points: points, ChallengeName: name})
}

func (m *memStore) Lookup(_ context.Context, code string) (*models.Flag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLookup {
		return nil, errors.New("storage down")
	}
	for _, f := range m.flags {
		if f.Code == code {
			flag := f
			return &flag, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListAll(_ context.Context) ([]models.Flag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Flag(nil), m.flags...), nil
}

func (m *memStore) HasCorrect(_ context.Context, userID int64, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.correct[key(userID, code)]
	return ok, nil
}

func (m *memStore) Credit(_ context.Context, userID int64, code string, points int, timestamp string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCredit {
		return errors.New("storage down")
	}
	k := key(userID, code)
	if _, ok := m.correct[k]; ok {
		return repository.ErrAlreadyCredited
	}
	m.correct[k] = timestamp
	m.points[userID] += points
	return nil
}

func (m *memStore) RecordIncorrect(_ context.Context, userID int64, code, reason, timestamp string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(userID, code)
	if _, ok := m.incorrect[k]; ok {
		return nil
	}
	m.incorrect[k] = models.IncorrectSubmission{UserID: userID, FlagCode: code, Reason: reason, Timestamp: timestamp}
	return nil
}

func (m *memStore) SolvedFlags(_ context.Context, userID int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var codes []string
	for _, f := range m.flags {
		if _, ok := m.correct[key(userID, f.Code)]; ok {
			codes = append(codes, f.Code)
		}
	}
	return codes, nil
}

func (m *memStore) GetPoints(_ context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.points[userID], nil
}

func (m *memStore) TopN(_ context.Context, n int) ([]models.UserPoints, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]models.UserPoints, 0, len(m.points))
	for id, pts := range m.points {
		entries = append(entries, models.UserPoints{UserID: id, Points: pts})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}
