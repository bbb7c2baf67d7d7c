package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/session"
)

type mockStore struct {
	m        sync.Mutex
	sessions map[string]domain.State
	getErr   error
	saveErr  error
	gets     int
	gate     chan struct{} // when set, Get waits for it to close
}

func newMockStore() *mockStore {
	return &mockStore{sessions: make(map[string]domain.State)}
}

func (m *mockStore) Get(_ context.Context, sessionID string) (*domain.State, error) {
	m.m.Lock()
	m.gets++
	gate := m.gate
	m.m.Unlock()
	if gate != nil {
		<-gate
	}

	m.m.Lock()
	defer m.m.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	state, ok := m.sessions[sessionID]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return &state, nil
}

func (m *mockStore) Save(_ context.Context, state *domain.State) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[state.SessionID] = *state
	return nil
}

func (m *mockStore) Delete(_ context.Context, sessionID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *mockStore) Close() error { return nil }

func (m *mockStore) stored(sessionID string) (domain.State, bool) {
	m.m.Lock()
	defer m.m.Unlock()
	state, ok := m.sessions[sessionID]
	return state, ok
}

type mockSink struct {
	m   sync.Mutex
	got []domain.Notification
}

func (s *mockSink) Notify(_ context.Context, _ string, n domain.Notification) {
	s.m.Lock()
	defer s.m.Unlock()
	s.got = append(s.got, n)
}

func (s *mockSink) notifications() []domain.Notification {
	s.m.Lock()
	defer s.m.Unlock()
	return append([]domain.Notification(nil), s.got...)
}

type blockingSink struct {
	entered chan struct{}
	release chan struct{}
}

func (s *blockingSink) Notify(context.Context, string, domain.Notification) {
	select {
	case s.entered <- struct{}{}:
	default:
	}
	<-s.release
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
