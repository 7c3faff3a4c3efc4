// Package tasks holds the in-memory task list and its state transitions.
package tasks

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tasklist/internal/service"
)

// Manager owns an ordered task collection and the pending-input text.
// It is not safe for concurrent use; callers deliver one event at a time.
type Manager struct {
	tasks     []service.Task
	input     string
	lastID    int
	sessionID string
	log       *zap.SugaredLogger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for task events.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a Manager with an empty collection and empty input.
func New(opts ...Option) *Manager {
	m := &Manager{
		sessionID: uuid.NewString(),
		log:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With("session", m.sessionID)
	return m
}

// SessionID returns the identifier of this manager instance.
func (m *Manager) SessionID() string {
	return m.sessionID
}

// SetInput implements service.Service.
func (m *Manager) SetInput(text string) {
	m.input = text
}

// Input implements service.Service.
func (m *Manager) Input() string {
	return m.input
}

// AddTask implements service.Service.
func (m *Manager) AddTask(rawText string) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		m.log.Debugw("task_add_ignored", "raw_len", len(rawText))
		return
	}

	m.lastID++
	m.tasks = append(m.tasks, service.Task{ID: m.lastID, Text: text})
	m.input = ""
	m.log.Debugw("task_added", "id", m.lastID, "count", len(m.tasks))
}

// Submit implements service.Service.
func (m *Manager) Submit() {
	m.AddTask(m.input)
}

// ToggleTask implements service.Service.
func (m *Manager) ToggleTask(id int) {
	i := m.index(id)
	if i < 0 {
		m.log.Debugw("task_not_found", "op", "toggle", "id", id)
		return
	}
	m.tasks[i].Completed = !m.tasks[i].Completed
	m.log.Debugw("task_toggled", "id", id, "completed", m.tasks[i].Completed)
}

// DeleteTask implements service.Service.
func (m *Manager) DeleteTask(id int) {
	i := m.index(id)
	if i < 0 {
		m.log.Debugw("task_not_found", "op", "delete", "id", id)
		return
	}
	m.tasks = slices.Delete(m.tasks, i, i+1)
	m.log.Debugw("task_deleted", "id", id, "count", len(m.tasks))
}

// Tasks returns a copy of the collection in insertion order.
func (m *Manager) Tasks() []service.Task {
	result := make([]service.Task, len(m.tasks))
	copy(result, m.tasks)
	return result
}

// Len returns the number of held tasks.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// View implements service.Service.
func (m *Manager) View() service.View {
	return service.View{Tasks: m.Tasks(), Input: m.input}
}

func (m *Manager) index(id int) int {
	return slices.IndexFunc(m.tasks, func(t service.Task) bool { return t.ID == id })
}

var _ service.Service = (*Manager)(nil)
