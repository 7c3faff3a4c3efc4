// Package testutil provides testing utilities.
package testutil

import (
	"fmt"
	"strings"
	"sync"

	"tasklist/internal/service"
)

// FakeService is an in-memory service.Service that records every call.
// It keeps its own simple state so command tests can assert on both the
// calls a command made and the resulting view.
type FakeService struct {
	mu     sync.Mutex
	tasks  []service.Task
	input  string
	nextID int

	// Calls holds one entry per mutating call, e.g. "add Buy milk", "toggle 3".
	Calls []string
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// Seed appends a task with the given text and completion state, bypassing Calls.
func (f *FakeService) Seed(text string, completed bool) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	task := service.Task{ID: f.nextID, Text: text, Completed: completed}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task
}

func (f *FakeService) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

// SetInput implements service.Service.
func (f *FakeService) SetInput(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("input %s", text)
	f.input = text
}

// Input implements service.Service.
func (f *FakeService) Input() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(rawText string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("add %s", rawText)
	f.add(rawText)
}

// Submit implements service.Service.
func (f *FakeService) Submit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("submit")
	f.add(f.input)
}

func (f *FakeService) add(rawText string) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return
	}
	f.tasks = append(f.tasks, service.Task{ID: f.nextID, Text: text})
	f.nextID++
	f.input = ""
}

// ToggleTask implements service.Service.
func (f *FakeService) ToggleTask(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("toggle %d", id)
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = !f.tasks[i].Completed
			return
		}
	}
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete %d", id)
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return
		}
	}
}

// View implements service.Service.
func (f *FakeService) View() service.View {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return service.View{Tasks: result, Input: f.input}
}
