// Package service defines the presentation-agnostic contract for the task list.
package service

// Service defines the operations a presentation surface may perform.
// Commands and web handlers never touch the task collection directly.
// Every operation is total: unknown ids and blank text are no-ops.
type Service interface {
	// SetInput replaces the pending-input text.
	SetInput(text string)

	// Input returns the pending-input text.
	Input() string

	// AddTask appends a task with the trimmed text and clears the pending input.
	// Blank text is ignored.
	AddTask(rawText string)

	// Submit adds the pending input as a task.
	Submit()

	// ToggleTask flips the completion flag of the task with the given id.
	ToggleTask(id int)

	// DeleteTask removes the task with the given id, keeping the order of the rest.
	DeleteTask(id int)

	// View returns a snapshot of the tasks and pending input.
	View() View
}
