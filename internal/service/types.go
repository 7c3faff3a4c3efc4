// Package service defines the presentation-agnostic contract for the task list.
package service

import "strconv"

// Task represents a single to-do item.
type Task struct {
	ID        int    `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// View is a read-only snapshot of the task list for rendering.
type View struct {
	Tasks []Task `json:"tasks" yaml:"tasks"`
	Input string `json:"input" yaml:"input"`
}

// CheckboxID returns the stable identifier of the task's completion control.
func (t Task) CheckboxID() string {
	return CheckboxPrefix + strconv.Itoa(t.ID)
}

// DeleteButtonID returns the stable identifier of the task's delete control.
func (t Task) DeleteButtonID() string {
	return DeleteButtonPrefix + strconv.Itoa(t.ID)
}

const (
	// CheckboxPrefix prefixes the completion control identifier of a row.
	CheckboxPrefix = "task-checkbox-"

	// DeleteButtonPrefix prefixes the delete control identifier of a row.
	DeleteButtonPrefix = "delete-button-"

	// InputID identifies the pending-input field.
	InputID = "new-task-input"

	// AddButtonID identifies the add trigger.
	AddButtonID = "add-task-button"
)
