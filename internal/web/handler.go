// Package web serves the task list as an HTML page and a JSON view.
package web

import (
	"bytes"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"

	"tasklist/internal/logger"
	"tasklist/internal/service"
)

// Handler serves one task list. Requests are applied one at a time: each
// event runs to completion before the next one touches the list.
type Handler struct {
	mu      sync.Mutex
	svc     service.Service
	logger  *logger.Logger
	session string
}

// NewHandler creates a handler for svc. If svc exposes a SessionID, the page
// footer shows it.
func NewHandler(svc service.Service, logger *logger.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	if s, ok := svc.(interface{ SessionID() string }); ok {
		h.session = s.SessionID()
	}
	return h
}

// Index renders the widget.
func (h *Handler) Index(c *fiber.Ctx) error {
	h.mu.Lock()
	view := h.svc.View()
	h.mu.Unlock()

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(view, h.session)); err != nil {
		h.logger.Errorw("page_render_failed", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// View returns the current view as JSON.
func (h *Handler) View(c *fiber.Ctx) error {
	h.mu.Lock()
	view := h.svc.View()
	h.mu.Unlock()
	return c.JSON(view)
}

// AddTask binds the form's text field to the pending input and submits it.
func (h *Handler) AddTask(c *fiber.Ctx) error {
	text := c.FormValue("text")

	h.mu.Lock()
	h.svc.SetInput(text)
	h.svc.Submit()
	h.mu.Unlock()

	h.logger.Debugw("add_task_request", "len", len(text))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// ToggleTask flips the task named by the :id parameter.
func (h *Handler) ToggleTask(c *fiber.Ctx) error {
	return h.withID(c, "toggle", h.svc.ToggleTask)
}

// DeleteTask removes the task named by the :id parameter.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	return h.withID(c, "delete", h.svc.DeleteTask)
}

func (h *Handler) withID(c *fiber.Ctx, op string, apply func(id int)) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		h.logger.Warnw("task_request_invalid_id", "op", op, "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid task id: " + c.Params("id"),
		})
	}

	h.mu.Lock()
	apply(id)
	h.mu.Unlock()

	h.logger.Debugw("task_request", "op", op, "id", id)
	return c.Redirect("/", fiber.StatusSeeOther)
}
