package handler

import (
	"net/http"

	"github.com/stpnv0/SlotBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListTasks(c *ginext.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, dto.ToTaskResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddTask(c *ginext.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	t, err := h.tasks.Add(c.Request.Context(), req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(t))
}

func (h *Handler) ToggleTask(c *ginext.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	t, err := h.tasks.Toggle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(t))
}

func (h *Handler) DeleteTask(c *ginext.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) TaskStats(c *ginext.Context) {
	st, err := h.tasks.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, st)
}
