package handler

import (
	"fmt"
	"net/http"

	"github.com/stpnv0/SlotBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Catalog

func (h *Handler) CreateService(c *ginext.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	svc, err := h.catalog.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceResponse(svc))
}

func (h *Handler) UpdateService(c *ginext.Context) {
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	svc, err := h.catalog.Update(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(svc))
}

func (h *Handler) DeleteService(c *ginext.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Users and data

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.auth.Users(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Export(c *ginext.Context) {
	doc, err := h.transfer.Export(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	name := fmt.Sprintf("bookings-export-%s.json", doc.ExportedAt.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.IndentedJSON(http.StatusOK, doc)
}

func (h *Handler) Import(c *ginext.Context) {
	data, err := c.GetRawData()
	if err != nil {
		badRequest(c, "cannot read request body")
		return
	}

	if err = h.transfer.Import(c.Request.Context(), data); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "imported"})
}

func (h *Handler) Reset(c *ginext.Context) {
	if err := h.transfer.Reset(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "reset"})
}
