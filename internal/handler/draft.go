package handler

import (
	"net/http"

	"github.com/stpnv0/SlotBooker/internal/handler/dto"
	"github.com/stpnv0/SlotBooker/internal/service"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateDraft(c *ginext.Context) {
	d := h.drafts.Create(c.Request.Context())
	c.JSON(http.StatusCreated, dto.ToDraftResponse(d))
}

func (h *Handler) GetDraft(c *ginext.Context) {
	d, err := h.drafts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(d))
}

func (h *Handler) SelectDraftDate(c *ginext.Context) {
	var req dto.DraftDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	h.draftStep(c, func(id string) (*service.Draft, error) {
		return h.drafts.SelectDate(c.Request.Context(), id, req.Date)
	})
}

func (h *Handler) SelectDraftTime(c *ginext.Context) {
	var req dto.DraftTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	h.draftStep(c, func(id string) (*service.Draft, error) {
		return h.drafts.SelectTime(c.Request.Context(), id, req.Time)
	})
}

func (h *Handler) SelectDraftService(c *ginext.Context) {
	var req dto.DraftServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	h.draftStep(c, func(id string) (*service.Draft, error) {
		return h.drafts.SelectService(c.Request.Context(), id, req.Service)
	})
}

func (h *Handler) SubmitDraft(c *ginext.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.drafts.Submit(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(b))
}

func (h *Handler) draftStep(c *ginext.Context, fn func(id string) (*service.Draft, error)) {
	d, err := fn(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(d))
}
