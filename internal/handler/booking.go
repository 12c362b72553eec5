package handler

import (
	"net/http"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Dashboard

func (h *Handler) ListBookings(c *ginext.Context) {
	f := domain.BookingFilter{
		Date:   c.Query("date"),
		Search: c.Query("search"),
	}
	if s := c.Query("status"); s != "" && s != "all" {
		status, err := domain.ParseBookingStatus(s)
		if err != nil {
			h.handleError(c, err)
			return
		}
		f.Status = status
	}

	bookings, err := h.bookings.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	b, err := h.bookings.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.bookings.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(b))
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.bookings.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.bookings.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetStats(c *ginext.Context) {
	st, err := h.bookings.Statistics(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, st)
}
