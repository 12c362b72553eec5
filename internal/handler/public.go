package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/SlotBooker/internal/handler/dto"
	"github.com/stpnv0/SlotBooker/internal/service"
	"github.com/wb-go/wbf/ginext"
)

const monthLayout = "2006-01"

func (h *Handler) ListServices(c *ginext.Context) {
	services, err := h.catalog.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, dto.ToServiceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	date := c.Param("date")

	reason, err := h.availability.BlockReason(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	slots, err := h.availability.Slots(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(date, reason, slots))
}

func (h *Handler) GetCalendar(c *ginext.Context) {
	m, err := time.Parse(monthLayout, c.Query("month"))
	if err != nil {
		badRequest(c, "invalid month, expected YYYY-MM")
		return
	}

	days, err := h.availability.Month(c.Request.Context(), m.Year(), m.Month())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCalendarResponse(m.Format(monthLayout), days))
}

// Book runs the whole selection in one request.
func (h *Handler) Book(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.drafts.Book(c.Request.Context(), service.BookRequest{
		Date:     req.Date,
		Time:     req.Time,
		Service:  req.Service,
		Customer: req.Customer.ToDomain(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(b))
}
