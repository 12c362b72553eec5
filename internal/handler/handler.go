package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/SlotBooker/internal/availability"
	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/handler/dto"
	"github.com/stpnv0/SlotBooker/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type AvailabilitySvc interface {
	BlockReason(ctx context.Context, date string) (availability.BlockReason, error)
	Slots(ctx context.Context, date string) ([]availability.SlotState, error)
	Month(ctx context.Context, year int, month time.Month) ([]availability.DayState, error)
}

type BookingSvc interface {
	List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error)
	Get(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, in domain.BookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
	Statistics(ctx context.Context) (domain.Statistics, error)
}

type DraftSvc interface {
	Create(ctx context.Context) *service.Draft
	Get(ctx context.Context, id string) (*service.Draft, error)
	SelectDate(ctx context.Context, id, date string) (*service.Draft, error)
	SelectTime(ctx context.Context, id, slot string) (*service.Draft, error)
	SelectService(ctx context.Context, id, serviceID string) (*service.Draft, error)
	Submit(ctx context.Context, id string, c domain.Customer) (*domain.Booking, error)
	Book(ctx context.Context, req service.BookRequest) (*domain.Booking, error)
}

type CatalogSvc interface {
	List(ctx context.Context) ([]*domain.Service, error)
	Create(ctx context.Context, in domain.ServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

type AuthSvc interface {
	Register(ctx context.Context, in domain.RegisterInput) (domain.SessionUser, error)
	Login(ctx context.Context, email, password string) (*service.Login, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*domain.SessionUser, error)
	Users(ctx context.Context) ([]domain.SessionUser, error)
}

type TransferSvc interface {
	Export(ctx context.Context) (*domain.ExportDocument, error)
	Import(ctx context.Context, data []byte) error
	Reset(ctx context.Context) error
}

type TaskSvc interface {
	List(ctx context.Context) ([]*domain.Task, error)
	Add(ctx context.Context, text string) (*domain.Task, error)
	Toggle(ctx context.Context, id int64) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (domain.TaskStats, error)
}

type Handler struct {
	availability AvailabilitySvc
	bookings     BookingSvc
	drafts       DraftSvc
	catalog      CatalogSvc
	auth         AuthSvc
	transfer     TransferSvc
	tasks        TaskSvc
}

func NewHandler(
	availability AvailabilitySvc,
	bookings BookingSvc,
	drafts DraftSvc,
	catalog CatalogSvc,
	auth AuthSvc,
	transfer TransferSvc,
	tasks TaskSvc,
) *Handler {
	return &Handler{
		availability: availability,
		bookings:     bookings,
		drafts:       drafts,
		catalog:      catalog,
		auth:         auth,
		transfer:     transfer,
		tasks:        tasks,
	}
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var ve *domain.ValidationErrors
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, dto.ToValidationErrorResponse(ve))

	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrDateUnavailable),
		errors.Is(err, domain.ErrIllegalTransition),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoDateSelected):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNoSession):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func badRequest(c *ginext.Context, msg string) {
	c.Set("error", msg)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

func int64Param(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
