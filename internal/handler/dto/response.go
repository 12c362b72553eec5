package dto

import (
	"strings"
	"time"

	"github.com/stpnv0/SlotBooker/internal/availability"
	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/service"
)

type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type BookingResponse struct {
	ID          int64            `json:"id"`
	Date        string           `json:"date"`
	Time        string           `json:"time"`
	TimeLabel   string           `json:"timeLabel"`
	Service     string           `json:"service"`
	ServiceName string           `json:"serviceName"`
	Price       float64          `json:"price"`
	Customer    CustomerResponse `json:"customer"`
	Status      string           `json:"status"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt,omitempty"`
}

type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Icon     string  `json:"icon"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date    string         `json:"date"`
	Blocked bool           `json:"blocked"`
	Reason  string         `json:"reason,omitempty"`
	Slots   []SlotResponse `json:"slots"`
}

type CalendarDayResponse struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	Today       bool   `json:"today"`
	Past        bool   `json:"past"`
	RestDay     bool   `json:"restDay"`
	FullyBooked bool   `json:"fullyBooked"`
	Selectable  bool   `json:"selectable"`
	Bookings    int    `json:"bookings"`
}

type CalendarResponse struct {
	Month string                `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

type DraftResponse struct {
	ID        string           `json:"id"`
	State     string           `json:"state"`
	Date      string           `json:"date,omitempty"`
	Time      string           `json:"time,omitempty"`
	Service   *ServiceResponse `json:"service,omitempty"`
	UpdatedAt string           `json:"updatedAt"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type TaskResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func ToValidationErrorResponse(ve *domain.ValidationErrors) ErrorResponse {
	fields := make(map[string]string, len(ve.Fields))
	for _, f := range ve.Fields {
		// keep the first message per field
		if _, ok := fields[f.Field]; !ok {
			fields[f.Field] = f.Message
		}
	}
	return ErrorResponse{Error: domain.ErrValidation.Error(), Fields: fields}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		Date:        b.Date,
		Time:        b.Time,
		TimeLabel:   domain.SlotLabel(b.Time),
		Service:     b.Service,
		ServiceName: b.ServiceName,
		Price:       b.Price,
		Customer: CustomerResponse{
			Name:  b.Customer.Name,
			Phone: b.Customer.Phone,
			Email: b.Customer.Email,
			Notes: b.Customer.Notes,
		},
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.UpdatedAt != nil {
		resp.UpdatedAt = b.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:       s.ID,
		Name:     s.Name,
		Price:    s.Price,
		Duration: s.Duration,
		Icon:     s.Icon,
	}
}

// ToAvailabilityResponse marks every slot of a blocked day unavailable.
func ToAvailabilityResponse(date string, reason availability.BlockReason, slots []availability.SlotState) AvailabilityResponse {
	blocked := reason != availability.ReasonNone

	resp := AvailabilityResponse{
		Date:    date,
		Blocked: blocked,
		Reason:  string(reason),
		Slots:   make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			Time:      s.Time,
			Label:     s.Label,
			Available: s.Available && !blocked,
		})
	}
	return resp
}

func ToCalendarResponse(month string, days []availability.DayState) CalendarResponse {
	resp := CalendarResponse{Month: month, Days: make([]CalendarDayResponse, 0, len(days))}
	for _, d := range days {
		resp.Days = append(resp.Days, CalendarDayResponse{
			Date:        d.Date,
			Weekday:     strings.ToLower(d.Weekday.String()),
			Today:       d.Today,
			Past:        d.Past,
			RestDay:     d.RestDay,
			FullyBooked: d.FullyBooked,
			Selectable:  d.Selectable,
			Bookings:    d.Bookings,
		})
	}
	return resp
}

func ToDraftResponse(d *service.Draft) DraftResponse {
	resp := DraftResponse{
		ID:        d.ID,
		State:     d.State.String(),
		Date:      d.Selection.Date,
		Time:      d.Selection.Time,
		UpdatedAt: d.TouchedAt.Format(time.RFC3339),
	}
	if d.Selection.Service != nil {
		svc := ToServiceResponse(d.Selection.Service)
		resp.Service = &svc
	}
	return resp
}

func ToUserResponse(u domain.SessionUser) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToLoginResponse(l *service.Login) LoginResponse {
	return LoginResponse{
		Token:     l.Token,
		ExpiresAt: l.ExpiresAt.Format(time.RFC3339),
		User:      ToUserResponse(l.User),
	}
}

func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{ID: t.ID, Text: t.Text, Completed: t.Completed}
}
