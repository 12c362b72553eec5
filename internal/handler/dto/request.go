package dto

import (
	"github.com/stpnv0/SlotBooker/internal/domain"
)

type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (r CustomerRequest) ToDomain() domain.Customer {
	return domain.Customer{Name: r.Name, Phone: r.Phone, Email: r.Email, Notes: r.Notes}
}

// BookRequest is left unbound on purpose: the booking service reports
// malformed fields together.
type BookRequest struct {
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Service  string          `json:"service"`
	Customer CustomerRequest `json:"customer"`
}

type DraftDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type DraftTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

type DraftServiceRequest struct {
	Service string `json:"service" binding:"required"`
}

type CreateBookingRequest struct {
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Service  string          `json:"service"`
	Customer CustomerRequest `json:"customer"`
}

func (r CreateBookingRequest) ToDomain() domain.BookingInput {
	return domain.BookingInput{
		Date:     r.Date,
		Time:     r.Time,
		Service:  r.Service,
		Customer: r.Customer.ToDomain(),
	}
}

type UpdateBookingRequest struct {
	Date     *string          `json:"date"`
	Time     *string          `json:"time"`
	Service  *string          `json:"service"`
	Status   *string          `json:"status"`
	Customer *CustomerRequest `json:"customer"`
}

func (r UpdateBookingRequest) ToDomain() domain.BookingPatch {
	p := domain.BookingPatch{
		Date:    r.Date,
		Time:    r.Time,
		Service: r.Service,
	}
	if r.Status != nil {
		st := domain.BookingStatus(*r.Status)
		p.Status = &st
	}
	if r.Customer != nil {
		c := r.Customer.ToDomain()
		p.Customer = &c
	}
	return p
}

type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r RegisterRequest) ToDomain() domain.RegisterInput {
	return domain.RegisterInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateServiceRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Icon     string  `json:"icon"`
}

func (r CreateServiceRequest) ToDomain() domain.ServiceInput {
	return domain.ServiceInput{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Duration: r.Duration,
		Icon:     r.Icon,
	}
}

type UpdateServiceRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Duration *int     `json:"duration"`
	Icon     *string  `json:"icon"`
}

func (r UpdateServiceRequest) ToDomain() domain.ServicePatch {
	return domain.ServicePatch{
		Name:     r.Name,
		Price:    r.Price,
		Duration: r.Duration,
		Icon:     r.Icon,
	}
}

type TaskRequest struct {
	Text string `json:"text"`
}
