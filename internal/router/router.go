package router

import (
	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Health(c *ginext.Context)

	ListServices(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	GetCalendar(c *ginext.Context)
	Book(c *ginext.Context)

	CreateDraft(c *ginext.Context)
	GetDraft(c *ginext.Context)
	SelectDraftDate(c *ginext.Context)
	SelectDraftTime(c *ginext.Context)
	SelectDraftService(c *ginext.Context)
	SubmitDraft(c *ginext.Context)

	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	Session(c *ginext.Context)

	ListTasks(c *ginext.Context)
	AddTask(c *ginext.Context)
	ToggleTask(c *ginext.Context)
	DeleteTask(c *ginext.Context)
	TaskStats(c *ginext.Context)

	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	GetStats(c *ginext.Context)

	CreateService(c *ginext.Context)
	UpdateService(c *ginext.Context)
	DeleteService(c *ginext.Context)
	ListUsers(c *ginext.Context)
	Export(c *ginext.Context)
	Import(c *ginext.Context)
	Reset(c *ginext.Context)
}

func InitRouter(mode string, h Handler, tokens middleware.TokenParser, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)

		// Booking page
		api.GET("/services", h.ListServices)
		api.GET("/availability/:date", h.GetAvailability)
		api.GET("/calendar", h.GetCalendar)
		api.POST("/book", h.Book)

		// Drafts
		api.POST("/drafts", h.CreateDraft)
		api.GET("/drafts/:id", h.GetDraft)
		api.PUT("/drafts/:id/date", h.SelectDraftDate)
		api.PUT("/drafts/:id/time", h.SelectDraftTime)
		api.PUT("/drafts/:id/service", h.SelectDraftService)
		api.POST("/drafts/:id/submit", h.SubmitDraft)

		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/session", h.Session)

		// Tasks
		api.GET("/tasks", h.ListTasks)
		api.POST("/tasks", h.AddTask)
		api.GET("/tasks/stats", h.TaskStats)
		api.PATCH("/tasks/:id/toggle", h.ToggleTask)
		api.DELETE("/tasks/:id", h.DeleteTask)
	}

	admin := api.Group("",
		middleware.JWTAuth(tokens),
		middleware.RequireRole(string(domain.RoleAdmin)),
	)
	{
		// Dashboard
		admin.GET("/bookings", h.ListBookings)
		admin.POST("/bookings", h.CreateBooking)
		admin.GET("/bookings/:id", h.GetBooking)
		admin.PATCH("/bookings/:id", h.UpdateBooking)
		admin.DELETE("/bookings/:id", h.DeleteBooking)
		admin.GET("/stats", h.GetStats)

		// Catalog
		admin.POST("/services", h.CreateService)
		admin.PATCH("/services/:id", h.UpdateService)
		admin.DELETE("/services/:id", h.DeleteService)

		// Users and data
		admin.GET("/users", h.ListUsers)
		admin.GET("/export", h.Export)
		admin.POST("/import", h.Import)
		admin.POST("/reset", h.Reset)
	}

	router.GET("/health", h.Health)

	return router
}
