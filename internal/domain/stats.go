package domain

type Statistics struct {
	TotalBookings     int     `json:"totalBookings"`
	TodayBookings     int     `json:"todayBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	CompletedBookings int     `json:"completedBookings"`
	TotalCustomers    int     `json:"totalCustomers"`
	TotalRevenue      float64 `json:"totalRevenue"`
	WeeklyBookings    int     `json:"weeklyBookings"`
	CompletionRate    int     `json:"completionRate"`
}
