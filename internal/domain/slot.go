package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slots is the fixed daily grid. 13:00 is the lunch break.
var Slots = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}

func IsSlot(t string) bool {
	for _, s := range Slots {
		if s == t {
			return true
		}
	}
	return false
}

// ParseDate accepts only the YYYY-MM-DD form used as the storage key of a day.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, s)
	}
	return d, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SlotLabel renders a slot in 12-hour form: "9:00 AM", "12:00 PM", "2:00 PM".
func SlotLabel(t string) string {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return t
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return t
	}
	switch {
	case hour == 0:
		return fmt.Sprintf("12:%s AM", mm)
	case hour < 12:
		return fmt.Sprintf("%d:%s AM", hour, mm)
	case hour == 12:
		return fmt.Sprintf("12:%s PM", mm)
	default:
		return fmt.Sprintf("%d:%s PM", hour-12, mm)
	}
}
