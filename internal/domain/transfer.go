package domain

import "time"

type ExportDocument struct {
	Bookings   []*Booking `json:"bookings"`
	Users      []*User    `json:"users"`
	Services   []*Service `json:"services"`
	ExportedAt time.Time  `json:"exportedAt"`
}

// ImportedUser accepts records written by the browser build, which kept a
// plaintext password instead of a hash.
type ImportedUser struct {
	User
	Password string `json:"password,omitempty"`
}

// ImportDocument mirrors ExportDocument; a nil field means "leave that key alone".
type ImportDocument struct {
	Bookings *[]*Booking      `json:"bookings"`
	Users    *[]*ImportedUser `json:"users"`
	Services *[]*Service      `json:"services"`
}
