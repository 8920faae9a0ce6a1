package models

import "time"

// ColorScheme is the value of the site theme switch.
type ColorScheme string

const (
	ColorSchemeAutomatic ColorScheme = "light dark"
	ColorSchemeLight     ColorScheme = "light"
	ColorSchemeDark      ColorScheme = "dark"
)

// Valid reports whether s is one of the known schemes.
func (s ColorScheme) Valid() bool {
	switch s {
	case ColorSchemeAutomatic, ColorSchemeLight, ColorSchemeDark:
		return true
	}
	return false
}

// Preference is the stored theme choice of one client. ID and the
// timestamps are assigned by the store.
type Preference struct {
	ID          int         `json:"id"`
	ClientID    string      `json:"client_id"`
	ColorScheme ColorScheme `json:"color_scheme"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
