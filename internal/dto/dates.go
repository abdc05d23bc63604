package dto

import (
	"strings"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Today returns the current date rendered as yyyy/MM/dd in the Persian
// calendar. Dates are stored and exchanged as plain strings of this shape;
// no calendar arithmetic happens anywhere in the API.
func Today() string {
	return ptime.Now().Format("yyyy/MM/dd")
}

// OrToday passes a date string through verbatim, substituting today's date
// when the value is blank. Validation of the shape happens upstream.
func OrToday(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return Today()
	}
	return raw
}
