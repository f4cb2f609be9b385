package validators

import (
	"regexp"
	"time"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ParseDate interpreta una fecha "2006-01-02" como día calendario.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func IsHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}
