package flights

import (
	"fmt"
	"strings"
	"time"
)

// BuildFlightLink assembles an aviasales search deep link for the route. Date
// segments use the DDMM form; unparseable dates are simply omitted.
func BuildFlightLink(origin, departAt, destination, returnAt, marker, currency string) string {
	link := "https://www.aviasales.com/search/" + origin + dayMonth(departAt) + destination + dayMonth(returnAt)
	return link + fmt.Sprintf("?marker=%s&currency=%s", marker, currency)
}

// dayMonth formats an ISO date or timestamp as DDMM, or "" when unparseable.
func dayMonth(value string) string {
	if value == "" {
		return ""
	}
	value = strings.TrimSuffix(value, "Z")
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		t, err = time.Parse(dateLayout, value)
	}
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%02d%02d", t.Day(), int(t.Month()))
}
