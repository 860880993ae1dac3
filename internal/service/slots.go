// File: internal/service/slots.go
package service

import (
	"fmt"
	"regexp"
	"strconv"
)

// Formats accepted for reservation dates and time slots.
var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slotRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Default operating hours applied when a court has no configured bounds.
const (
	defaultOpening = "08:00"
	defaultClosing = "22:00"
)

// GenerateSlots lists the bookable "HH:MM" labels for a court, one per whole
// hour from the opening hour up to but excluding the closing hour. Either
// bound being absent (or not an "HH:MM" label) falls back to the defaults,
// and opening >= closing yields no slots.
func GenerateSlots(opening, closing string) []string {
	open, ok := parseHour(opening)
	if !ok {
		open, _ = parseHour(defaultOpening)
	}
	close, ok := parseHour(closing)
	if !ok {
		close, _ = parseHour(defaultClosing)
	}
	if open >= close {
		return []string{}
	}

	slots := make([]string, 0, close-open)
	for h := open; h < close; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

func parseHour(label string) (int, bool) {
	if !slotRe.MatchString(label) {
		return 0, false
	}
	h, err := strconv.Atoi(label[:2])
	if err != nil || h > 23 {
		return 0, false
	}
	return h, true
}

// ValidDate reports whether s is a "YYYY-MM-DD" label.
func ValidDate(s string) bool { return dateRe.MatchString(s) }

// ValidSlot reports whether s is an "HH:MM" label.
func ValidSlot(s string) bool { return slotRe.MatchString(s) }
