package scheduling

import (
	"time"

	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
)

// Overlaps tests two half-open intervals [aStart, aEnd) and [bStart, bEnd).
// Touching boundaries (aEnd == bStart) do not overlap: back-to-back
// appointments are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ComputeEnd derives the appointment end from its start and effective
// duration in minutes.
func ComputeEnd(start time.Time, durationMinutes int) (time.Time, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	if !end.After(start) {
		return time.Time{}, httperr.ErrBusiness("invalid_window")
	}
	return end, nil
}
