package domain

import (
	"time"

	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// Slot is a derived fixed-size time window within a room's operating hours
// on a specific date. Slots are pure computation over Room and Booking and
// are never persisted.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	BookingID *int64 // set when the slot is covered by a scheduled booking
}

// DaySchedule is the ordered slot sequence for one room on one date.
type DaySchedule struct {
	Date  time.Time
	Slots []Slot
}

// WeeklySchedule is a rolling 7-day view for one room, day offsets 0..6
// from "today" in the service timezone.
type WeeklySchedule struct {
	RoomID     int64
	RoomNumber string
	Days       []DaySchedule
}

// SchedulePolicy is the campus-wide booking policy: slot granularity, the
// daily bookable window, how far ahead bookings may be made and the calendar
// timezone. Built once from configuration and threaded through every
// component so nothing reads ambient wall-clock rules.
type SchedulePolicy struct {
	SlotMinutes int
	WindowOpen  types.TimeString
	WindowClose types.TimeString
	HorizonDays int
	Location    *time.Location
}

// Today returns the date portion of now in the policy timezone.
func (p SchedulePolicy) Today(now time.Time) time.Time {
	local := now.In(p.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, p.Location)
}

// HorizonEnd returns the first date beyond the booking horizon
// (exclusive boundary: today + HorizonDays is no longer bookable).
func (p SchedulePolicy) HorizonEnd(now time.Time) time.Time {
	return p.Today(now).AddDate(0, 0, p.HorizonDays)
}
