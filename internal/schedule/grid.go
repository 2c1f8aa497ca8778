package schedule

import (
	"fmt"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// Grid derives the ordered slot start times for an operating window.
// Slots are generated from open (inclusive) with a fixed slotMinutes step;
// generation stops before any slot whose end would pass close, so the last
// slot always ends exactly at or before close. Pure function, no side
// effects: an 08:00-20:00 window with 30-minute slots yields 24 starts,
// 08:00 through 19:30.
func Grid(open, close types.TimeString, slotMinutes int) ([]types.TimeString, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidSlotSize, slotMinutes)
	}
	if err := open.Validate(); err != nil {
		return nil, fmt.Errorf("%w: open %q", ErrInvalidOperatingWindow, open)
	}
	if err := close.Validate(); err != nil {
		return nil, fmt.Errorf("%w: close %q", ErrInvalidOperatingWindow, close)
	}
	if !open.IsBefore(close) {
		return nil, fmt.Errorf("%w: open %s >= close %s", ErrInvalidOperatingWindow, open, close)
	}

	starts := make([]types.TimeString, 0)
	current := open

	for current.IsBefore(close) {
		slotEnd, err := current.AddMinutes(slotMinutes)
		if err != nil {
			// The remaining tail of the window cannot hold a whole slot.
			break
		}
		if slotEnd.IsAfter(close) {
			break
		}

		starts = append(starts, current)
		current = slotEnd
	}

	return starts, nil
}

// Annotate overlays scheduled bookings onto a slot grid, marking each slot
// available or occupied. A slot is occupied iff its half-open interval
// intersects a scheduled booking's [start, end); every slot inside a booked
// range carries that booking's id. Boundary-touching ranges do not intersect:
// a booking ending 11:30 leaves the 11:30 slot free.
func Annotate(starts []types.TimeString, slotMinutes int, bookings []*domain.Booking) []domain.Slot {
	slots := make([]domain.Slot, 0, len(starts))

	for _, start := range starts {
		end, err := start.AddMinutes(slotMinutes)
		if err != nil {
			continue
		}

		slot := domain.Slot{
			StartTime: start,
			EndTime:   end,
			Available: true,
		}

		for _, booking := range bookings {
			if !booking.IsScheduled() {
				continue
			}
			if booking.Overlaps(start, end) {
				slot.Available = false
				id := booking.ID
				slot.BookingID = &id
				break
			}
		}

		slots = append(slots, slot)
	}

	return slots
}

// RangeStatus checks a requested [start, end) range against an annotated
// grid. covered means the range lies exactly on slot boundaries of this grid
// (slot-contiguous); free means every slot inside the range is available.
// A range is bookable only when both hold.
func RangeStatus(slots []domain.Slot, start, end types.TimeString) (covered, free bool) {
	hasStart, hasEnd := false, false
	free = true

	for _, slot := range slots {
		if slot.StartTime == start {
			hasStart = true
		}
		if slot.EndTime == end {
			hasEnd = true
		}
		// Half-open intersection with the requested range.
		if slot.StartTime.IsBefore(end) && slot.EndTime.IsAfter(start) && !slot.Available {
			free = false
		}
	}

	return hasStart && hasEnd, free
}
