package create_batch_booking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// validateRequest checks field presence and formats.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Purpose) == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}
	if len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.SlotTimes) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}
	if len(req.SlotTimes) > domain.MaxBatchSlots {
		return fmt.Errorf("%w: at most %d slots per request", ErrTooManySlots, domain.MaxBatchSlots)
	}

	for _, slot := range req.SlotTimes {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot time %q: %v", ErrInvalidInput, slot, err)
		}
	}

	if req.RequestToken != nil {
		if _, err := uuid.Parse(*req.RequestToken); err != nil {
			return fmt.Errorf("%w: requestToken must be a UUID", ErrInvalidInput)
		}
	}

	return nil
}

// normalizeSlots deduplicates and sorts slot starts chronologically.
// HH:MM strings sort lexicographically in time order.
func normalizeSlots(slots []types.TimeString) []types.TimeString {
	seen := make(map[types.TimeString]struct{}, len(slots))
	out := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// validateDate enforces the rolling booking horizon.
func validateDate(date time.Time, now time.Time, policy domain.SchedulePolicy) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, policy.Location)

	if dateOnly.Before(policy.Today(now)) {
		return ErrDateInPast
	}

	if !dateOnly.Before(policy.HorizonEnd(now)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateBeyondHorizon, policy.HorizonDays)
	}

	return nil
}

// validateSlot checks one slot start against the campus window, the slot
// grid and the room's operating hours, and returns the slot's end time.
func validateSlot(start types.TimeString, room *domain.Room, policy domain.SchedulePolicy) (types.TimeString, error) {
	minute, err := start.MinuteOfDay()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if minute%policy.SlotMinutes != 0 {
		return "", fmt.Errorf("%w: %s is not a multiple of %d minutes", ErrNotSlotAligned, start, policy.SlotMinutes)
	}

	end, err := start.AddMinutes(policy.SlotMinutes)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if start.IsBefore(policy.WindowOpen) || end.IsAfter(policy.WindowClose) {
		return "", fmt.Errorf("%w: slot %s-%s is outside %s-%s",
			ErrOutsideBookingWindow, start, end, policy.WindowOpen, policy.WindowClose)
	}

	if start.IsBefore(room.OperatingOpen) || end.IsAfter(room.OperatingClose) {
		return "", fmt.Errorf("%w: room %s operates %s-%s", ErrOutsideOperatingHours,
			room.RoomNumber, room.OperatingOpen, room.OperatingClose)
	}

	return end, nil
}
