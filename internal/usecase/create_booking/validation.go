package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// validateRequest checks field presence and formats. Business rules (dates,
// windows, alignment) are checked separately so each violation surfaces as
// its own error; validation short-circuits on the first failure since later
// rules are meaningless once an earlier one fails.
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

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.RequestToken != nil {
		if _, err := uuid.Parse(*req.RequestToken); err != nil {
			return fmt.Errorf("%w: requestToken must be a UUID", ErrInvalidInput)
		}
	}

	return nil
}

// validateDate enforces the rolling booking horizon: today (in the policy
// timezone) up to, but not including, today + horizon days.
func validateDate(date time.Time, now time.Time, policy domain.SchedulePolicy) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, policy.Location)

	today := policy.Today(now)
	if dateOnly.Before(today) {
		return ErrDateInPast
	}

	if !dateOnly.Before(policy.HorizonEnd(now)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateBeyondHorizon, policy.HorizonDays)
	}

	return nil
}

// validateTimeRange enforces the campus-wide booking window, ordering and
// slot alignment, in that order. End may land exactly on the window close;
// start may not.
func validateTimeRange(start, end types.TimeString, policy domain.SchedulePolicy) error {
	if start.IsBefore(policy.WindowOpen) || !start.IsBefore(policy.WindowClose) {
		return fmt.Errorf("%w: start %s is outside %s-%s", ErrOutsideBookingWindow, start, policy.WindowOpen, policy.WindowClose)
	}
	if end.IsBefore(policy.WindowOpen) || end.IsAfter(policy.WindowClose) {
		return fmt.Errorf("%w: end %s is outside %s-%s", ErrOutsideBookingWindow, end, policy.WindowOpen, policy.WindowClose)
	}

	if !end.IsAfter(start) {
		return ErrInvalidTimeRange
	}

	if err := validateAlignment(start, policy.SlotMinutes); err != nil {
		return err
	}
	if err := validateAlignment(end, policy.SlotMinutes); err != nil {
		return err
	}

	return nil
}

func validateAlignment(t types.TimeString, slotMinutes int) error {
	minute, err := t.MinuteOfDay()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if minute%slotMinutes != 0 {
		return fmt.Errorf("%w: %s is not a multiple of %d minutes", ErrNotSlotAligned, t, slotMinutes)
	}
	return nil
}

// validateRoomWindow checks the range against the room's own operating
// hours.
func validateRoomWindow(room *domain.Room, start, end types.TimeString) error {
	if start.IsBefore(room.OperatingOpen) || end.IsAfter(room.OperatingClose) {
		return fmt.Errorf("%w: room %s operates %s-%s", ErrOutsideOperatingHours,
			room.RoomNumber, room.OperatingOpen, room.OperatingClose)
	}
	return nil
}
