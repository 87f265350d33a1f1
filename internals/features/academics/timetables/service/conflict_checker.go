package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"coachku_backend/internals/apperr"
	model "coachku_backend/internals/features/academics/timetables/model"
	helper "coachku_backend/internals/helpers"
)

/* =========================================================
   Conflict checker

   The check and the subsequent insert are two separate storage
   operations with no mutual exclusion: two concurrent requests
   for the same batch/day can both pass the check and both
   commit. That best-effort behavior is deliberate; a unique or
   exclusion constraint at the storage layer is the opt-in
   upgrade path.
   ========================================================= */

// SlotRepository is the storage collaborator for timetable slots.
type SlotRepository interface {
	ListForBatchDay(ctx context.Context, batchID uuid.UUID, day string, excludeID *uuid.UUID) ([]model.TimetableSlotModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TimetableSlotModel, error)
	Insert(ctx context.Context, slot *model.TimetableSlotModel) error
	Save(ctx context.Context, slot *model.TimetableSlotModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo SlotRepository
}

func NewService(repo SlotRepository) *Service { return &Service{repo: repo} }

// Overlaps is the half-open interval test on "HH:MM" strings:
// [aStart, aEnd) intersects [bStart, bEnd). Abutting slots
// (one's end == the other's start) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// validateTimeRange rejects malformed times and non-positive ranges.
// A bad range is a validation error, never a conflict.
func validateTimeRange(day, start, end string) error {
	if !helper.WeekDays[day] {
		return apperr.Validation(fmt.Sprintf("Invalid day %q", day))
	}
	if !helper.ValidTimeOfDay(start) || !helper.ValidTimeOfDay(end) {
		return apperr.Validation(fmt.Sprintf("Invalid time format for %s (want HH:MM)", day))
	}
	if end <= start {
		return apperr.Validation(fmt.Sprintf("Invalid time range for %s", day))
	}
	return nil
}

// CheckConflict reports whether [start, end) collides with any existing slot
// of the same batch and day, optionally excluding one slot (the one being
// edited, so a no-op edit passes). Pure read.
func (s *Service) CheckConflict(ctx context.Context, batchID uuid.UUID, day, start, end string, excludeID *uuid.UUID) (bool, error) {
	if err := validateTimeRange(day, start, end); err != nil {
		return false, err
	}
	existing, err := s.repo.ListForBatchDay(ctx, batchID, day, excludeID)
	if err != nil {
		return false, apperr.Storage("failed to load slots", err)
	}
	for i := range existing {
		if Overlaps(existing[i].TimetableSlotStartTime, existing[i].TimetableSlotEndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

// NewWeekSlot describes one day of a multi-day create request.
type NewWeekSlot struct {
	Day       string
	StartTime string
	EndTime   string
}

// CreateWeek inserts one slot per requested day, in request order, checking
// each day independently. The first conflicting day aborts the request with a
// ConflictError naming the day; slots already inserted for earlier days are
// NOT rolled back — callers get them back alongside the error.
func (s *Service) CreateWeek(
	ctx context.Context,
	courseID, batchID, tutorID uuid.UUID,
	days []NewWeekSlot,
	description *string,
) ([]model.TimetableSlotModel, error) {
	created := make([]model.TimetableSlotModel, 0, len(days))

	for _, d := range days {
		conflict, err := s.CheckConflict(ctx, batchID, d.Day, d.StartTime, d.EndTime, nil)
		if err != nil {
			return created, err
		}
		if conflict {
			return created, apperr.Conflict(fmt.Sprintf("Time conflict detected on %s", d.Day))
		}

		slot := model.TimetableSlotModel{
			TimetableSlotCourseID:    courseID,
			TimetableSlotBatchID:     batchID,
			TimetableSlotTutorID:     tutorID,
			TimetableSlotDay:         d.Day,
			TimetableSlotStartTime:   d.StartTime,
			TimetableSlotEndTime:     d.EndTime,
			TimetableSlotDescription: description,
		}
		if err := s.repo.Insert(ctx, &slot); err != nil {
			return created, apperr.Storage("failed to insert slot", err)
		}
		created = append(created, slot)
	}
	return created, nil
}

// UpdateSlot edits a slot in place, excluding it from its own conflict check.
func (s *Service) UpdateSlot(ctx context.Context, id uuid.UUID, day, start, end string, description *string) (*model.TimetableSlotModel, error) {
	slot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, apperr.NotFound("Timetable slot not found")
	}

	conflict, err := s.CheckConflict(ctx, slot.TimetableSlotBatchID, day, start, end, &id)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperr.Conflict("Time conflict detected")
	}

	slot.TimetableSlotDay = day
	slot.TimetableSlotStartTime = start
	slot.TimetableSlotEndTime = end
	slot.TimetableSlotDescription = description
	if err := s.repo.Save(ctx, slot); err != nil {
		return nil, apperr.Storage("failed to save slot", err)
	}
	return slot, nil
}

// DeleteSlot removes a slot permanently (timetable slots are hard-deletable).
func (s *Service) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	slot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if slot == nil {
		return apperr.NotFound("Timetable slot not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Storage("failed to delete slot", err)
	}
	return nil
}
