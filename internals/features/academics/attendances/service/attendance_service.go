package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coachku_backend/internals/apperr"
	model "coachku_backend/internals/features/academics/attendances/model"
	helper "coachku_backend/internals/helpers"
)

// AttendanceRepository is the storage collaborator for the register.
// FindForBatchRange matches rows whose date falls in [start, end).
type AttendanceRepository interface {
	FindForBatchRange(ctx context.Context, batchID uuid.UUID, start, end time.Time) (*model.AttendanceModel, error)
	Insert(ctx context.Context, att *model.AttendanceModel) error
	Save(ctx context.Context, att *model.AttendanceModel) error
	ListForBatch(ctx context.Context, batchID uuid.UUID) ([]model.AttendanceModel, error)
}

type Service struct {
	repo AttendanceRepository
}

func NewService(repo AttendanceRepository) *Service { return &Service{repo: repo} }

func validateEntries(entries []model.AttendanceEntry) error {
	if len(entries) == 0 {
		return apperr.Validation("At least one student mark is required")
	}
	for _, e := range entries {
		if e.StudentID == uuid.Nil {
			return apperr.Validation("Invalid student id in attendance list")
		}
		switch e.Status {
		case model.StatusPresent, model.StatusAbsent, model.StatusLate:
		default:
			return apperr.Validation("Attendance status must be P, A or L")
		}
	}
	return nil
}

// Mark upserts the register for (batch, day-of date). A second call for the
// same batch and day overwrites the whole list — marks for students absent
// from the new list are dropped, never merged.
func (s *Service) Mark(ctx context.Context, courseID, batchID uuid.UUID, date time.Time, entries []model.AttendanceEntry) (*model.AttendanceModel, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	start, end := helper.DayRange(date)
	existing, err := s.repo.FindForBatchRange(ctx, batchID, start, end)
	if err != nil {
		return nil, apperr.Storage("failed to load attendance", err)
	}

	if existing != nil {
		existing.AttendanceCourseID = courseID
		if err := existing.SetEntries(entries); err != nil {
			return nil, apperr.Storage("failed to encode attendance", err)
		}
		if err := s.repo.Save(ctx, existing); err != nil {
			return nil, apperr.Storage("failed to save attendance", err)
		}
		return existing, nil
	}

	att := &model.AttendanceModel{
		AttendanceCourseID: courseID,
		AttendanceBatchID:  batchID,
		AttendanceDate:     start,
	}
	if err := att.SetEntries(entries); err != nil {
		return nil, apperr.Storage("failed to encode attendance", err)
	}
	if err := s.repo.Insert(ctx, att); err != nil {
		return nil, apperr.Storage("failed to insert attendance", err)
	}
	return att, nil
}

// GetByDate returns the register for (batch, day-of date).
func (s *Service) GetByDate(ctx context.Context, batchID uuid.UUID, date time.Time) (*model.AttendanceModel, error) {
	start, end := helper.DayRange(date)
	att, err := s.repo.FindForBatchRange(ctx, batchID, start, end)
	if err != nil {
		return nil, apperr.Storage("failed to load attendance", err)
	}
	if att == nil {
		return nil, apperr.NotFound("No attendance recorded for this date")
	}
	return att, nil
}

// GetByBatch returns the full register history of a batch.
func (s *Service) GetByBatch(ctx context.Context, batchID uuid.UUID) ([]model.AttendanceModel, error) {
	atts, err := s.repo.ListForBatch(ctx, batchID)
	if err != nil {
		return nil, apperr.Storage("failed to load attendance", err)
	}
	return atts, nil
}

// StudentHistory filters a batch's register down to one student's marks.
func (s *Service) StudentHistory(ctx context.Context, batchID, studentID uuid.UUID) ([]model.AttendanceModel, error) {
	atts, err := s.GetByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	out := make([]model.AttendanceModel, 0, len(atts))
	for i := range atts {
		entries, err := atts[i].Entries()
		if err != nil {
			return nil, apperr.Storage("failed to decode attendance", err)
		}
		for _, e := range entries {
			if e.StudentID == studentID {
				row := atts[i]
				if err := row.SetEntries([]model.AttendanceEntry{e}); err != nil {
					return nil, apperr.Storage("failed to encode attendance", err)
				}
				out = append(out, row)
				break
			}
		}
	}
	return out, nil
}
