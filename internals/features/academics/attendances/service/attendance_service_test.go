package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachku_backend/internals/apperr"
	model "coachku_backend/internals/features/academics/attendances/model"
)

type memAttendanceRepo struct {
	rows map[uuid.UUID]model.AttendanceModel
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{rows: make(map[uuid.UUID]model.AttendanceModel)}
}

func (r *memAttendanceRepo) FindForBatchRange(_ context.Context, batchID uuid.UUID, start, end time.Time) (*model.AttendanceModel, error) {
	for _, a := range r.rows {
		if a.AttendanceBatchID != batchID {
			continue
		}
		if !a.AttendanceDate.Before(start) && a.AttendanceDate.Before(end) {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAttendanceRepo) Insert(_ context.Context, att *model.AttendanceModel) error {
	att.AttendanceID = uuid.New()
	r.rows[att.AttendanceID] = *att
	return nil
}

func (r *memAttendanceRepo) Save(_ context.Context, att *model.AttendanceModel) error {
	r.rows[att.AttendanceID] = *att
	return nil
}

func (r *memAttendanceRepo) ListForBatch(_ context.Context, batchID uuid.UUID) ([]model.AttendanceModel, error) {
	var out []model.AttendanceModel
	for _, a := range r.rows {
		if a.AttendanceBatchID == batchID {
			out = append(out, a)
		}
	}
	return out, nil
}

func entriesOf(t *testing.T, att *model.AttendanceModel) []model.AttendanceEntry {
	t.Helper()
	entries, err := att.Entries()
	require.NoError(t, err)
	return entries
}

func TestMarkCreatesOneRowPerBatchDay(t *testing.T) {
	repo := newMemAttendanceRepo()
	svc := NewService(repo)
	course, batch := uuid.New(), uuid.New()
	s1, s2 := uuid.New(), uuid.New()
	day := time.Date(2026, 3, 9, 14, 30, 0, 0, time.Local)

	att, err := svc.Mark(context.Background(), course, batch, day, []model.AttendanceEntry{
		{StudentID: s1, Status: model.StatusPresent},
		{StudentID: s2, Status: model.StatusAbsent},
	})
	require.NoError(t, err)
	assert.Len(t, repo.rows, 1)
	assert.Len(t, entriesOf(t, att), 2)
	assert.Equal(t, course, att.AttendanceCourseID)

	// the stored date is the start of the day, not the request timestamp
	assert.Equal(t, 0, att.AttendanceDate.Hour())
	assert.Equal(t, 9, att.AttendanceDate.Day())

	// a different time on the same day hits the same row
	att2, err := svc.Mark(context.Background(), course, batch, day.Add(5*time.Hour), []model.AttendanceEntry{
		{StudentID: s1, Status: model.StatusAbsent},
	})
	require.NoError(t, err)
	assert.Equal(t, att.AttendanceID, att2.AttendanceID)
	assert.Len(t, repo.rows, 1)

	// the next day gets its own row
	_, err = svc.Mark(context.Background(), course, batch, day.AddDate(0, 0, 1), []model.AttendanceEntry{
		{StudentID: s1, Status: model.StatusPresent},
	})
	require.NoError(t, err)
	assert.Len(t, repo.rows, 2)
}

func TestMarkOverwritesDoesNotMerge(t *testing.T) {
	svc := NewService(newMemAttendanceRepo())
	course, batch := uuid.New(), uuid.New()
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	day := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)

	_, err := svc.Mark(context.Background(), course, batch, day, []model.AttendanceEntry{
		{StudentID: s1, Status: model.StatusPresent},
		{StudentID: s2, Status: model.StatusPresent},
	})
	require.NoError(t, err)

	// re-mark with a list that drops s2 and adds s3
	att, err := svc.Mark(context.Background(), course, batch, day, []model.AttendanceEntry{
		{StudentID: s1, Status: model.StatusLate},
		{StudentID: s3, Status: model.StatusPresent},
	})
	require.NoError(t, err)

	entries := entriesOf(t, att)
	require.Len(t, entries, 2)
	ids := map[uuid.UUID]string{}
	for _, e := range entries {
		ids[e.StudentID] = e.Status
	}
	assert.Equal(t, model.StatusLate, ids[s1])
	assert.Equal(t, model.StatusPresent, ids[s3])
	_, s2kept := ids[s2]
	assert.False(t, s2kept, "dropped student must not survive the overwrite")
}

func TestMarkValidation(t *testing.T) {
	svc := NewService(newMemAttendanceRepo())
	course, batch := uuid.New(), uuid.New()
	day := time.Now()

	_, err := svc.Mark(context.Background(), course, batch, day, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Mark(context.Background(), course, batch, day, []model.AttendanceEntry{
		{StudentID: uuid.Nil, Status: model.StatusPresent},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Mark(context.Background(), course, batch, day, []model.AttendanceEntry{
		{StudentID: uuid.New(), Status: "Present"},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestGetByDate(t *testing.T) {
	svc := NewService(newMemAttendanceRepo())
	course, batch := uuid.New(), uuid.New()
	day := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)

	_, err := svc.GetByDate(context.Background(), batch, day)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.Mark(context.Background(), course, batch, day, []model.AttendanceEntry{
		{StudentID: uuid.New(), Status: model.StatusPresent},
	})
	require.NoError(t, err)

	// late in the day still lands inside the range
	got, err := svc.GetByDate(context.Background(), batch, day.Add(14*time.Hour+59*time.Minute))
	require.NoError(t, err)
	assert.Len(t, entriesOf(t, got), 1)

	// other batches stay invisible
	_, err = svc.GetByDate(context.Background(), uuid.New(), day)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestStudentHistoryFiltersToOneStudent(t *testing.T) {
	svc := NewService(newMemAttendanceRepo())
	course, batch := uuid.New(), uuid.New()
	s1, s2 := uuid.New(), uuid.New()
	day := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)

	_, err := svc.Mark(context.Background(), course, batch, day, []model.AttendanceEntry{
		{StudentID: s1, Status: model.StatusPresent},
		{StudentID: s2, Status: model.StatusAbsent},
	})
	require.NoError(t, err)
	_, err = svc.Mark(context.Background(), course, batch, day.AddDate(0, 0, 1), []model.AttendanceEntry{
		{StudentID: s2, Status: model.StatusPresent},
	})
	require.NoError(t, err)

	hist, err := svc.StudentHistory(context.Background(), batch, s1)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	entries := entriesOf(t, &hist[0])
	require.Len(t, entries, 1)
	assert.Equal(t, s1, entries[0].StudentID)

	hist2, err := svc.StudentHistory(context.Background(), batch, s2)
	require.NoError(t, err)
	assert.Len(t, hist2, 2)
}
