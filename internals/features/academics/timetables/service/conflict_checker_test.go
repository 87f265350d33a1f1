package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachku_backend/internals/apperr"
	model "coachku_backend/internals/features/academics/timetables/model"
)

type memSlotRepo struct {
	slots      map[uuid.UUID]model.TimetableSlotModel
	failInsert bool
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{slots: make(map[uuid.UUID]model.TimetableSlotModel)}
}

func (r *memSlotRepo) ListForBatchDay(_ context.Context, batchID uuid.UUID, day string, excludeID *uuid.UUID) ([]model.TimetableSlotModel, error) {
	var out []model.TimetableSlotModel
	for id, s := range r.slots {
		if s.TimetableSlotBatchID != batchID || s.TimetableSlotDay != day {
			continue
		}
		if excludeID != nil && id == *excludeID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memSlotRepo) FindByID(_ context.Context, id uuid.UUID) (*model.TimetableSlotModel, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memSlotRepo) Insert(_ context.Context, slot *model.TimetableSlotModel) error {
	if r.failInsert {
		return errors.New("insert failed")
	}
	slot.TimetableSlotID = uuid.New()
	r.slots[slot.TimetableSlotID] = *slot
	return nil
}

func (r *memSlotRepo) Save(_ context.Context, slot *model.TimetableSlotModel) error {
	r.slots[slot.TimetableSlotID] = *slot
	return nil
}

func (r *memSlotRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.slots, id)
	return nil
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"partial front", "09:00", "10:30", "10:00", "11:00", true},
		{"partial back", "10:30", "12:00", "10:00", "11:00", true},
		{"abutting before", "08:00", "09:00", "09:00", "10:00", false},
		{"abutting after", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "07:00", "08:00", "09:00", "10:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// symmetry
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestCheckConflictValidation(t *testing.T) {
	svc := NewService(newMemSlotRepo())
	batch := uuid.New()

	_, err := svc.CheckConflict(context.Background(), batch, "Funday", "09:00", "10:00", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.CheckConflict(context.Background(), batch, "Mon", "9:00", "10:00", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	// zero-length and inverted ranges are validation errors, not conflicts
	_, err = svc.CheckConflict(context.Background(), batch, "Mon", "10:00", "10:00", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.CheckConflict(context.Background(), batch, "Mon", "11:00", "10:00", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestCreateWeek(t *testing.T) {
	repo := newMemSlotRepo()
	svc := NewService(repo)
	batch, course, tutor := uuid.New(), uuid.New(), uuid.New()

	created, err := svc.CreateWeek(context.Background(), course, batch, tutor, []NewWeekSlot{
		{Day: "Mon", StartTime: "09:00", EndTime: "10:30"},
		{Day: "Wed", StartTime: "09:00", EndTime: "10:30"},
		{Day: "Fri", StartTime: "14:00", EndTime: "15:30"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Len(t, repo.slots, 3)
	for _, s := range created {
		assert.Equal(t, batch, s.TimetableSlotBatchID)
		assert.Equal(t, tutor, s.TimetableSlotTutorID)
		assert.NotEqual(t, uuid.Nil, s.TimetableSlotID)
	}

	// same batch, another course on a free day is fine
	_, err = svc.CreateWeek(context.Background(), uuid.New(), batch, tutor, []NewWeekSlot{
		{Day: "Tue", StartTime: "09:00", EndTime: "10:00"},
	}, nil)
	require.NoError(t, err)

	// other batch is never affected
	_, err = svc.CreateWeek(context.Background(), course, uuid.New(), tutor, []NewWeekSlot{
		{Day: "Mon", StartTime: "09:00", EndTime: "10:30"},
	}, nil)
	require.NoError(t, err)
}

func TestCreateWeekConflictKeepsEarlierDays(t *testing.T) {
	repo := newMemSlotRepo()
	svc := NewService(repo)
	batch, course, tutor := uuid.New(), uuid.New(), uuid.New()

	_, err := svc.CreateWeek(context.Background(), course, batch, tutor, []NewWeekSlot{
		{Day: "Wed", StartTime: "09:00", EndTime: "11:00"},
	}, nil)
	require.NoError(t, err)

	// Mon inserts, Wed collides, Fri is never attempted
	created, err := svc.CreateWeek(context.Background(), course, batch, tutor, []NewWeekSlot{
		{Day: "Mon", StartTime: "09:00", EndTime: "10:00"},
		{Day: "Wed", StartTime: "10:00", EndTime: "12:00"},
		{Day: "Fri", StartTime: "09:00", EndTime: "10:00"},
	}, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Contains(t, err.Error(), "Wed")

	// the Mon slot stays committed
	require.Len(t, created, 1)
	assert.Equal(t, "Mon", created[0].TimetableSlotDay)
	assert.Len(t, repo.slots, 2)
}

func TestUpdateSlotExcludesSelf(t *testing.T) {
	repo := newMemSlotRepo()
	svc := NewService(repo)
	batch, course, tutor := uuid.New(), uuid.New(), uuid.New()

	created, err := svc.CreateWeek(context.Background(), course, batch, tutor, []NewWeekSlot{
		{Day: "Mon", StartTime: "09:00", EndTime: "10:00"},
		{Day: "Mon", StartTime: "11:00", EndTime: "12:00"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, created, 2)

	// shifting a slot within its own window is not a self-conflict
	updated, err := svc.UpdateSlot(context.Background(), created[0].TimetableSlotID, "Mon", "09:30", "10:00", nil)
	require.NoError(t, err)
	assert.Equal(t, "09:30", updated.TimetableSlotStartTime)

	// colliding with the sibling slot is
	_, err = svc.UpdateSlot(context.Background(), created[0].TimetableSlotID, "Mon", "11:30", "12:30", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestUpdateAndDeleteMissingSlot(t *testing.T) {
	svc := NewService(newMemSlotRepo())

	_, err := svc.UpdateSlot(context.Background(), uuid.New(), "Mon", "09:00", "10:00", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	err = svc.DeleteSlot(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteSlotFreesWindow(t *testing.T) {
	repo := newMemSlotRepo()
	svc := NewService(repo)
	batch, course, tutor := uuid.New(), uuid.New(), uuid.New()

	created, err := svc.CreateWeek(context.Background(), course, batch, tutor, []NewWeekSlot{
		{Day: "Thu", StartTime: "09:00", EndTime: "10:00"},
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSlot(context.Background(), created[0].TimetableSlotID))

	_, err = svc.CreateWeek(context.Background(), course, batch, tutor, []NewWeekSlot{
		{Day: "Thu", StartTime: "09:00", EndTime: "10:00"},
	}, nil)
	require.NoError(t, err)
}
