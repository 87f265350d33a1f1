package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachku_backend/internals/apperr"
	model "coachku_backend/internals/features/academics/batches/model"
)

func strPtr(s string) *string { return &s }

func TestCreateBatchToModel(t *testing.T) {
	req := CreateBatchRequest{
		Name:      "Morning Batch A",
		Category:  strPtr("Weekday"),
		StartDate: strPtr("2026-04-01"),
		EndDate:   strPtr("2026-09-30"),
	}
	b, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "Morning Batch A", b.BatchName)
	assert.Equal(t, model.BatchStatusActive, b.BatchStatus)
	require.NotNil(t, b.BatchStartDate)
	require.NotNil(t, b.BatchEndDate)
}

func TestCreateBatchRejectsInvertedDates(t *testing.T) {
	req := CreateBatchRequest{
		Name:      "Broken",
		StartDate: strPtr("2026-09-30"),
		EndDate:   strPtr("2026-04-01"),
	}
	_, err := req.ToModel()
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "End date")
}

func TestCreateBatchSameDayIsAllowed(t *testing.T) {
	req := CreateBatchRequest{
		Name:      "One-day workshop",
		StartDate: strPtr("2026-04-01"),
		EndDate:   strPtr("2026-04-01"),
	}
	_, err := req.ToModel()
	require.NoError(t, err)
}

func TestCreateBatchOpenEndedDates(t *testing.T) {
	b, err := (&CreateBatchRequest{Name: "Open"}).ToModel()
	require.NoError(t, err)
	assert.Nil(t, b.BatchStartDate)
	assert.Nil(t, b.BatchEndDate)

	b, err = (&CreateBatchRequest{Name: "StartOnly", StartDate: strPtr("2026-04-01")}).ToModel()
	require.NoError(t, err)
	require.NotNil(t, b.BatchStartDate)
	assert.Nil(t, b.BatchEndDate)
}

func TestCreateBatchBadDateFormat(t *testing.T) {
	_, err := (&CreateBatchRequest{Name: "Bad", StartDate: strPtr("01-04-2026")}).ToModel()
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}
