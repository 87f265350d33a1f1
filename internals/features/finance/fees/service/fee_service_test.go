package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachku_backend/internals/apperr"
	model "coachku_backend/internals/features/finance/fees/model"
)

type memFeeRepo struct {
	fees  map[uuid.UUID]model.FeeModel
	insts map[uuid.UUID]model.FeeInstallmentModel
}

func newMemFeeRepo() *memFeeRepo {
	return &memFeeRepo{
		fees:  make(map[uuid.UUID]model.FeeModel),
		insts: make(map[uuid.UUID]model.FeeInstallmentModel),
	}
}

func (r *memFeeRepo) FindByStudent(_ context.Context, studentID uuid.UUID) (*model.FeeModel, error) {
	for _, f := range r.fees {
		if f.FeeStudentID == studentID {
			cp := f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memFeeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FeeModel, error) {
	f, ok := r.fees[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r *memFeeRepo) Insert(_ context.Context, fee *model.FeeModel) error {
	fee.FeeID = uuid.New()
	r.fees[fee.FeeID] = *fee
	return nil
}

func (r *memFeeRepo) Save(_ context.Context, fee *model.FeeModel) error {
	r.fees[fee.FeeID] = *fee
	return nil
}

func (r *memFeeRepo) DeleteWithInstallments(_ context.Context, id uuid.UUID) error {
	delete(r.fees, id)
	for iid, inst := range r.insts {
		if inst.FeeInstallmentFeeID == id {
			delete(r.insts, iid)
		}
	}
	return nil
}

func (r *memFeeRepo) InsertInstallment(_ context.Context, inst *model.FeeInstallmentModel) error {
	inst.FeeInstallmentID = uuid.New()
	r.insts[inst.FeeInstallmentID] = *inst
	return nil
}

func (r *memFeeRepo) FindInstallment(_ context.Context, feeID, instID uuid.UUID) (*model.FeeInstallmentModel, error) {
	inst, ok := r.insts[instID]
	if !ok || inst.FeeInstallmentFeeID != feeID {
		return nil, nil
	}
	return &inst, nil
}

func (r *memFeeRepo) DeleteInstallment(_ context.Context, instID uuid.UUID) error {
	delete(r.insts, instID)
	return nil
}

func (r *memFeeRepo) ListInstallments(_ context.Context, feeID uuid.UUID) ([]model.FeeInstallmentModel, error) {
	var out []model.FeeInstallmentModel
	for _, inst := range r.insts {
		if inst.FeeInstallmentFeeID == feeID {
			out = append(out, inst)
		}
	}
	return out, nil
}

func TestCreateLedger(t *testing.T) {
	svc := NewService(newMemFeeRepo())
	student := uuid.New()

	fee, err := svc.CreateLedger(context.Background(), student, 50000)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), fee.FeeTotal)
	assert.Equal(t, int64(0), fee.FeePaid)
	assert.Equal(t, int64(50000), fee.FeePending)

	// one ledger per student
	_, err = svc.CreateLedger(context.Background(), student, 60000)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	_, err = svc.CreateLedger(context.Background(), uuid.New(), -1)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestAddInstallmentArithmetic(t *testing.T) {
	svc := NewService(newMemFeeRepo())
	fee, err := svc.CreateLedger(context.Background(), uuid.New(), 50000)
	require.NoError(t, err)

	fee, inst, err := svc.AddInstallment(context.Background(), fee.FeeID, 20000, time.Now(), "Cash", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), inst.FeeInstallmentAmount)
	assert.Equal(t, int64(20000), fee.FeePaid)
	assert.Equal(t, int64(30000), fee.FeePending)

	fee, _, err = svc.AddInstallment(context.Background(), fee.FeeID, 30000, time.Now(), "UPI", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), fee.FeePaid)
	assert.Equal(t, int64(0), fee.FeePending)

	// a cleared ledger accepts nothing more
	_, _, err = svc.AddInstallment(context.Background(), fee.FeeID, 1, time.Now(), "Cash", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestAddInstallmentRejectsOverpayAndBadAmounts(t *testing.T) {
	svc := NewService(newMemFeeRepo())
	fee, err := svc.CreateLedger(context.Background(), uuid.New(), 10000)
	require.NoError(t, err)

	// rejected outright, not clamped
	_, _, err = svc.AddInstallment(context.Background(), fee.FeeID, 10001, time.Now(), "Cash", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	_, _, err = svc.AddInstallment(context.Background(), fee.FeeID, 0, time.Now(), "Cash", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, _, err = svc.AddInstallment(context.Background(), fee.FeeID, -50, time.Now(), "Cash", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	// ledger untouched by the rejected attempts
	got, err := svc.UpdateTotal(context.Background(), fee.FeeID, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.FeePaid)
	assert.Equal(t, int64(10000), got.FeePending)
}

func TestRemoveInstallmentRestoresPending(t *testing.T) {
	svc := NewService(newMemFeeRepo())
	fee, err := svc.CreateLedger(context.Background(), uuid.New(), 30000)
	require.NoError(t, err)

	fee, inst, err := svc.AddInstallment(context.Background(), fee.FeeID, 12000, time.Now(), "Bank", nil)
	require.NoError(t, err)
	require.Equal(t, int64(18000), fee.FeePending)

	fee, err = svc.RemoveInstallment(context.Background(), fee.FeeID, inst.FeeInstallmentID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fee.FeePaid)
	assert.Equal(t, int64(30000), fee.FeePending)

	_, err = svc.RemoveInstallment(context.Background(), fee.FeeID, inst.FeeInstallmentID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateTotalKeepsPayments(t *testing.T) {
	svc := NewService(newMemFeeRepo())
	fee, err := svc.CreateLedger(context.Background(), uuid.New(), 40000)
	require.NoError(t, err)

	fee, _, err = svc.AddInstallment(context.Background(), fee.FeeID, 25000, time.Now(), "Cash", nil)
	require.NoError(t, err)

	fee, err = svc.UpdateTotal(context.Background(), fee.FeeID, 30000)
	require.NoError(t, err)
	assert.Equal(t, int64(25000), fee.FeePaid)
	assert.Equal(t, int64(5000), fee.FeePending)

	// cannot rebase below what is already collected
	_, err = svc.UpdateTotal(context.Background(), fee.FeeID, 20000)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestDeleteLedgerDropsInstallments(t *testing.T) {
	repo := newMemFeeRepo()
	svc := NewService(repo)
	student := uuid.New()

	fee, err := svc.CreateLedger(context.Background(), student, 10000)
	require.NoError(t, err)
	_, _, err = svc.AddInstallment(context.Background(), fee.FeeID, 5000, time.Now(), "Cash", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLedger(context.Background(), fee.FeeID))
	assert.Empty(t, repo.fees)
	assert.Empty(t, repo.insts)

	err = svc.DeleteLedger(context.Background(), fee.FeeID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestLedgerForStudent(t *testing.T) {
	svc := NewService(newMemFeeRepo())
	student := uuid.New()

	_, _, err := svc.LedgerForStudent(context.Background(), student)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	fee, err := svc.CreateLedger(context.Background(), student, 20000)
	require.NoError(t, err)
	_, _, err = svc.AddInstallment(context.Background(), fee.FeeID, 7000, time.Now(), "UPI", nil)
	require.NoError(t, err)

	got, insts, err := svc.LedgerForStudent(context.Background(), student)
	require.NoError(t, err)
	assert.Equal(t, fee.FeeID, got.FeeID)
	require.Len(t, insts, 1)
	assert.Equal(t, int64(7000), insts[0].FeeInstallmentAmount)
}
