package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coachku_backend/internals/apperr"
	model "coachku_backend/internals/features/finance/fees/model"
)

/* =========================================================
   Fee ledger

   Totals are maintained by read-modify-write: load the ledger,
   adjust paid/pending in memory, save. Two concurrent payments
   against one ledger can lose an update; single-counter usage
   is assumed and the behavior is accepted as-is.
   ========================================================= */

// FeeRepository is the storage collaborator for the ledger.
type FeeRepository interface {
	FindByStudent(ctx context.Context, studentID uuid.UUID) (*model.FeeModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FeeModel, error)
	Insert(ctx context.Context, fee *model.FeeModel) error
	Save(ctx context.Context, fee *model.FeeModel) error
	DeleteWithInstallments(ctx context.Context, id uuid.UUID) error

	InsertInstallment(ctx context.Context, inst *model.FeeInstallmentModel) error
	FindInstallment(ctx context.Context, feeID, instID uuid.UUID) (*model.FeeInstallmentModel, error)
	DeleteInstallment(ctx context.Context, instID uuid.UUID) error
	ListInstallments(ctx context.Context, feeID uuid.UUID) ([]model.FeeInstallmentModel, error)
}

type Service struct {
	repo FeeRepository
}

func NewService(repo FeeRepository) *Service { return &Service{repo: repo} }

// Pending is the single source of truth for the derived column.
func Pending(total, paid int64) int64 { return total - paid }

// CreateLedger opens the one ledger a student gets. Opening a second one for
// the same student is a conflict.
func (s *Service) CreateLedger(ctx context.Context, studentID uuid.UUID, total int64) (*model.FeeModel, error) {
	if total < 0 {
		return nil, apperr.Validation("Total fees cannot be negative")
	}

	existing, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, apperr.Storage("failed to load fee ledger", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Fee ledger already exists for this student")
	}

	fee := &model.FeeModel{
		FeeStudentID: studentID,
		FeeTotal:     total,
		FeePaid:      0,
		FeePending:   Pending(total, 0),
	}
	if err := s.repo.Insert(ctx, fee); err != nil {
		return nil, apperr.Storage("failed to create fee ledger", err)
	}
	return fee, nil
}

// AddInstallment records a payment and bumps the ledger totals. A payment
// larger than what is still pending is rejected as a conflict, not clamped.
func (s *Service) AddInstallment(ctx context.Context, feeID uuid.UUID, amount int64, date time.Time, mode string, note *string) (*model.FeeModel, *model.FeeInstallmentModel, error) {
	if amount <= 0 {
		return nil, nil, apperr.Validation("Installment amount must be positive")
	}

	fee, err := s.repo.FindByID(ctx, feeID)
	if err != nil {
		return nil, nil, apperr.Storage("failed to load fee ledger", err)
	}
	if fee == nil {
		return nil, nil, apperr.NotFound("Fee ledger not found")
	}
	if amount > fee.FeePending {
		return nil, nil, apperr.Conflict("Amount exceeds pending fees")
	}

	inst := &model.FeeInstallmentModel{
		FeeInstallmentFeeID:  fee.FeeID,
		FeeInstallmentAmount: amount,
		FeeInstallmentDate:   date,
		FeeInstallmentMode:   mode,
		FeeInstallmentNote:   note,
	}
	if err := s.repo.InsertInstallment(ctx, inst); err != nil {
		return nil, nil, apperr.Storage("failed to record installment", err)
	}

	fee.FeePaid += amount
	fee.FeePending = Pending(fee.FeeTotal, fee.FeePaid)
	if err := s.repo.Save(ctx, fee); err != nil {
		return nil, nil, apperr.Storage("failed to update fee ledger", err)
	}
	return fee, inst, nil
}

// RemoveInstallment voids a recorded payment and restores the pending amount.
func (s *Service) RemoveInstallment(ctx context.Context, feeID, instID uuid.UUID) (*model.FeeModel, error) {
	fee, err := s.repo.FindByID(ctx, feeID)
	if err != nil {
		return nil, apperr.Storage("failed to load fee ledger", err)
	}
	if fee == nil {
		return nil, apperr.NotFound("Fee ledger not found")
	}

	inst, err := s.repo.FindInstallment(ctx, feeID, instID)
	if err != nil {
		return nil, apperr.Storage("failed to load installment", err)
	}
	if inst == nil {
		return nil, apperr.NotFound("Installment not found")
	}

	if err := s.repo.DeleteInstallment(ctx, instID); err != nil {
		return nil, apperr.Storage("failed to delete installment", err)
	}

	fee.FeePaid -= inst.FeeInstallmentAmount
	fee.FeePending = Pending(fee.FeeTotal, fee.FeePaid)
	if err := s.repo.Save(ctx, fee); err != nil {
		return nil, apperr.Storage("failed to update fee ledger", err)
	}
	return fee, nil
}

// UpdateTotal rebases the ledger on a new course total, keeping payments.
func (s *Service) UpdateTotal(ctx context.Context, feeID uuid.UUID, total int64) (*model.FeeModel, error) {
	if total < 0 {
		return nil, apperr.Validation("Total fees cannot be negative")
	}
	fee, err := s.repo.FindByID(ctx, feeID)
	if err != nil {
		return nil, apperr.Storage("failed to load fee ledger", err)
	}
	if fee == nil {
		return nil, apperr.NotFound("Fee ledger not found")
	}
	if total < fee.FeePaid {
		return nil, apperr.Conflict("Total cannot be below the amount already paid")
	}

	fee.FeeTotal = total
	fee.FeePending = Pending(total, fee.FeePaid)
	if err := s.repo.Save(ctx, fee); err != nil {
		return nil, apperr.Storage("failed to update fee ledger", err)
	}
	return fee, nil
}

// DeleteLedger drops the ledger and all its installments.
func (s *Service) DeleteLedger(ctx context.Context, feeID uuid.UUID) error {
	fee, err := s.repo.FindByID(ctx, feeID)
	if err != nil {
		return apperr.Storage("failed to load fee ledger", err)
	}
	if fee == nil {
		return apperr.NotFound("Fee ledger not found")
	}
	if err := s.repo.DeleteWithInstallments(ctx, feeID); err != nil {
		return apperr.Storage("failed to delete fee ledger", err)
	}
	return nil
}

// LedgerForStudent loads a student's ledger with its payment history.
func (s *Service) LedgerForStudent(ctx context.Context, studentID uuid.UUID) (*model.FeeModel, []model.FeeInstallmentModel, error) {
	fee, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, nil, apperr.Storage("failed to load fee ledger", err)
	}
	if fee == nil {
		return nil, nil, apperr.NotFound("Fee ledger not found")
	}
	insts, err := s.repo.ListInstallments(ctx, fee.FeeID)
	if err != nil {
		return nil, nil, apperr.Storage("failed to load installments", err)
	}
	return fee, insts, nil
}
