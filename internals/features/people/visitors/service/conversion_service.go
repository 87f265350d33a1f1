package service

import (
	"context"
	"crypto/rand"
	"log"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"coachku_backend/internals/apperr"
	"coachku_backend/internals/constants"
	courseModel "coachku_backend/internals/features/academics/courses/model"
	feeModel "coachku_backend/internals/features/finance/fees/model"
	feesvc "coachku_backend/internals/features/finance/fees/service"
	studentModel "coachku_backend/internals/features/people/students/model"
	visitorModel "coachku_backend/internals/features/people/visitors/model"
	userModel "coachku_backend/internals/features/users/model"
	"coachku_backend/internals/services/mailer"
)

/* =========================================================
   Visitor → student conversion

   Four sequential writes — user account, student profile, fee
   ledger (with the admission payment as first installment),
   visitor status — with no surrounding transaction. A failure
   mid-way leaves the earlier writes committed; the caller gets
   the error and the admin retries or cleans up by hand. Double
   conversion is blocked up front by the status check, not by
   the storage layer.
   ========================================================= */

// ConversionStore is the storage collaborator for the flow.
type ConversionStore interface {
	FindVisitor(ctx context.Context, id uuid.UUID) (*visitorModel.VisitorModel, error)
	FindCourse(ctx context.Context, id uuid.UUID) (*courseModel.CourseModel, error)
	CreateUser(ctx context.Context, u *userModel.UserModel) error
	CreateStudent(ctx context.Context, s *studentModel.StudentModel) error
	MarkConverted(ctx context.Context, visitorID uuid.UUID) error
}

type Converter struct {
	store  ConversionStore
	fees   *feesvc.Service
	mailer mailer.Mailer
}

func NewConverter(store ConversionStore, fees *feesvc.Service, m mailer.Mailer) *Converter {
	return &Converter{store: store, fees: fees, mailer: m}
}

type ConvertInput struct {
	VisitorID       uuid.UUID
	CourseID        uuid.UUID
	BatchID         *uuid.UUID
	PhotoPath       string
	AdmissionDate   time.Time
	AdmissionAmount int64
	PaymentMode     string
}

type ConvertResult struct {
	User    *userModel.UserModel       `json:"user"`
	Student *studentModel.StudentModel `json:"student"`
	Fee     *feeModel.FeeModel         `json:"fee"`
}

const passwordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GeneratePassword draws 12 chars from a charset without lookalikes.
func GeneratePassword() (string, error) {
	buf := make([]byte, 12)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = passwordCharset[n.Int64()]
	}
	return string(buf), nil
}

// Convert runs the whole flow. The welcome email is best-effort: a send
// failure is logged and the conversion still succeeds.
func (cv *Converter) Convert(ctx context.Context, in ConvertInput) (*ConvertResult, error) {
	visitor, err := cv.store.FindVisitor(ctx, in.VisitorID)
	if err != nil {
		return nil, apperr.Storage("failed to load visitor", err)
	}
	if visitor == nil {
		return nil, apperr.NotFound("Visitor not found")
	}
	if visitor.VisitorStatus == visitorModel.StatusConverted {
		return nil, apperr.Conflict("Visitor already converted")
	}
	if visitor.VisitorEmail == nil || *visitor.VisitorEmail == "" {
		return nil, apperr.Validation("Visitor has no email; add one before converting")
	}
	if in.PhotoPath == "" {
		return nil, apperr.Validation("Student photo is required")
	}
	if in.AdmissionAmount < 0 {
		return nil, apperr.Validation("Admission amount cannot be negative")
	}
	if in.AdmissionAmount > 0 && in.PaymentMode == "" {
		return nil, apperr.Validation("Payment mode is required for the admission amount")
	}

	course, err := cv.store.FindCourse(ctx, in.CourseID)
	if err != nil {
		return nil, apperr.Storage("failed to load course", err)
	}
	if course == nil {
		return nil, apperr.NotFound("Course not found")
	}

	password, err := GeneratePassword()
	if err != nil {
		return nil, apperr.Storage("failed to generate password", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage("failed to hash password", err)
	}

	// write 1: login account
	user := &userModel.UserModel{
		UserName:     visitor.VisitorName,
		UserEmail:    *visitor.VisitorEmail,
		UserPassword: string(hash),
		UserRole:     constants.RoleStudent,
	}
	if err := cv.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	// write 2: student profile
	admission := in.AdmissionDate
	if admission.IsZero() {
		admission = time.Now()
	}
	student := &studentModel.StudentModel{
		StudentUserID:        user.UserID,
		StudentName:          visitor.VisitorName,
		StudentEmail:         visitor.VisitorEmail,
		StudentMobile:        visitor.VisitorMobile,
		StudentCourseID:      course.CourseID,
		StudentBatchID:       in.BatchID,
		StudentPhoto:         in.PhotoPath,
		StudentAdmissionDate: admission,
	}
	if err := cv.store.CreateStudent(ctx, student); err != nil {
		return nil, err
	}

	// write 3: open the fee ledger on the course total, admission payment as
	// the first installment
	fee, err := cv.fees.CreateLedger(ctx, student.StudentID, course.CourseFees)
	if err != nil {
		return nil, err
	}
	if in.AdmissionAmount > 0 {
		fee, _, err = cv.fees.AddInstallment(ctx, fee.FeeID, in.AdmissionAmount, admission, in.PaymentMode, nil)
		if err != nil {
			return nil, err
		}
	}

	// write 4: visitor leaves the pipeline
	if err := cv.store.MarkConverted(ctx, visitor.VisitorID); err != nil {
		return nil, apperr.Storage("failed to update visitor status", err)
	}

	if err := cv.mailer.Send(mailer.WelcomeCredentials(user.UserName, user.UserEmail, password)); err != nil {
		log.Printf("[WARN] welcome email to %s failed: %v", user.UserEmail, err)
	}

	return &ConvertResult{User: user, Student: student, Fee: fee}, nil
}
