package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachku_backend/internals/apperr"
	courseModel "coachku_backend/internals/features/academics/courses/model"
	feeModel "coachku_backend/internals/features/finance/fees/model"
	feesvc "coachku_backend/internals/features/finance/fees/service"
	studentModel "coachku_backend/internals/features/people/students/model"
	visitorModel "coachku_backend/internals/features/people/visitors/model"
	userModel "coachku_backend/internals/features/users/model"
	"coachku_backend/internals/services/mailer"
)

/* ========================= doubles ========================= */

type memConversionStore struct {
	visitors map[uuid.UUID]*visitorModel.VisitorModel
	courses  map[uuid.UUID]*courseModel.CourseModel
	users    []*userModel.UserModel
	students []*studentModel.StudentModel

	failCreateStudent bool
}

func newMemConversionStore() *memConversionStore {
	return &memConversionStore{
		visitors: make(map[uuid.UUID]*visitorModel.VisitorModel),
		courses:  make(map[uuid.UUID]*courseModel.CourseModel),
	}
}

func (s *memConversionStore) FindVisitor(_ context.Context, id uuid.UUID) (*visitorModel.VisitorModel, error) {
	return s.visitors[id], nil
}

func (s *memConversionStore) FindCourse(_ context.Context, id uuid.UUID) (*courseModel.CourseModel, error) {
	return s.courses[id], nil
}

func (s *memConversionStore) CreateUser(_ context.Context, u *userModel.UserModel) error {
	for _, existing := range s.users {
		if existing.UserEmail == u.UserEmail {
			return apperr.Conflict("An account with this email already exists")
		}
	}
	u.UserID = uuid.New()
	s.users = append(s.users, u)
	return nil
}

func (s *memConversionStore) CreateStudent(_ context.Context, st *studentModel.StudentModel) error {
	if s.failCreateStudent {
		return apperr.Storage("student insert failed", errors.New("boom"))
	}
	st.StudentID = uuid.New()
	s.students = append(s.students, st)
	return nil
}

func (s *memConversionStore) MarkConverted(_ context.Context, visitorID uuid.UUID) error {
	v, ok := s.visitors[visitorID]
	if !ok {
		return errors.New("missing visitor")
	}
	v.VisitorStatus = visitorModel.StatusConverted
	return nil
}

// minimal in-memory FeeRepository, enough for CreateLedger + AddInstallment
type memLedgerRepo struct {
	fees       map[uuid.UUID]feeModel.FeeModel
	insts      []feeModel.FeeInstallmentModel
	failInsert bool
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{fees: make(map[uuid.UUID]feeModel.FeeModel)}
}

func (r *memLedgerRepo) FindByStudent(_ context.Context, studentID uuid.UUID) (*feeModel.FeeModel, error) {
	for _, f := range r.fees {
		if f.FeeStudentID == studentID {
			cp := f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memLedgerRepo) FindByID(_ context.Context, id uuid.UUID) (*feeModel.FeeModel, error) {
	f, ok := r.fees[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r *memLedgerRepo) Insert(_ context.Context, fee *feeModel.FeeModel) error {
	if r.failInsert {
		return errors.New("ledger insert failed")
	}
	fee.FeeID = uuid.New()
	r.fees[fee.FeeID] = *fee
	return nil
}

func (r *memLedgerRepo) Save(_ context.Context, fee *feeModel.FeeModel) error {
	r.fees[fee.FeeID] = *fee
	return nil
}

func (r *memLedgerRepo) DeleteWithInstallments(_ context.Context, id uuid.UUID) error {
	delete(r.fees, id)
	return nil
}

func (r *memLedgerRepo) InsertInstallment(_ context.Context, inst *feeModel.FeeInstallmentModel) error {
	inst.FeeInstallmentID = uuid.New()
	r.insts = append(r.insts, *inst)
	return nil
}

func (r *memLedgerRepo) FindInstallment(_ context.Context, _, _ uuid.UUID) (*feeModel.FeeInstallmentModel, error) {
	return nil, nil
}

func (r *memLedgerRepo) DeleteInstallment(_ context.Context, _ uuid.UUID) error { return nil }

func (r *memLedgerRepo) ListInstallments(_ context.Context, _ uuid.UUID) ([]feeModel.FeeInstallmentModel, error) {
	return nil, nil
}

type captureMailer struct {
	sent []mailer.Message
	fail bool
}

func (m *captureMailer) Send(msg mailer.Message) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, msg)
	return nil
}

/* ========================= fixtures ========================= */

func strPtr(s string) *string { return &s }

func seedVisitorAndCourse(store *memConversionStore) (uuid.UUID, uuid.UUID) {
	visitorID, courseID := uuid.New(), uuid.New()
	store.visitors[visitorID] = &visitorModel.VisitorModel{
		VisitorID:     visitorID,
		VisitorName:   "Asha Rao",
		VisitorMobile: "9876543210",
		VisitorEmail:  strPtr("asha@example.com"),
		VisitorStatus: visitorModel.StatusFollowUp,
	}
	store.courses[courseID] = &courseModel.CourseModel{
		CourseID:   courseID,
		CourseName: "Full Stack Web",
		CourseFees: 45000,
	}
	return visitorID, courseID
}

func newTestConverter(store *memConversionStore, ledger *memLedgerRepo, mail *captureMailer) *Converter {
	return NewConverter(store, feesvc.NewService(ledger), mail)
}

/* ========================= tests ========================= */

func TestConvertHappyPath(t *testing.T) {
	store := newMemConversionStore()
	ledger := newMemLedgerRepo()
	mail := &captureMailer{}
	cv := newTestConverter(store, ledger, mail)
	visitorID, courseID := seedVisitorAndCourse(store)

	res, err := cv.Convert(context.Background(), ConvertInput{
		VisitorID:       visitorID,
		CourseID:        courseID,
		PhotoPath:       "students/asha.webp",
		AdmissionDate:   time.Now(),
		AdmissionAmount: 5000,
		PaymentMode:     "Cash",
	})
	require.NoError(t, err)

	// login account
	require.Len(t, store.users, 1)
	assert.Equal(t, "asha@example.com", res.User.UserEmail)
	assert.Equal(t, "student", res.User.UserRole)
	assert.NotEmpty(t, res.User.UserPassword)
	assert.NotEqual(t, "asha@example.com", res.User.UserPassword)

	// student profile linked to the account and course
	require.Len(t, store.students, 1)
	assert.Equal(t, res.User.UserID, res.Student.StudentUserID)
	assert.Equal(t, courseID, res.Student.StudentCourseID)
	assert.Equal(t, "students/asha.webp", res.Student.StudentPhoto)

	// visitor leaves the pipeline
	assert.Equal(t, visitorModel.StatusConverted, store.visitors[visitorID].VisitorStatus)

	// ledger opened on the course total, admission payment already recorded
	fee, err := ledger.FindByStudent(context.Background(), res.Student.StudentID)
	require.NoError(t, err)
	require.NotNil(t, fee)
	assert.Equal(t, int64(45000), fee.FeeTotal)
	assert.Equal(t, int64(5000), fee.FeePaid)
	assert.Equal(t, int64(40000), fee.FeePending)
	require.Len(t, ledger.insts, 1)
	assert.Equal(t, int64(5000), ledger.insts[0].FeeInstallmentAmount)
	assert.Equal(t, "Cash", ledger.insts[0].FeeInstallmentMode)

	// welcome email carries the plain password
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "asha@example.com", mail.sent[0].ToEmail)
	assert.Contains(t, mail.sent[0].Text, "Password:")
}

func TestConvertRejectsDoubleConversion(t *testing.T) {
	store := newMemConversionStore()
	cv := newTestConverter(store, newMemLedgerRepo(), &captureMailer{})
	visitorID, courseID := seedVisitorAndCourse(store)
	store.visitors[visitorID].VisitorStatus = visitorModel.StatusConverted

	_, err := cv.Convert(context.Background(), ConvertInput{
		VisitorID: visitorID,
		CourseID:  courseID,
		PhotoPath: "students/x.webp",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Empty(t, store.users)
}

func TestConvertPreconditions(t *testing.T) {
	store := newMemConversionStore()
	cv := newTestConverter(store, newMemLedgerRepo(), &captureMailer{})
	visitorID, courseID := seedVisitorAndCourse(store)

	_, err := cv.Convert(context.Background(), ConvertInput{
		VisitorID: uuid.New(), CourseID: courseID, PhotoPath: "p.webp",
	})
	assert.True(t, apperr.IsNotFound(err))

	_, err = cv.Convert(context.Background(), ConvertInput{
		VisitorID: visitorID, CourseID: uuid.New(), PhotoPath: "p.webp",
	})
	assert.True(t, apperr.IsNotFound(err))

	_, err = cv.Convert(context.Background(), ConvertInput{
		VisitorID: visitorID, CourseID: courseID,
	})
	assert.True(t, apperr.IsValidation(err))

	store.visitors[visitorID].VisitorEmail = nil
	_, err = cv.Convert(context.Background(), ConvertInput{
		VisitorID: visitorID, CourseID: courseID, PhotoPath: "p.webp",
	})
	assert.True(t, apperr.IsValidation(err))

	// none of the failed attempts wrote anything
	assert.Empty(t, store.users)
	assert.Empty(t, store.students)
	assert.Equal(t, visitorModel.StatusFollowUp, store.visitors[visitorID].VisitorStatus)
}

func TestConvertMidFlowFailureLeavesEarlierWrites(t *testing.T) {
	store := newMemConversionStore()
	store.failCreateStudent = true
	mail := &captureMailer{}
	cv := newTestConverter(store, newMemLedgerRepo(), mail)
	visitorID, courseID := seedVisitorAndCourse(store)

	_, err := cv.Convert(context.Background(), ConvertInput{
		VisitorID: visitorID, CourseID: courseID, PhotoPath: "p.webp",
	})
	require.Error(t, err)

	// the user account from write 1 stays committed; nothing after it ran
	assert.Len(t, store.users, 1)
	assert.Empty(t, store.students)
	assert.Equal(t, visitorModel.StatusFollowUp, store.visitors[visitorID].VisitorStatus)
	assert.Empty(t, mail.sent)

	// a retry now trips on the existing account
	store.failCreateStudent = false
	_, err = cv.Convert(context.Background(), ConvertInput{
		VisitorID: visitorID, CourseID: courseID, PhotoPath: "p.webp",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestConvertFeeStepFailureLeavesVisitorUnconverted(t *testing.T) {
	store := newMemConversionStore()
	ledger := newMemLedgerRepo()
	ledger.failInsert = true
	mail := &captureMailer{}
	cv := newTestConverter(store, ledger, mail)
	visitorID, courseID := seedVisitorAndCourse(store)

	_, err := cv.Convert(context.Background(), ConvertInput{
		VisitorID: visitorID, CourseID: courseID, PhotoPath: "p.webp",
	})
	require.Error(t, err)

	// user and student from writes 1-2 stay committed, but the visitor was
	// never marked converted and no credentials went out
	assert.Len(t, store.users, 1)
	assert.Len(t, store.students, 1)
	assert.Equal(t, visitorModel.StatusFollowUp, store.visitors[visitorID].VisitorStatus)
	assert.Empty(t, mail.sent)
}

func TestConvertSurvivesMailerFailure(t *testing.T) {
	store := newMemConversionStore()
	cv := newTestConverter(store, newMemLedgerRepo(), &captureMailer{fail: true})
	visitorID, courseID := seedVisitorAndCourse(store)

	res, err := cv.Convert(context.Background(), ConvertInput{
		VisitorID: visitorID, CourseID: courseID, PhotoPath: "p.webp",
	})
	require.NoError(t, err)
	assert.NotNil(t, res.Student)
	assert.Equal(t, visitorModel.StatusConverted, store.visitors[visitorID].VisitorStatus)
}

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		pw, err := GeneratePassword()
		require.NoError(t, err)
		assert.Len(t, pw, 12)
		assert.False(t, seen[pw], "passwords must not repeat")
		seen[pw] = true
	}
}
