package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachku_backend/internals/configs"
	"coachku_backend/internals/constants"
	attendanceRoute "coachku_backend/internals/features/academics/attendances/route"
	mappingRoute "coachku_backend/internals/features/academics/batch_mappings/route"
	batchRoute "coachku_backend/internals/features/academics/batches/route"
	courseRoute "coachku_backend/internals/features/academics/courses/route"
	skillRoute "coachku_backend/internals/features/academics/skills/route"
	timetableRoute "coachku_backend/internals/features/academics/timetables/route"
	feedbackRoute "coachku_backend/internals/features/engagement/feedbacks/route"
	feeRoute "coachku_backend/internals/features/finance/fees/route"
	studentRoute "coachku_backend/internals/features/people/students/route"
	tutorRoute "coachku_backend/internals/features/people/tutors/route"
	visitorRoute "coachku_backend/internals/features/people/visitors/route"
	userRoute "coachku_backend/internals/features/users/route"
	authmw "coachku_backend/internals/middlewares/auth"
)

// SetupRoutes mounts everything under /api:
//
//	/api/auth/*  public login surface
//	/api/a/*     admin + hr back office
//	/api/t/*     tutor self-service
//	/api/s/*     student self-service
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	api := app.Group("/api")

	userRoute.AuthRoutes(api, db, v)

	jwt := authmw.AuthJWT(authmw.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true})

	admin := api.Group("/a", jwt, authmw.RequireRoles(constants.RoleAdmin, constants.RoleHR))
	batchRoute.BatchAdminRoutes(admin, db, v)
	courseRoute.CourseAdminRoutes(admin, db, v)
	skillRoute.SkillAdminRoutes(admin, db, v)
	mappingRoute.BatchMappingAdminRoutes(admin, db, v)
	timetableRoute.TimetableAdminRoutes(admin, db, v)
	attendanceRoute.AttendanceAdminRoutes(admin, db, v)
	feeRoute.FeeAdminRoutes(admin, db, v)
	studentRoute.StudentAdminRoutes(admin, db, v)
	tutorRoute.TutorAdminRoutes(admin, db, v)
	visitorRoute.VisitorAdminRoutes(admin, db, v)
	feedbackRoute.FeedbackAdminRoutes(admin, db, v)

	tutor := api.Group("/t", jwt, authmw.RequireRoles(constants.RoleTutor))
	timetableRoute.TimetableTutorRoutes(tutor, db, v)
	feedbackRoute.FeedbackTutorRoutes(tutor, db, v)
	// tutors mark and review attendance for their batches with the same
	// handlers the back office uses
	attendanceRoute.AttendanceAdminRoutes(tutor, db, v)

	student := api.Group("/s", jwt, authmw.RequireRoles(constants.RoleStudent))
	studentRoute.StudentSelfRoutes(student, db, v)
	timetableRoute.TimetableStudentRoutes(student, db, v)
	attendanceRoute.AttendanceStudentRoutes(student, db, v)
	feeRoute.FeeStudentRoutes(student, db, v)
	feedbackRoute.FeedbackStudentRoutes(student, db, v)
}
