package constants

// Application roles. Stored on users and carried in the JWT "role" claim.
const (
	RoleAdmin   = "admin"
	RoleHR      = "hr"
	RoleTutor   = "tutor"
	RoleStudent = "student"
)

// Employee sub-roles (the employees table serves tutors and HR staff).
const (
	EmployeeRoleTutor = "tutor"
	EmployeeRoleHR    = "hr"
	EmployeeRoleOther = "other"
)
