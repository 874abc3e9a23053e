// file: internals/constants/role_messages.go
package constants

// Role-gate messages shown when the caller's role does not fit the group.
const (
	MsgOnlyAdmins        = "Only admins may access this resource."
	MsgOnlyStudents      = "Only students may access this resource."
	MsgOnlyProfessionals = "Only professionals may access this resource."
	MsgOnlyPatients      = "Only patients may access this resource."
)
