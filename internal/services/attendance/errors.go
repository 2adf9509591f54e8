package attendance

// AttendanceError is a custom error type for attendance-related errors
type AttendanceError string

// Error implements the error interface
func (e AttendanceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGuildNotSetUp       AttendanceError = "guild has not been set up"
	ErrAlreadyClockedIn    AttendanceError = "an open session already exists for this user"
	ErrNotClockedIn        AttendanceError = "no open session exists for this user"
	ErrSessionNotFound     AttendanceError = "session not found"
	ErrMemberNotFound      AttendanceError = "member not found"
	ErrMemberInactive      AttendanceError = "member has been removed"
	ErrProjectNotFound     AttendanceError = "project not found"
	ErrProjectArchived     AttendanceError = "project is archived"
	ErrNotProjectMember    AttendanceError = "user is not assigned to this project"
	ErrInvalidSessionState AttendanceError = "invalid session state"
	ErrConfirmationExpired AttendanceError = "confirmation deadline has passed"
	ErrNilConfig           AttendanceError = "config cannot be nil"
	ErrNilSessionRepo      AttendanceError = "session repository cannot be nil"
	ErrNilMemberRepo       AttendanceError = "member repository cannot be nil"
	ErrNilProjectRepo      AttendanceError = "project repository cannot be nil"
	ErrNilGuildRepo        AttendanceError = "guild repository cannot be nil"
	ErrNilClock            AttendanceError = "clock cannot be nil"
	ErrNilUUIDGenerator    AttendanceError = "UUID generator cannot be nil"
)
