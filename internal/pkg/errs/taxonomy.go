package errs

// Error taxonomy shared by every service. Handlers translate these into
// HTTP status codes and machine codes in httperr.
var (
	// Credential problems, surfaced as 401
	ErrAuthMissing        = New("authorization token is missing")
	ErrAuthExpired        = New("token expired")
	ErrAuthInvalid        = New("invalid token")
	ErrInvalidCredentials = New("invalid email or password")

	ErrForbidden       = New("forbidden")
	ErrNotFound        = New("not found")
	ErrInvalidArgument = New("invalid argument")

	ErrUpstreamUnavailable = New("upstream unavailable")

	ErrConflict          = New("conflict")
	ErrAlreadyAssigned   = New("request already assigned")
	ErrAlreadyCompleted  = New("assignment already completed")
	ErrNoLongerAvailable = New("request no longer available")
	ErrInvalidTransition = New("invalid status transition")
	ErrEmailTaken        = New("email already registered")
)

var conflicts = []error{
	ErrConflict,
	ErrAlreadyAssigned,
	ErrAlreadyCompleted,
	ErrNoLongerAvailable,
	ErrInvalidTransition,
	ErrEmailTaken,
}

// IsConflict reports whether err belongs to the conflict family.
// Marks cannot be nested, so the family is checked member by member.
func IsConflict(err error) bool {
	for _, c := range conflicts {
		if Is(err, c) {
			return true
		}
	}
	return false
}
