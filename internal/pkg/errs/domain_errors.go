package errs

// Category markers. Domain and usecase sentinels are marked with one of these
// so transport layers can map whole families of errors at once.
var (
	ErrDomainValidation = New("domain validation error")
	ErrAccessDenied     = New("access denied")
)

// NewValidation creates a sentinel that matches ErrDomainValidation and keeps msg as its text.
func NewValidation(msg string) error {
	return Mark(New(msg), ErrDomainValidation)
}

// NewAccessDenied creates a sentinel that matches ErrAccessDenied.
func NewAccessDenied(msg string) error {
	return Mark(New(msg), ErrAccessDenied)
}
