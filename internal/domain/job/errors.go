package job

import "errors"

// Job domain errors
var (
	ErrJobNotFound    = errors.New("job posting not found")
	ErrJobClosed      = errors.New("job posting is closed")
	ErrAlreadyApplied = errors.New("already applied to this job posting")
)
