package dialogue

import "errors"

var (
	ErrMissingInput      = errors.New("symptom text is required")
	ErrInvalidTransition = errors.New("no follow-up question is pending at this index")
	ErrSessionFinalized  = errors.New("dialogue session is already finalized")
	ErrSessionNotFound   = errors.New("dialogue session not found")
)
