package services

import "errors"

// Every failure below is scoped to the single requested operation; none of
// them is fatal to the process. Conflict errors (ErrAlreadyVoted) are normal
// negative outcomes, and the state-guard errors are not retryable because
// retrying cannot change the state.
var (
	ErrUnauthorized      = errors.New("actor lacks the required capability")
	ErrNotConfigured     = errors.New("guild is not configured")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyVoted      = errors.New("vote is already recorded and locked")
	ErrElectionClosed    = errors.New("election is closed")
	ErrVotingNotOpen     = errors.New("voting is not open")
	ErrNominationsClosed = errors.New("nominations are closed")
	ErrMotionNotDraft    = errors.New("motion is not in draft")
)
