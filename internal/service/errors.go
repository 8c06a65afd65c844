package service

// Conflict codes carried to the HTTP layer.
const (
	CodeDuplicateComplaint = "DUPLICATE_COMPLAINT"
	CodeDuplicateVote      = "DUPLICATE_VOTE"
	CodeVotingClosed       = "VOTING_CLOSED"
)

// ValidationError is a bad request: missing field, unknown vote type.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ConflictError rejects an operation the current state forbids. For
// duplicate complaints ExistingID points at the blocking record so the
// client can resubmit with force_create.
type ConflictError struct {
	Code       string
	Message    string
	ExistingID int64
}

func (e ConflictError) Error() string { return e.Message }

type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string { return e.Message }
