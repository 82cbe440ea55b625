package services

import "errors"

// Error kinds. Handlers map them to HTTP statuses with errors.Is; the
// message of the concrete *Error is safe to show to users.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func invalid(msg string) error     { return &Error{kind: ErrInvalidInput, msg: msg} }
func unauthorized(msg string) error { return &Error{kind: ErrUnauthorized, msg: msg} }
func forbidden(msg string) error    { return &Error{kind: ErrForbidden, msg: msg} }
func notFound(msg string) error     { return &Error{kind: ErrNotFound, msg: msg} }
func conflict(msg string) error     { return &Error{kind: ErrConflict, msg: msg} }

var (
	ErrEmailInUse         error = &Error{kind: ErrConflict, msg: MsgEmailInUse}
	ErrInvalidCredentials error = &Error{kind: ErrUnauthorized, msg: MsgInvalidCredentials}
)

func invalidTransition(from, to string) error {
	return &Error{kind: ErrInvalidTransition, msg: "invalid transition from " + from + " to " + to}
}

// User-facing messages shared with the HTTP layer and tests.
const (
	MsgEmailInUse         = "Email already in use"
	MsgInvalidCredentials = "Invalid credentials"
	MsgNotAuthenticated   = "Not authenticated"
	MsgCampaignNotFound   = "Campaign not found"
	MsgRequestNotFound    = "Request not found"
	MsgMessageNotFound    = "Message not found"
	MsgInfluencerNotFound = "Influencer not found"
)
