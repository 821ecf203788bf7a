package model

import "errors"

var (
	// ErrNotFound indicates a missing record or one outside the caller's
	// ownership scope.
	ErrNotFound = errors.New("not found")
	// ErrNameTaken indicates a registration conflict on the username.
	ErrNameTaken = errors.New("username already taken")
	// ErrNotAllowed indicates the identity is not on the access allowlist.
	ErrNotAllowed = errors.New("not allowed")
	// ErrInvalidLogin indicates failed credential verification.
	ErrInvalidLogin = errors.New("invalid login")
	// ErrSubjectRequired indicates a post with an empty subject.
	ErrSubjectRequired = errors.New("subject is required")
	// ErrCommentRequired indicates a comment with empty text.
	ErrCommentRequired = errors.New("comment is required")
)
