package service

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAttemptPersist   = errors.New("failed to persist attempt")
	ErrBadgeQuery       = errors.New("failed to query badges")
	ErrBadgeInsert      = errors.New("failed to insert badge")
	ErrProfileUpdate    = errors.New("failed to update profile")
	ErrSubmissionFailed = errors.New("failed to submit quiz answer")
)
