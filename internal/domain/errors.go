package domain

import "errors"

var (
	ErrCommentNotFound    = errors.New("comment not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrInvalidParent      = errors.New("parent comment not found or does not belong to this post")
	ErrNotCommentAuthor   = errors.New("only the author can modify this comment")
	ErrEditWindowExpired  = errors.New("comment can no longer be edited")
	ErrNotPostAuthor      = errors.New("only the author can modify this post")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrContentEmpty       = errors.New("content must not be empty")
	ErrContentTooLong     = errors.New("content exceeds maximum length")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrReportNotFound)
}

func IsPermission(err error) bool {
	return errors.Is(err, ErrNotCommentAuthor) ||
		errors.Is(err, ErrEditWindowExpired) ||
		errors.Is(err, ErrNotPostAuthor)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidParent) ||
		errors.Is(err, ErrContentEmpty) ||
		errors.Is(err, ErrContentTooLong)
}
