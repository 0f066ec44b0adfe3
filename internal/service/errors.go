package service

import "errors"

// Gate error taxonomy. Handlers translate these into status codes;
// anything else surfaces as a generic internal error.
var (
	ErrContentRequired = errors.New("content is required")
	ErrUnsafeName      = errors.New("name was flagged as inappropriate")
	ErrUnsafeContent   = errors.New("comment was flagged as inappropriate")
	ErrCommentNotFound = errors.New("comment not found")
	ErrAuthRequired    = errors.New("authentication required")
	ErrForbidden       = errors.New("not allowed to delete this comment")
	ErrModeratorOnly   = errors.New("moderator role required")
	ErrSafetyCheck     = errors.New("content safety check unavailable")
)
