package domain

import "strings"

// Comment is a short message on a listing's thread. Comments are never
// edited or deleted client-side.
type Comment struct {
	AuthorID UserID
	Author   string
	Text     string
}

const minCommentLength = 3

// ValidateComment checks the text of a comment before it is submitted.
func ValidateComment(text string) error {
	if len(strings.TrimSpace(text)) < minCommentLength {
		return newValidationError(TooShort, "comment must be at least 3 characters long")
	}
	return nil
}
