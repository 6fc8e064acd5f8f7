package models

import (
	"strings"
	"unicode/utf8"
)

const maxPromptLength = 2000

// PostForm is the request body for drafting and publishing a post
type PostForm struct {
	UserID int64  `json:"localKey"`
	Prompt string `json:"prompt"`
}

// Validate validates the post form data
func (f *PostForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if f.UserID <= 0 {
		errs = append(errs, ValidationError{Field: "localKey", Message: "localKey must be a positive integer"})
	}

	prompt := strings.TrimSpace(f.Prompt)
	if prompt == "" {
		errs = append(errs, ValidationError{Field: "prompt", Message: "prompt is required"})
	}
	if utf8.RuneCountInString(prompt) > maxPromptLength {
		errs = append(errs, ValidationError{Field: "prompt", Message: "prompt must be at most 2000 characters"})
	}

	return errs
}

// PublishedPost is the result of a successful publish; it is never persisted
type PublishedPost struct {
	ID   string `json:"publishedPostId"`
	Text string `json:"text"`
}
