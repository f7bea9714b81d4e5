package handlers

import (
	"unicode/utf8"

	"lostfound/upload"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
)

const (
	errRequired           = "Title and location are required."
	errTitleTooLong       = "Title is too long (max 100 characters)."
	errDescriptionTooLong = "Description is too long (max 500 characters)."
	errInvalidFileType    = "Invalid file type. Allowed: png, jpg, jpeg, gif."
)

// validateReport applies the submission checks in order and returns the
// message for the first failure, or "" when the report is acceptable.
// Title and location are expected to be trimmed already; fileName is the
// client-supplied name, empty when no file was uploaded.
func validateReport(title, location, description, fileName string) string {
	if title == "" || location == "" {
		return errRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return errTitleTooLong
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return errDescriptionTooLong
	}
	if fileName != "" && !upload.AllowedExtension(fileName) {
		return errInvalidFileType
	}
	return ""
}
