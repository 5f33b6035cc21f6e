package core

// error_messages.go maps technical errors to user-friendly messages with
// codes for support reference. Users quote the code when asking for help.
//
//	DATA001 - Damaged catalog: a row could not be read as a suit
//	          Action: Fix the reported line, or delete the file to regenerate sample data
//
//	FILE001 - Missing catalog: the catalog file could not be found
//	          Action: Check the catalog path
//
//	FILE002 - Access denied: the catalog file could not be read or written
//	          Action: Check the file permissions
//
//	FILE003 - Invalid header: the first line is not code,type,durability
//	          Action: Restore the header line
//
//	FILE004 - Invalid CSV: the file is not comma-separated text
//	          Action: Save the file as UTF-8 CSV
//
//	INP001  - Invalid code: the code is not 6 digits with first digit not 0
//	          Action: Enter a code such as 123456
//
//	ERR000  - Anything else

import (
	"encoding/csv"
	"errors"
	"io/fs"
)

// UserError is an error rendered for the person at the terminal.
type UserError struct {
	Code    string // Support reference, e.g. "DATA001"
	Message string // What went wrong
	Action  string // What to do about it
}

func (e UserError) Error() string {
	return e.String()
}

// String renders the message followed by its code.
func (e UserError) String() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Message + " (" + e.Code + ")"
}

type errorMapping struct {
	match func(error) bool
	user  UserError
}

func is(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

func isCSVParseError(err error) bool {
	var pe *csv.ParseError
	return errors.As(err, &pe)
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{is(ErrDataCorruption), UserError{
		Code:    "DATA001",
		Message: "Catalog file is damaged",
		Action:  "Fix the reported line, or delete the file to regenerate sample data",
	}},
	{is(ErrInvalidHeader), UserError{
		Code:    "FILE003",
		Message: "Catalog header must be code,type,durability",
		Action:  "Restore the header line",
	}},
	{isCSVParseError, UserError{
		Code:    "FILE004",
		Message: "Catalog file is not valid CSV",
		Action:  "Save the file as UTF-8 CSV",
	}},
	{is(fs.ErrNotExist), UserError{
		Code:    "FILE001",
		Message: "Catalog file not found",
		Action:  "Check the catalog path",
	}},
	{is(fs.ErrPermission), UserError{
		Code:    "FILE002",
		Message: "Catalog file cannot be accessed",
		Action:  "Check the file permissions",
	}},
	{is(ErrInvalidCode), UserError{
		Code:    "INP001",
		Message: "Invalid suit code format (must be 6 digits with first digit not 0)",
		Action:  "Enter a code such as 123456",
	}},
}

// CodeUnexpected is the code MapError uses for errors it does not recognize.
const CodeUnexpected = "ERR000"

var defaultUserError = UserError{
	Code:    CodeUnexpected,
	Message: "An unexpected error occurred",
	Action:  "Check the log output for details",
}

// MapError converts a technical error to a user-friendly message.
// Returns the zero UserError for nil.
func MapError(err error) UserError {
	if err == nil {
		return UserError{}
	}
	for _, m := range errorMappings {
		if m.match(err) {
			return m.user
		}
	}
	return defaultUserError
}
