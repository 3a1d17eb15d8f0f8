package models

import "widget-currency/internal"

// UserError is a business-rule failure shown to the user as is.
type UserError struct {
	Code    string
	Message string
	Field   internal.Field
}

func (e *UserError) Error() string { return e.Message }

func NewUserError(code, msg string, field internal.Field) *UserError {
	return &UserError{Code: code, Message: msg, Field: field}
}
