package cderr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUpstreamError  = "UPSTREAM_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusBadRequest, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrUpstream is returned when a confirmed-remote mutation could not be
	// applied upstream and the local optimistic state has been rolled back.
	ErrUpstream = New(fiber.StatusBadGateway, CodeUpstreamError, "upstream store rejected the mutation; local state has been reverted")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type ClubDeskError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *ClubDeskError {
	return &ClubDeskError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg returns a copy of e with a formatted message. The receiver is a value
// on purpose: predeclared errors stay immutable.
func (e ClubDeskError) Msg(format string, parts ...interface{}) *ClubDeskError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e ClubDeskError) WithExtras(extras Extras) *ClubDeskError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *ClubDeskError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *ClubDeskError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
