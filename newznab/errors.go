package newznab

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type apiError struct {
	Code        int
	Description string
}

func (e apiError) Error() string {
	return e.Description
}

var (
	ErrIncorrectUserCreds     = apiError{100, "Incorrect user credentials"}
	ErrAccountSuspended       = apiError{101, "Account suspended"}
	ErrInsufficientPrivs      = apiError{102, "Insufficient privileges/not authorized"}
	ErrRegistrationDenied     = apiError{103, "Registration denied"}
	ErrRegistrationsAreClosed = apiError{104, "Registrations are closed"}
	ErrEmailAddressTaken      = apiError{105, "Invalid registration (Email Address Taken)"}
	ErrEmailAddressBadFormat  = apiError{106, "Invalid registration (Email Address Bad Format)"}
	ErrRegistrationFailed     = apiError{107, "Registration Failed (Data error)"}
	ErrMissingParameter       = apiError{200, "Missing parameter"}
	ErrIncorrectParameter     = apiError{201, "Incorrect parameter"}
	ErrNoSuchFunction         = apiError{202, "No such function. (Function not defined in this specification)."}
	ErrFunctionNotAvailable   = apiError{203, "Function not available. (Optional function is not implemented)."}
	ErrNoSuchItem             = apiError{300, "No such item."}
	ErrItemAlreadyExists      = apiError{310, "Item already exists."}
	ErrUnknownError           = apiError{900, "Unknown error"}
	ErrAPIDisabled            = apiError{910, "API Disabled"}
)

// ErrBadRequest matches every error caused by a malformed or insufficient request.
var ErrBadRequest = errors.New("bad request")

// RequestError describes a request the client can correct.
type RequestError struct {
	Param  string
	Reason apiError
	Detail string
}

func (e *RequestError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s", e.Reason.Description, e.Detail)
	}
	return fmt.Sprintf("%s %q: %s", e.Reason.Description, e.Param, e.Detail)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrBadRequest
}

// Code is the newznab error code that should be reported for the error.
func (e *RequestError) Code() apiError {
	return e.Reason
}

func MissingParameter(param, detail string) error {
	return &RequestError{Param: param, Reason: ErrMissingParameter, Detail: detail}
}

func IncorrectParameter(param, detail string) error {
	return &RequestError{Param: param, Reason: ErrIncorrectParameter, Detail: detail}
}

func NoSuchFunction(function string) error {
	return &RequestError{Param: "t", Reason: ErrNoSuchFunction, Detail: fmt.Sprintf("unknown function %q", function)}
}

// IsBadRequest checks whether err was caused by the request itself.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// ErrorResponse is the newznab error document.
type ErrorResponse struct {
	XMLName     struct{} `xml:"error"`
	Code        int      `xml:"code,attr"`
	Description string   `xml:"description,attr"`
}

// Error writes a newznab error document with the given http status.
func Error(c *gin.Context, status int, description string, e apiError) {
	resp := ErrorResponse{
		Code:        e.Code,
		Description: description,
	}
	x, mErr := xml.MarshalIndent(resp, "", "  ")
	if mErr != nil {
		http.Error(c.Writer, mErr.Error(), http.StatusInternalServerError)
		return
	}
	c.Header("Content-Type", "application/xml")
	c.Writer.WriteHeader(status)
	_, _ = c.Writer.Write([]byte(xml.Header))
	_, _ = c.Writer.Write(x)
}
