package eeviewer

import (
	"errors"
	"fmt"
)

// RequestErrorMessage is shown for every transport failure.
const RequestErrorMessage = "Request error"

// Messages for payloads that cannot be charted.
const (
	UndefinedErrorMessage = "Undefined error"
	NoDataMessage         = "Sorry, there is no data available"
)

// ErrMapInit is returned when the base map cannot be created. The viewer
// is unusable afterwards.
var ErrMapInit = errors.New("eeviewer: map initialization failed")

// TransportError reports a request that failed at the network or HTTP layer.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("eeviewer: transport error: %s", e.Message)
	}
	return fmt.Sprintf("eeviewer: transport error: status %d: %s", e.Status, e.Message)
}

// ApplicationError reports a response that arrived but carries an error
// or cannot be interpreted.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string { return "eeviewer: " + e.Message }

// PreconditionError reports a user action that is invalid in the current state.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return "eeviewer: " + e.Message }

// Notice returns the text shown to the user for err.
func Notice(err error) string {
	var te *TransportError
	if errors.As(err, &te) {
		return RequestErrorMessage
	}
	var ae *ApplicationError
	if errors.As(err, &ae) {
		return ae.Message
	}
	var pe *PreconditionError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return RequestErrorMessage
}
