package models

import "fmt"

// FailureReason classifies a FetchFailure.
type FailureReason string

const (
	FailureTransport FailureReason = "transport"
	FailureStatus    FailureReason = "status"
	FailureDecode    FailureReason = "decode"
	FailureMalformed FailureReason = "malformed"
	FailureBreaker   FailureReason = "breaker"
)

// FetchFailure is the only error a weather fetch surfaces to callers.
type FetchFailure struct {
	Reason  FailureReason
	Message string
	Err     error
}

func NewFetchFailure(reason FailureReason, err error, format string, args ...any) *FetchFailure {
	return &FetchFailure{Reason: reason, Message: fmt.Sprintf(format, args...), Err: err}
}

func (f *FetchFailure) Error() string {
	if f.Err == nil {
		return f.Message
	}
	return fmt.Sprintf("%s: %v", f.Message, f.Err)
}

func (f *FetchFailure) Unwrap() error {
	return f.Err
}
