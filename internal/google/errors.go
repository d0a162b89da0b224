package google

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// UpstreamError is a failed Directory API call. StatusCode, Message and Reason
// are taken verbatim from the API response; StatusCode is 0 when the request
// never got an HTTP answer.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Message    string
	Reason     string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("%s: google api error %d: %s", e.Operation, e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstreamError(operation string, err error) error {
	if err == nil {
		return nil
	}
	var existing *UpstreamError
	if errors.As(err, &existing) {
		return err
	}

	ue := &UpstreamError{Operation: operation, Message: err.Error(), Err: err}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		ue.StatusCode = apiErr.Code
		if apiErr.Message != "" {
			ue.Message = apiErr.Message
		}
		if len(apiErr.Errors) > 0 {
			ue.Reason = apiErr.Errors[0].Reason
		}
	}
	return ue
}
