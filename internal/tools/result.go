package tools

import (
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/google"
)

// Error kinds reported in the "error" field of a failed tool result.
const (
	KindValidation           = "validation_error"
	KindConfirmationRequired = "confirmation_required"
	KindUpstream             = "upstream_error"
	KindInternal             = "internal_error"
)

// ErrorBody is the JSON payload of a failed tool result.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Status  int    `json:"status,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

var upstreamHints = map[int]string{
	400: "The request was rejected as invalid. Check the argument values.",
	403: "Insufficient permissions. Check the domain-wide delegation of the service account and the admin privileges of the impersonated user.",
	404: "Resource not found. Check the email address, group or org unit path.",
	409: "Conflict. The user, alias or membership may already exist.",
	429: "Rate limit exceeded. Wait a few seconds before trying again.",
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// classify maps an error onto the body reported to the caller. Upstream
// status and message are forwarded unchanged.
func classify(err error) ErrorBody {
	var validation *ValidationError
	var confirm *ConfirmationRequiredError
	var upstream *google.UpstreamError
	switch {
	case errors.As(err, &validation):
		return ErrorBody{Error: KindValidation, Message: validation.Message, Field: validation.Field}
	case errors.As(err, &confirm):
		return ErrorBody{
			Error:   KindConfirmationRequired,
			Message: confirm.Error(),
			Hint:    "Deleted accounts can be restored for 20 days only. Repeat the call with confirm=true to proceed.",
		}
	case errors.As(err, &upstream):
		return ErrorBody{
			Error:   KindUpstream,
			Message: upstream.Message,
			Status:  upstream.StatusCode,
			Reason:  upstream.Reason,
			Hint:    upstreamHints[upstream.StatusCode],
		}
	default:
		return ErrorBody{Error: KindInternal, Message: err.Error()}
	}
}

func errorResult(err error) *mcp.CallToolResult {
	data, merr := json.MarshalIndent(classify(err), "", "  ")
	if merr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(data))
}
