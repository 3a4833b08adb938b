package relay

import (
	"errors"

	"mesmer-studio/mesmer/pkg/relay/types"
	"mesmer-studio/mesmer/pkg/upstream"
)

// Generic client-facing messages for upstream failures. The upstream status
// and body are logged at the operation boundary but never forwarded to the
// client.
const (
	msgUpstreamStatus      = "The inference server returned an error"
	msgUpstreamUnreachable = "Failed to reach the inference server"
)

// HandleError maps an operation error to an HTTP status code and the uniform
// error envelope.
//
// Validation failures become 400 with their own message; everything else —
// upstream non-success statuses, transport failures, unexpected errors — is
// a 500 with a generic message.
func HandleError(err error) (int, *types.ErrorResponse) {
	var valErr *types.ValidationError
	if errors.As(err, &valErr) {
		return 400, types.NewErrorResponse(valErr.Message)
	}

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		return 500, types.NewErrorResponse(msgUpstreamStatus)
	}

	return 500, types.NewErrorResponse(msgUpstreamUnreachable)
}
