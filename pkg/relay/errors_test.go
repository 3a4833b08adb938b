package relay

import (
	"errors"
	"fmt"
	"testing"

	"mesmer-studio/mesmer/pkg/relay/types"
	"mesmer-studio/mesmer/pkg/upstream"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error",
			err:        &types.ValidationError{Field: "model", Message: "Model is required"},
			wantStatus: 400,
			wantMsg:    "Model is required",
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("parse: %w", &types.ValidationError{Field: "samples", Message: "At least one writing sample is required"}),
			wantStatus: 400,
			wantMsg:    "At least one writing sample is required",
		},
		{
			name:       "upstream status error",
			err:        &upstream.StatusError{StatusCode: 502, Body: "model not loaded"},
			wantStatus: 500,
			wantMsg:    "The inference server returned an error",
		},
		{
			name:       "transport error",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: 500,
			wantMsg:    "Failed to reach the inference server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := HandleError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if envelope.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", envelope.Message, tt.wantMsg)
			}
		})
	}
}

func TestHandleErrorNeverLeaksUpstreamBody(t *testing.T) {
	err := &upstream.StatusError{StatusCode: 500, Body: "secret internal detail"}
	_, envelope := HandleError(err)
	if envelope.Message == err.Error() || envelope.Message == err.Body {
		t.Errorf("upstream detail leaked to client: %q", envelope.Message)
	}
}
