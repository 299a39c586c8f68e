package serverutils

import (
	"testing"
)

type sampleRequest struct {
	Query     string `json:"query" validate:"required"`
	SessionId string `json:"session_id"`
}

func TestValidateRequest(t *testing.T) {
	if err := ValidateRequest(sampleRequest{Query: "cancel my flight"}); err != nil {
		t.Errorf("ValidateRequest() = %v, want nil", err)
	}

	err := ValidateRequest(sampleRequest{})
	if err == nil {
		t.Fatal("ValidateRequest() = nil, want error for missing required field")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("ValidateRequest() error type = %T, want *ValidationError", err)
	}
}
