package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
		credential  bool
		generalSoft bool
	}{
		{"nil", nil, false, false, false},
		{"404 status", &ProviderError{StatusCode: http.StatusNotFound, Body: "{}"}, true, false, true},
		{"not found text", errors.New("models/foo is not found"), true, false, true},
		{"unsupported text", errors.New("Unsupported method"), true, false, true},
		{"wrapped 404", fmt.Errorf("compose: %w", &ProviderError{StatusCode: 404}), true, false, true},
		{"invalid key body", &ProviderError{StatusCode: 400, Body: "API key not valid. Please pass a valid API key."}, false, true, false},
		{"401 status", &ProviderError{StatusCode: http.StatusUnauthorized, Body: "Incorrect API key provided"}, false, true, false},
		{"api key invalid code", errors.New("API_KEY_INVALID"), false, true, false},
		{"model mentioned", &ProviderError{StatusCode: 429, Body: "model is overloaded"}, false, false, true},
		{"decoration ignored", &ProviderError{Model: "x", StatusCode: 500, Body: "internal"}, false, false, false},
		{"timeout", errors.New("context deadline exceeded"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unavailable, IsModelUnavailable(tt.err), "unavailable")
			assert.Equal(t, tt.credential, IsInvalidCredential(tt.err), "credential")
			if tt.err != nil {
				assert.Equal(t, tt.generalSoft, isGeneralSoftFailure(tt.err), "general soft")
			}
		})
	}
}
