package llm

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
)

// ErrNoSupportedModel is returned when every candidate model was rejected as unavailable.
var ErrNoSupportedModel = errors.New("no_supported_model_for_api_version")

// ProviderError is a non-2xx answer from a model provider.
type ProviderError struct {
	Provider   string
	Model      string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error (model: %s, status: %d): %s", e.Provider, e.Model, e.StatusCode, e.Body)
}

var (
	unavailablePattern       = regexp.MustCompile(`(?i)404|not found|unsupported`)
	modelMentionPattern      = regexp.MustCompile(`(?i)model`)
	invalidCredentialPattern = regexp.MustCompile(`(?i)API key not valid|API_KEY_INVALID|missing api key|no api key`)
)

// IsModelUnavailable reports a soft failure: the model id does not exist for this
// account or API version, so the next candidate is worth trying.
func IsModelUnavailable(err error) bool {
	if err == nil || IsInvalidCredential(err) {
		return false
	}
	var pe *ProviderError
	if errors.As(err, &pe) && pe.StatusCode == http.StatusNotFound {
		return true
	}
	return unavailablePattern.MatchString(errorText(err))
}

// IsInvalidCredential reports whether the provider rejected the API key.
func IsInvalidCredential(err error) bool {
	if err == nil {
		return false
	}
	var pe *ProviderError
	if errors.As(err, &pe) && pe.StatusCode == http.StatusUnauthorized {
		return true
	}
	return invalidCredentialPattern.MatchString(err.Error())
}

// isGeneralSoftFailure is the wider class used by the ungrounded fallback:
// anything that mentions a model is treated as "try the next one".
func isGeneralSoftFailure(err error) bool {
	if IsModelUnavailable(err) {
		return true
	}
	return !IsInvalidCredential(err) && modelMentionPattern.MatchString(errorText(err))
}

// errorText is the provider's own message, without our "(model: x)" decoration.
func errorText(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Body
	}
	return err.Error()
}
