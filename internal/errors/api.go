// Package errors provides comprehensive error types for kgr.
// This file contains Knowledge Graph API and network-related errors.
package errors

import (
	"fmt"
	"time"
)

// API-related error constructors.

// MissingAPIKey creates an error for a missing Knowledge Graph API key.
func MissingAPIKey() *KGRError {
	return &KGRError{
		Kind:    ErrAuth,
		Message: "no API key provided for the Google Knowledge Graph",
		Suggestion: `Provide an API key one of these ways:

  1. Flag:        kgr --api-key <KEY> ...
  2. Environment: export KGR_API_KEY=<KEY>   (GKG_API_KEY also works)
  3. Config file: api.key in .kgr/config.yaml`,
		DocLink: "https://developers.google.com/knowledge-graph/prereqs",
	}
}

// InvalidAPIKey creates an error for a rejected API key.
func InvalidAPIKey(cause error) *KGRError {
	return &KGRError{
		Kind:    ErrAuth,
		Message: "the Google Knowledge Graph rejected the API key",
		Cause:   cause,
		Suggestion: `Verify the key is valid and the Knowledge Graph Search API
is enabled for its project in the Google Cloud console.`,
		DocLink: "https://developers.google.com/knowledge-graph/prereqs",
	}
}

// QuotaExceeded creates an error for API rate limiting.
func QuotaExceeded(retryAfter time.Duration) *KGRError {
	suggestion := "Wait before retrying."
	if retryAfter > 0 {
		suggestion = fmt.Sprintf("Wait %v before retrying.", retryAfter.Round(time.Second))
	}
	return &KGRError{
		Kind:    ErrRateLimit,
		Message: "Knowledge Graph API quota exceeded",
		Suggestion: suggestion + `

Google rate-limits requests per second (undocumented, ~1000 req/s).
kgr pauses automatically after long unattended streaks; lowering
breaker.limit in .kgr/config.yaml makes the pauses more frequent.`,
	}
}

// SearchFailed creates an error for a failed Knowledge Graph query.
func SearchFailed(query string, cause error) *KGRError {
	return &KGRError{
		Kind:    ErrSearch,
		Message: fmt.Sprintf("Knowledge Graph search failed for %q", query),
		Cause:   cause,
		Details: map[string]string{
			"query": query,
		},
	}
}

// NetworkUnavailable creates an error for network connectivity issues.
func NetworkUnavailable(host string, cause error) *KGRError {
	err := &KGRError{
		Kind:    ErrNetwork,
		Message: "network unavailable",
		Cause:   cause,
		Suggestion: `Check your network connection:

  1. Verify internet connectivity
  2. Check if VPN or firewall is blocking access
  3. Try: curl -I https://kgsearch.googleapis.com

If you're behind a proxy:
  export HTTP_PROXY=http://proxy:port
  export HTTPS_PROXY=http://proxy:port`,
	}
	if host != "" {
		err.Details = map[string]string{"host": host}
	}
	return err
}

// OperationTimeout creates a generic timeout error.
func OperationTimeout(operation string, elapsed time.Duration) *KGRError {
	return &KGRError{
		Kind:    ErrTimeout,
		Message: fmt.Sprintf("%s timed out after %v", operation, elapsed.Round(time.Second)),
		Details: map[string]string{
			"operation": operation,
			"elapsed":   elapsed.Round(time.Second).String(),
		},
		Suggestion: "The operation took too long. Check if the system is overloaded or try again later.",
	}
}

// RunAborted creates an error for a user-cancelled interactive run.
func RunAborted() *KGRError {
	return &KGRError{
		Kind:    ErrAborted,
		Message: "run aborted by user",
		Suggestion: `Values examined so far were kept.

Save them with --save-processed-values and feed the file back
via --ignore-values-file to resume where you left off.`,
	}
}
