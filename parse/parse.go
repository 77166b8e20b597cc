// Package parse defines the result envelope shared by the parsers in this
// module: a two-level outcome made of a SUCCESS/FAIL status and a confidence
// grade, an optional payload, and a set of issue flags describing anything
// noteworthy about the interpretation.
package parse

// Status is the coarse outcome of a parse operation.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFail    Status = "FAIL"
)

// Confidence grades how certain an interpretation is. A parser emits
// Definite when the input admits a single reading, Probable when it picked
// the conventional reading among several valid ones, and Possible when the
// value is plausible but suspicious.
type Confidence string

const (
	Definite Confidence = "DEFINITE"
	Probable Confidence = "PROBABLE"
	Possible Confidence = "POSSIBLE"
)

// Issue is a diagnostic flag attached to a result. The set of values is
// owned by whichever parser emits them.
type Issue string

// Result is the outcome of parsing a single value. On failure the payload
// is usually the zero value, except for parsers that report a best-effort
// payload alongside the failure (see FailWithPayload).
type Result[T any] struct {
	Status     Status
	Confidence Confidence
	Payload    T
	Issues     []Issue
}

// Success builds a successful result with the given confidence.
func Success[T any](c Confidence, payload T, issues ...Issue) Result[T] {
	return Result[T]{
		Status:     StatusSuccess,
		Confidence: c,
		Payload:    payload,
		Issues:     issues,
	}
}

// Fail builds a failed result with no payload.
func Fail[T any](issues ...Issue) Result[T] {
	return Result[T]{
		Status: StatusFail,
		Issues: issues,
	}
}

// FailWithPayload builds a failed result that still carries a payload, for
// callers that want to inspect the rejected value.
func FailWithPayload[T any](payload T, issues ...Issue) Result[T] {
	return Result[T]{
		Status:  StatusFail,
		Payload: payload,
		Issues:  issues,
	}
}

// Successful reports whether the result carries a usable payload.
func (r Result[T]) Successful() bool {
	return r.Status == StatusSuccess
}

// HasIssue reports whether the given issue was flagged on this result.
func (r Result[T]) HasIssue(issue Issue) bool {
	for _, i := range r.Issues {
		if i == issue {
			return true
		}
	}
	return false
}
