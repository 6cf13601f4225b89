package bubblegum

import (
	"errors"
	"fmt"
)

// ErrInvalidKeypair reports a payer secret key that could not be decoded.
// It is detected before any network call; correct the input and retry.
var ErrInvalidKeypair = errors.New("bubblegum: invalid payer keypair")

// SubmitError is a failure from the RPC endpoint or the on-chain program:
// endpoint unreachable, instruction rejected, blockhash expired. Reason is
// forwarded verbatim. A retry must rebuild the transaction; payloads are
// never reused across calls.
type SubmitError struct {
	Op     string
	Reason string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("bubblegum: %s: %s", e.Op, e.Reason)
}

// ParseError reports a success payload that was not a JSON object. This is
// a defect in the submitter, not a caller error; Raw carries the payload
// for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bubblegum: malformed result payload: %v (raw: %q)", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }
