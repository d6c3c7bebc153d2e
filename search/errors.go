package search

import "github.com/pkg/errors"

// invariantError reports a VerifyInvariant mismatch, wrapped with
// github.com/pkg/errors so the failure carries a stack trace when printed
// in a debug build.
func invariantError(idx, got, want int) error {
	return errors.Errorf("node %d: visits = %d, want 1 + sum(children) = %d", idx, got, want)
}
