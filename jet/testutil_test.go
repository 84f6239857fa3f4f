package jet_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireFault runs fn and requires that it panics with an error wrapping
// the given sentinel. Shape/index violations in this package are programmer
// errors surfaced as *Fault panics, so tests recover and match via ErrorIs.
func requireFault(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a fault panic, got none")
		err, ok := r.(error)
		require.True(t, ok, "panic payload must be an error, got %T", r)
		require.ErrorIs(t, err, sentinel, "fault must wrap the sentinel")
	}()
	fn()
}

// approxEqual is the shared floating-point tolerance for derivative checks.
const approxEqual = 1e-12
