package engine

import (
	"testing"

	"go.uber.org/goleak"
)

// Every run joins its workers before returning; a leaked goroutine here is
// a join bug.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
