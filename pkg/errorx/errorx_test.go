package errorx

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetCodeUnwrapsChain(t *testing.T) {
	base := New(CodeNotFound, "contact not found")
	wrapped := fmt.Errorf("load detail: %w", base)

	if got := GetCode(wrapped); got != CodeNotFound {
		t.Errorf("GetCode through fmt wrap = %d, want %d", got, CodeNotFound)
	}
	if got := GetCode(errors.New("plain")); got != CodeServerBusy {
		t.Errorf("GetCode on plain error = %d, want %d", got, CodeServerBusy)
	}
	if got := GetCode(Wrap(errors.New("dial tcp"), CodeDBError, "query")); got != CodeDBError {
		t.Errorf("GetCode on Wrap = %d, want %d", got, CodeDBError)
	}
}

func TestIsNotFound(t *testing.T) {
	cause := errors.New("record not found")
	if !IsNotFound(Wrap(cause, CodeNotFound, "find contact")) {
		t.Errorf("wrapped not-found code not recognized")
	}
	if IsNotFound(Wrap(cause, CodeDBError, "find contact")) {
		t.Errorf("db error misread as not found; only the code decides")
	}
	if IsNotFound(nil) {
		t.Errorf("nil reported as not found")
	}
}
