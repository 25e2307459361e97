package checkout

import (
	"errors"
	"fmt"
)

// Service errors
var (
	ErrApplicationNotFound    = errors.New("application not found")
	ErrApplicationNotComplete = errors.New("application must be in 'complete' status before payment")
)

// IncompleteDocumentsError rejects checkout while any document is unfinished.
// It carries the offending ids so the caller can route the user back to them.
type IncompleteDocumentsError struct {
	IDs []string
}

func (e *IncompleteDocumentsError) Error() string {
	return fmt.Sprintf("all LPA documents must be complete before payment (%d incomplete)", len(e.IDs))
}
