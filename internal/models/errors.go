package models

import "fmt"

// StoreError is a read or write failure against the document store.
// The operation may be retried on a later tick.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps err, returning nil when err is nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// TransportError is a failed delivery to a single chat.
type TransportError struct {
	ChatID string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: chat %s: %v", e.ChatID, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DataError marks a meeting that cannot be processed in this pass.
type DataError struct {
	MeetingID string
	Reason    string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("meeting %s: %s", e.MeetingID, e.Reason)
}
