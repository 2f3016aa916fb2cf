package store

import "errors"

// Sentinel errors shared by the store layer. Repository methods wrap them
// with operation context so callers can branch with errors.Is.
var (
	// ErrExecutingQuery indicates a query or statement failed to execute.
	ErrExecutingQuery = errors.New("error executing query")
	// ErrScanningRow indicates a result row could not be scanned.
	ErrScanningRow = errors.New("error scanning row")
	// ErrScanningRows indicates an error surfaced during rows iteration.
	ErrScanningRows = errors.New("error iterating rows")
	// ErrOpeningTransaction indicates a transaction could not be started.
	ErrOpeningTransaction = errors.New("error opening transaction")
	// ErrNotFound indicates the requested record does not exist locally.
	ErrNotFound = errors.New("record not found")
	// ErrNoToken indicates no API token has been saved yet.
	ErrNoToken = errors.New("no saved token")
)
