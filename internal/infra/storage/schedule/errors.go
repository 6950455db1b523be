package schedule

import "errors"

var (
	ErrBuildQuery = errors.New("failed to build query")
	ErrExecQuery  = errors.New("failed to execute query")
	ErrScanRow    = errors.New("failed to scan row")
)
