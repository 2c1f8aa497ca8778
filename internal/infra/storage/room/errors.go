package room

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrRoomNumberTaken is returned when another room already uses the
	// requested room number
	ErrRoomNumberTaken = errors.New("room.repository: room number already in use")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
