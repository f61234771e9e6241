package service

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrChunkNotFound    = errors.New("chunk not found")
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
