package ports

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTransport marks network failures talking to the catalog API.
	ErrTransport = errors.New("catalog transport failure")
	// ErrUpstreamStatus marks non-2xx catalog responses.
	ErrUpstreamStatus = errors.New("catalog upstream status")
	// ErrShapeMismatch marks payloads missing an expected node or holding the wrong kind.
	ErrShapeMismatch = errors.New("catalog shape mismatch")
	// ErrEmptyList marks a required list that was present but empty.
	ErrEmptyList = errors.New("catalog empty list")
	// ErrFieldAbsent marks a decoration whose list element or field is null or missing.
	ErrFieldAbsent = errors.New("catalog field absent")
)

// TransportError wraps the network error unchanged.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// StatusError carries the status code of a failed catalog call.
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d from %s", e.StatusCode, e.Path)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUpstreamStatus
}

// ShapeError names the JSON path that did not hold the expected node.
type ShapeError struct {
	Path []string
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	path := "$"
	if len(e.Path) > 0 {
		path = "$." + strings.Join(e.Path, ".")
	}
	if e.Got == "" {
		return fmt.Sprintf("%s: expected %s, not found", path, e.Want)
	}
	return fmt.Sprintf("%s: expected %s, got %s", path, e.Want, e.Got)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// EmptyListError reports a list that had to hold at least one element.
type EmptyListError struct {
	Field string
}

func (e *EmptyListError) Error() string {
	return fmt.Sprintf("%s: list is empty", e.Field)
}

func (e *EmptyListError) Is(target error) bool {
	return target == ErrEmptyList
}
