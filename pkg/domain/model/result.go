package model

import (
	"time"

	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

// DispatchResult is the outcome of one dispatch call across the bridge
type DispatchResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DispatchSucceeded returns a successful result
func DispatchSucceeded() DispatchResult {
	return DispatchResult{Success: true}
}

// DispatchFailed converts err into a failed result carrying its message
func DispatchFailed(err error) DispatchResult {
	return DispatchResult{Success: false, Error: err.Error()}
}

// StatusDisplayWindow is how long a composer status stays visible
const StatusDisplayWindow = 3 * time.Second

// Status is transient operator feedback shown by the composer
type Status struct {
	Kind types.StatusKind
	Text string
}

// IsError reports whether the status describes a failure
func (s *Status) IsError() bool {
	return s != nil && s.Kind == types.StatusError
}
