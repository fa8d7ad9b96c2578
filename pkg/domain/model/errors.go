package model

import "github.com/m-mizutani/goerr/v2"

// Error tags used to tell operator input problems apart from session problems
var (
	ErrTagValidation = goerr.NewTag("validation")
	ErrTagNotReady   = goerr.NewTag("not_ready")
)

// Sentinel errors for composer and dispatch operations
var (
	ErrChannelNotSelected    = goerr.New("Please select a channel first.", goerr.T(ErrTagValidation))
	ErrProspectFieldsMissing = goerr.New("Please fill in name and date.", goerr.T(ErrTagValidation))
	ErrSessionNotReady       = goerr.New("session is not ready", goerr.T(ErrTagNotReady))
	ErrDispatchInFlight      = goerr.New("a dispatch is already in progress")
)
