package client

import (
	"log/slog"
	"sync"
)

// NoticeLevel is the severity of a user-facing notification
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

func (l NoticeLevel) String() string {
	switch l {
	case NoticeInfo:
		return "info"
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "unknown"
	}
}

// PlatformEffects are the UI side effects the client triggers. The client never owns the UI;
// the application supplies an implementation at construction.
//
// Persistence of session state is the session.Store capability and is injected into the session, not here.
type PlatformEffects interface {
	// Notify shows a message to the user (toast, message box, stderr line)
	Notify(level NoticeLevel, message string)

	// NavigateToLogin sends the user to the login entry point after the session was invalidated
	NavigateToLogin()

	// SetLoadingVisible shows or hides the loading indicator
	SetLoadingVisible(visible bool)
}

// NopEffects ignores every effect
type NopEffects struct{}

func (NopEffects) Notify(NoticeLevel, string) {}
func (NopEffects) NavigateToLogin()           {}
func (NopEffects) SetLoadingVisible(bool)     {}

// LogEffects renders effects as log records, for command line and headless use.
// The loading indicator is tracked as a counter so overlapping calls are logged once per transition.
type LogEffects struct {
	Logger *slog.Logger

	// OnLogin, when set, is called after the login prompt has been logged
	OnLogin func()

	mu      sync.Mutex
	loading int
}

func (e *LogEffects) Notify(level NoticeLevel, message string) {
	switch level {
	case NoticeError:
		e.Logger.Error(message)
	case NoticeWarning:
		e.Logger.Warn(message)
	default:
		e.Logger.Info(message)
	}
}

func (e *LogEffects) NavigateToLogin() {
	e.Logger.Warn("login required", slog.String("hint", "run the login command to authenticate again"))
	if e.OnLogin != nil {
		e.OnLogin()
	}
}

func (e *LogEffects) SetLoadingVisible(visible bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if visible {
		e.loading++
		if e.loading == 1 {
			e.Logger.Debug("loading")
		}
		return
	}
	if e.loading > 0 {
		e.loading--
		if e.loading == 0 {
			e.Logger.Debug("loading done")
		}
	}
}
