package tracker

import "github.com/worktrack-app/worktrack/internal/apperr"

var (
	errNoUserName = &apperr.Error{
		Message: "a user name must be set before starting a session",
	}

	errSessionInProgress = &apperr.Error{
		Message: "a session is already in progress",
	}

	errNoActiveSession = &apperr.Error{
		Message: "no session is in progress",
	}

	errAlreadyPaused = &apperr.Error{
		Message: "the current session is already paused",
	}

	errNotPaused = &apperr.Error{
		Message: "the current session is not paused",
	}

	errFutureStart = &apperr.Error{
		Message: "sessions cannot start in the future",
	}

	errZeroDuration = &apperr.Error{
		Message: "the start and end times cannot be identical",
	}

	errDescriptionRequired = &apperr.Error{
		Message: "a work description is required",
	}
)
