package config

import "github.com/worktrack-app/worktrack/internal/apperr"

var (
	errInitFailed = &apperr.Error{
		Message: "Unable to initialise the tracker configuration",
	}

	errNameRequired = &apperr.Error{
		Message: "A name is required",
	}
)
