package config

import "net/url"

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if cfg.API.BaseURL == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	} else if u, err := url.Parse(cfg.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: "must be an absolute URL (example: http://localhost:8000)",
			Value:   cfg.API.BaseURL,
			Wrapped: ErrInvalidConfig,
		})
	}

	if cfg.API.Timeout <= 0 {
		errs = append(errs, ValidationError{
			Field:   "api.timeout",
			Message: "must be positive",
			Value:   cfg.API.Timeout,
			Wrapped: ErrInvalidConfig,
		})
	}

	if cfg.UI.PageSize < 1 || cfg.UI.PageSize > 100 {
		errs = append(errs, ValidationError{
			Field:   "ui.page_size",
			Message: "must be between 1 and 100",
			Value:   cfg.UI.PageSize,
			Wrapped: ErrInvalidConfig,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
