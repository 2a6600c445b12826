package errors

// Convenience functions for common error patterns

// Config errors

func ConfigInvalid(path string, cause error) *DocConfError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration could not be loaded").
		WithContext("path", path)
}

func ConfigExists(path string) *DocConfError {
	return New(CategoryConfig, SeverityFatal, "configuration file already exists (use --force to overwrite)").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *DocConfError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// File errors

func TemplateNotFound(path string, cause error) *DocConfError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "doxygen template not found").
		WithContext("path", path)
}

func FileWriteFailed(path string, cause error) *DocConfError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "file write failed").
		WithContext("path", path)
}

// Tool errors

func DoxygenFailed(command string, cause error) *DocConfError {
	return Wrap(cause, CategoryDoxygen, SeverityWarning, "doxygen run failed").
		WithContext("command", command)
}

func ConfRenderFailed(cause error) *DocConfError {
	return Wrap(cause, CategorySphinx, SeverityFatal, "conf.py rendering failed")
}

// Internal errors

func InternalError(message string, cause error) *DocConfError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
