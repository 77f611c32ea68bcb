package core

// Logger is implemented by the logging services (console in DEV, Rollbar in
// PROD). Args may include an error, a map of extra data and the acting user.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
