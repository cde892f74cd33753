package core

// Logger interface for relocation logging
type Logger interface {
	Printf(format string, args ...interface{})
}
