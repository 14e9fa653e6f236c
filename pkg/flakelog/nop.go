package flakelog

// nopLogger discards everything. It is the default for library types so
// that importing the module never produces output unless asked to.
type nopLogger struct{}

// Nop returns a logger that discards all records.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func (n nopLogger) With(...any) Logger { return n }
