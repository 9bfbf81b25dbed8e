package logger

// Discard is a Logger that drops every entry
var Discard Logger = discard{}

type discard struct{}

func (d discard) WithField(string, any) Logger { return d }
func (d discard) WithFields(map[string]any) Logger { return d }
func (d discard) WithError(error) Logger { return d }
func (discard) Trace(...any) {}
func (discard) Debug(...any) {}
func (discard) Info(...any) {}
func (discard) Warn(...any) {}
func (discard) Error(...any) {}
func (discard) Tracef(string, ...any) {}
func (discard) Debugf(string, ...any) {}
func (discard) Infof(string, ...any) {}
func (discard) Warnf(string, ...any) {}
func (discard) Errorf(string, ...any) {}
func (discard) SetLevel(Level) {}
func (discard) GetLevel() Level { return Disabled }
