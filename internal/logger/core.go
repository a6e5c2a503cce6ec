package logger

import (
	"go.uber.org/zap/zapcore"
)

// DBCore is a custom Zap Core that intercepts event logs
type DBCore struct {
	zapcore.Core
	writer *DBLogWriter
}

// NewDBCore wraps an existing core (the console logger) and adds collection logging
func NewDBCore(baseCore zapcore.Core, writer *DBLogWriter) zapcore.Core {
	return &DBCore{
		Core:   baseCore,
		writer: writer,
	}
}

// Write is called for every log entry
func (c *DBCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	var action, actorID string
	extra := map[string]interface{}{}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
		switch f.Key {
		case "action":
			action = f.String
		case "actor_id":
			actorID = f.String
		default:
			if v, ok := enc.Fields[f.Key]; ok {
				extra[f.Key] = v
			}
		}
	}
	if len(extra) == 0 {
		extra = nil
	}

	c.writer.AddLog(LogEntry{
		Level:   entry.Level,
		Message: entry.Message,
		Action:  action,
		ActorID: actorID,
		Extra:   extra,
		Caller:  entry.Caller.Function,
	})

	// Still print to the underlying console core.
	return c.Core.Write(entry, fields)
}

// Check decides if we should log this level
func (c *DBCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}
