package logger

import (
	"context"
	"fmt"
	"time"

	common_models "go-campfire/internal/common/models"
	"go-campfire/internal/config"
	"go-campfire/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to the worker
type LogEntry struct {
	Level   zapcore.Level
	Message string
	Action  string
	ActorID string
	Extra   map[string]interface{}
	Caller  string
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	db      *mongo.Database
	logChan chan LogEntry
	appId   string
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(mongodb *database.MongodbDB, cfg *config.Config) *DBLogWriter {
	writer := &DBLogWriter{
		db:      mongodb.DB,
		logChan: make(chan LogEntry, 1000),
		appId:   cfg.AppId,
	}

	go writer.processLogs()

	return writer
}

// AddLog is called by the Zap hook
func (w *DBLogWriter) AddLog(entry LogEntry) {
	select {
	case w.logChan <- entry:
	default:
		// Channel full: drop rather than block the request path.
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

func (w *DBLogWriter) processLogs() {
	for entry := range w.logChan {
		action := entry.Action
		if action == "" {
			action = entry.Message
		}

		logRecord := common_models.Log{
			Action:       action,
			Message:      entry.Message,
			ActorID:      entry.ActorID,
			LogLevelId:   mapLevelToInt(entry.Level),
			Extra:        entry.Extra,
			CreatedOnUtc: time.Now().UTC(),
		}

		// Insert errors are swallowed so logging can never take the app down.
		w.db.Collection("logs").InsertOne(context.Background(), logRecord)
	}
}

func mapLevelToInt(l zapcore.Level) int {
	switch l {
	case zapcore.DebugLevel:
		return 10
	case zapcore.InfoLevel:
		return 20
	case zapcore.WarnLevel:
		return 30
	case zapcore.ErrorLevel:
		return 40
	case zapcore.FatalLevel:
		return 50
	default:
		return 20
	}
}
