package audit

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Logger writes audit events as structured log lines on their own named logger.
type Logger struct {
	log *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Logger {
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		metaJSON = string(b)
	}

	l.log.Infow(action,
		"entity", entity,
		"entity_id", entityID,
		"metadata", metaJSON,
	)
	return nil
}
