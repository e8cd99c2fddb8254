package engine

import (
	"fmt"
	"time"

	"tombs-server/pkg/api"
)

// newLogEntry собирает запись игрового лога с уникальным ID.
func newLogEntry(depth int, text, logType string) api.LogEntry {
	if logType == "" {
		logType = "INFO"
	}
	return api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", depth, time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	}
}
