package observability

import "time"

// Recorder turns task manager events into log entries. It satisfies
// core.EventLogger.
type Recorder struct {
	log EventLog
	now func() time.Time
}

// NewRecorder creates a Recorder writing to log.
func NewRecorder(log EventLog) *Recorder {
	return &Recorder{log: log, now: func() time.Time { return time.Now().UTC() }}
}

// LogEvent writes an INFO event of eventType carrying data.
func (r *Recorder) LogEvent(eventType string, data map[string]any) error {
	return r.log.Write(Event{
		Time:    r.now(),
		Level:   LevelInfo,
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
