package game

import (
	"sync"

	"github.com/rs/zerolog"
)

// EventSink receives human-readable resolution events in the order they
// happen. Record is called synchronously while the table is locked, so a sink
// must not call back into the Table.
type EventSink interface {
	Record(message string)
}

type EventSinkFunc func(message string)

func (f EventSinkFunc) Record(message string) {
	f(message)
}

type nopEventSink struct{}

func (nopEventSink) Record(string) {}

// MultiEventSink fans each event out to every sink in order.
type MultiEventSink []EventSink

func (m MultiEventSink) Record(message string) {
	for _, sink := range m {
		sink.Record(message)
	}
}

// LogEventSink writes events to a zerolog logger, usually one built by
// logging.GetTableLogger.
type LogEventSink struct {
	logger *zerolog.Logger
}

func NewLogEventSink(logger *zerolog.Logger) *LogEventSink {
	return &LogEventSink{
		logger: logger,
	}
}

func (l *LogEventSink) Record(message string) {
	l.logger.Info().Msg(message)
}

// EventRecorder keeps every event in memory.
type EventRecorder struct {
	lock     sync.Mutex
	messages []string
}

func (r *EventRecorder) Record(message string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.messages = append(r.messages, message)
}

func (r *EventRecorder) Messages() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.messages...)
}

func (r *EventRecorder) Reset() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.messages = nil
}
