package teams

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"scoreboard-data-service/internal/domain"
)

// Diagnostic records one synthesized-team event for offline registry curation.
type Diagnostic struct {
	TeamID     string      `json:"team_id"`
	Team       domain.Team `json:"team"`
	Raw        RawTeam     `json:"raw"`
	ObservedAt time.Time   `json:"observed_at"`
}

// DiagnosticSink receives synthesized-team records. Implementations must not
// block the caller.
type DiagnosticSink interface {
	Record(d Diagnostic)
}

// NopSink discards diagnostics.
type NopSink struct{}

func (NopSink) Record(Diagnostic) {}

// FileSink appends diagnostics as JSON lines to a report file. Records are
// queued to a background writer so a slow disk never delays a response;
// records are dropped when the queue is full.
type FileSink struct {
	path   string
	logger *slog.Logger
	queue  chan Diagnostic
	done   chan struct{}
	once   sync.Once

	mu     sync.Mutex
	closed bool
}

// NewFileSink starts a sink writing to path.
func NewFileSink(path string, logger *slog.Logger) *FileSink {
	s := &FileSink{
		path:   path,
		logger: logger,
		queue:  make(chan Diagnostic, 64),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// Record queues a diagnostic, dropping it if the writer is backed up or the
// sink has been closed. Shutdown can race a still-running fetch cycle, so a
// late Record must be a no-op, never a send on a closed channel.
func (s *FileSink) Record(d Diagnostic) {
	if d.ObservedAt.IsZero() {
		d.ObservedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.queue <- d:
	default:
	}
}

// Close stops the background writer after draining queued records.
func (s *FileSink) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.queue)
	})
	<-s.done
}

func (s *FileSink) run() {
	defer close(s.done)
	for d := range s.queue {
		if err := s.append(d); err != nil && s.logger != nil {
			s.logger.Warn("team diagnostic write failed", "error", err, "path", s.path)
		}
	}
}

func (s *FileSink) append(d Diagnostic) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	line, err := json.Marshal(d)
	if err != nil {
		return err
	}
	_, err = f.Write(append(line, '\n'))
	return err
}
