package notify

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/filex"
)

// LogSink appends one line per notification to a file.
type LogSink struct {
	mu sync.Mutex
	f  *os.File
}

func NewLogSink(path string) (*LogSink, error) {
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open notification log: %w", err)
	}
	return &LogSink{f: f}, nil
}

func formatLine(n models.Notification) string {
	at := n.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	auction := "-"
	if n.Auction != nil && n.Auction.ID != "" {
		auction = n.Auction.ID
	}
	return fmt.Sprintf("[%s] %s | id=%s | auction=%s | title=%q | message=%q\n",
		at.UTC().Format(time.RFC3339), n.Type, n.ID, auction, n.Title, n.Message)
}

func (s *LogSink) Publish(_ context.Context, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.f.WriteString(formatLine(n)); err != nil {
		return fmt.Errorf("write notification log: %w", err)
	}
	return nil
}

func (s *LogSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
