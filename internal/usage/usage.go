// Package usage samples the resident memory of the running process for the
// header bar.
package usage

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Sampler caches the process RSS so frequent header refreshes do not hit
// the OS on every stroke update.
type Sampler struct {
	interval time.Duration
	now      func() time.Time
	read     func(ctx context.Context) (uint64, error)

	mu      sync.Mutex
	last    uint64
	sampled time.Time
}

// NewSampler returns a Sampler for the current process that re-reads the
// RSS at most once per interval.
func NewSampler(interval time.Duration) (*Sampler, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("open process %d: %w", os.Getpid(), err)
	}
	return &Sampler{
		interval: interval,
		now:      time.Now,
		read: func(ctx context.Context) (uint64, error) {
			info, err := proc.MemoryInfoWithContext(ctx)
			if err != nil {
				return 0, err
			}
			return info.RSS, nil
		},
	}, nil
}

// RSS returns the resident set size in bytes, reading it again only when
// the cached value is older than the interval.
func (s *Sampler) RSS(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.sampled.IsZero() && now.Sub(s.sampled) < s.interval {
		return s.last, nil
	}

	rss, err := s.read(ctx)
	if err != nil {
		return 0, fmt.Errorf("read process memory: %w", err)
	}
	s.last = rss
	s.sampled = now
	return rss, nil
}

// FormatMB renders a byte count as megabytes the way the header shows it.
func FormatMB[T ~int | ~uint64](bytes T) string {
	return fmt.Sprintf("%.6f MB", float64(bytes)/(1024*1024))
}
