package test

import (
	"context"
	"sync"

	"go.uber.org/fx"
)

// LifecycleRecorder is an fx.Lifecycle that lets tests drive hooks by hand.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// Start runs OnStart hooks in registration order and stops at the first error.
func (l *LifecycleRecorder) Start(ctx context.Context) error {
	for _, h := range l.Hooks {
		if h.OnStart == nil {
			continue
		}
		if err := h.OnStart(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop runs OnStop hooks in reverse order, like fx does.
func (l *LifecycleRecorder) Stop(ctx context.Context) error {
	for i := len(l.Hooks) - 1; i >= 0; i-- {
		if l.Hooks[i].OnStop == nil {
			continue
		}
		if err := l.Hooks[i].OnStop(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ShutdownerStub counts shutdown requests and signals each one on Called.
type ShutdownerStub struct {
	Called chan struct{}

	mu    sync.Mutex
	calls int
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}

func (s *ShutdownerStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
