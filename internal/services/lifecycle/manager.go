package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Phase orders shutdown. The HTTP listener closes first so no new donations
// arrive mid-teardown, background workers (mail dispatcher, monitor) drain
// next, and the stores close last so in-flight work can still reach them.
type Phase int

const (
	PhaseServer Phase = iota
	PhaseWorker
	PhaseStore
)

func (p Phase) String() string {
	switch p {
	case PhaseServer:
		return "server"
	case PhaseWorker:
		return "worker"
	default:
		return "store"
	}
}

// ShutdownFunc releases a single component.
type ShutdownFunc func(ctx context.Context) error

type hook struct {
	phase Phase
	name  string
	fn    ShutdownFunc
}

// Manager collects shutdown hooks and runs them phase by phase when the
// process receives a termination signal.
type Manager struct {
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	hooks []hook
}

// New creates a lifecycle manager with the desired overall timeout.
func New(timeout time.Duration, logger *zap.Logger) *Manager {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		timeout: timeout,
		logger:  logger,
	}
}

// Register adds a shutdown hook to the given phase. Within a phase the hook
// registered last runs first, mirroring construction order.
func (m *Manager) Register(phase Phase, name string, fn ShutdownFunc) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook{phase: phase, name: name, fn: fn})
}

// Shutdown runs every hook, server phase first. A failing hook is logged and
// collected but never blocks the remaining ones, so one stuck component
// cannot hold the stores open.
func (m *Manager) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var result error
	for _, phase := range []Phase{PhaseServer, PhaseWorker, PhaseStore} {
		for i := len(m.hooks) - 1; i >= 0; i-- {
			h := m.hooks[i]
			if h.phase != phase {
				continue
			}
			if err := h.fn(ctx); err != nil {
				m.logger.Error("shutdown hook failed",
					zap.Stringer("phase", phase),
					zap.String("component", h.name),
					zap.Error(err))
				result = errors.Join(result, err)
				continue
			}
			m.logger.Info("component stopped",
				zap.Stringer("phase", phase),
				zap.String("component", h.name))
		}
	}
	return result
}

// Listen invokes cancel once SIGTERM or SIGINT arrives.
func (m *Manager) Listen(cancel context.CancelFunc) {
	if cancel == nil {
		return
	}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		defer signal.Stop(sigCh)
		sig := <-sigCh
		m.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()
}
