package app

import (
	"time"

	"grid-launcher/internal/logger"
	"grid-launcher/internal/shutdown"
)

type Lifecycle struct {
	shutdownManager *shutdown.Manager
	logger          logger.Logger
	isShutdown      bool
}

func NewLifecycle(log logger.Logger, timeout time.Duration) *Lifecycle {
	return &Lifecycle{
		shutdownManager: shutdown.NewManager(log, timeout),
		logger:          log,
	}
}

// Register adds a component. Components stop in reverse registration order,
// so register dependencies first.
func (l *Lifecycle) Register(name string, component shutdown.Shutdownable) {
	l.shutdownManager.Register(name, component)
}

// Start listens for termination signals until Shutdown.
func (l *Lifecycle) Start(onSignal func()) {
	l.shutdownManager.Listen(onSignal)
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	l.shutdownManager.Shutdown()
	l.shutdownManager.Wait()

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.shutdownManager.Done()
}
