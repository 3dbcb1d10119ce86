package utils

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

var ShutdownTimeout = 15 * time.Second

// ShutdownManager cancels the run context on SIGINT/SIGTERM and runs the
// registered cleanup tasks exactly once, newest first.
type ShutdownManager struct {
	cancelFunc    context.CancelFunc
	shutdownTasks []func(context.Context) error
	mu            sync.Mutex
	done          bool
	stop          func()
}

func NewShutdownManager(ctx context.Context) (context.Context, *ShutdownManager) {
	ctx, cancel := context.WithCancel(ctx)
	manager := &ShutdownManager{
		cancelFunc: cancel,
		stop:       func() {},
	}
	return ctx, manager
}

func (sm *ShutdownManager) Register(task func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.shutdownTasks = append(sm.shutdownTasks, task)
}

func (sm *ShutdownManager) StartListening() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	quit := make(chan struct{})
	sm.stop = func() {
		signal.Stop(sigChan)
		close(quit)
	}

	go func() {
		select {
		case sig := <-sigChan:
			log.Printf("[SHUTDOWN] Received signal: %v", sig)
			sm.cancelFunc()
		case <-quit:
		}
	}()
}

// Shutdown cancels the run context and runs the cleanup tasks. Later calls are no-ops.
func (sm *ShutdownManager) Shutdown() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.done {
		return nil
	}
	sm.done = true
	sm.stop()
	sm.cancelFunc()

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	var errs []error
	for i := len(sm.shutdownTasks) - 1; i >= 0; i-- {
		if err := sm.shutdownTasks[i](ctx); err != nil {
			log.Printf("[SHUTDOWN] Error during shutdown: %v", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
