package lambda

import (
	"context"
	"errors"
	"sync"

	"book-library-api/internal/config"
	"book-library-api/pkg/server"
)

// ContainerFactory builds the service container for a configuration
type ContainerFactory func(ctx context.Context, cfg *config.Config) (*server.Container, error)

// ConnectionManager holds the process-lifetime service container for Lambda functions.
// The container, and with it the AWS clients, is built on first use and reused by every
// invocation served by the same execution environment.
type ConnectionManager struct {
	mu        sync.Mutex
	container *server.Container
	factory   ContainerFactory
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(server.NewContainer)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a connection manager using factory to build its container
func NewConnectionManager(factory ContainerFactory) *ConnectionManager {
	return &ConnectionManager{factory: factory}
}

// Initialize builds the container unless one is already held. A failed build is not
// remembered, so the next call tries again.
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	_, err := cm.initLocked(ctx, cfg)
	return err
}

// GetContainer returns the service container, initializing it from the environment if necessary
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return cm.container, nil
	}

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, err
	}
	return cm.initLocked(ctx, cfg)
}

// Cleanup releases the container. The next GetContainer or Initialize builds a new one.
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return nil
	}
	if err := cm.container.Close(); err != nil {
		return err
	}
	cm.container = nil
	return nil
}

func (cm *ConnectionManager) initLocked(ctx context.Context, cfg *config.Config) (*server.Container, error) {
	if cm.container != nil {
		return cm.container, nil
	}
	if cm.factory == nil {
		return nil, errors.New("connection manager has no container factory")
	}

	container, err := cm.factory(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, errors.New("service container is not available")
	}

	cm.container = container
	return container, nil
}
