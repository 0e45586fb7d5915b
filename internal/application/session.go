package application

import (
	"context"
	"fmt"

	"github.com/bnema/void-bridge/internal/domain"
	"github.com/bnema/void-bridge/internal/logging"
	"github.com/bnema/void-bridge/internal/ports"
	"go.uber.org/zap"
)

// Session is the live manager together with the fingerprint of the
// configuration that produced it. The zero value holds no manager.
type Session struct {
	manager     ports.Manager
	fingerprint domain.Fingerprint
}

func (s Session) Manager() ports.Manager {
	return s.manager
}

func (s Session) Fingerprint() domain.Fingerprint {
	return s.fingerprint
}

func (s Session) Active() bool {
	return s.manager != nil
}

// ManagerCache decides whether a request can reuse the session's manager or
// needs one loaded from disk or built from its configuration.
type ManagerCache struct {
	factory   ports.ManagerFactory
	store     ports.StateStore
	statePath string
	logger    *logging.Logger
}

func NewManagerCache(factory ports.ManagerFactory, store ports.StateStore, statePath string, logger *logging.Logger) *ManagerCache {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &ManagerCache{
		factory:   factory,
		store:     store,
		statePath: statePath,
		logger:    logger,
	}
}

// Resolve returns the session to serve config with. A matching fingerprint is
// a pure cache hit with no I/O. On a miss, persisted state wins over config,
// which is only used when nothing usable is on disk.
//
// On failure the returned session is the one passed in: a previously cached
// manager stays cached under its own fingerprint, and the failed configuration
// is attempted again on its next request.
func (c *ManagerCache) Resolve(ctx context.Context, session Session, config domain.ManagerConfig) (Session, error) {
	fp, err := domain.FingerprintOf(config)
	if err != nil {
		return session, err
	}

	if session.Active() && session.fingerprint == fp {
		c.logger.Debug(ctx, "manager cache hit", zap.String("fingerprint", fp.Short()))
		return session, nil
	}

	manager, err := c.loadOrConstruct(ctx, fp, config)
	if err != nil {
		return session, err
	}

	return Session{manager: manager, fingerprint: fp}, nil
}

func (c *ManagerCache) loadOrConstruct(ctx context.Context, fp domain.Fingerprint, config domain.ManagerConfig) (ports.Manager, error) {
	loaded, err := c.store.Load(ctx, c.statePath)
	if err != nil {
		return nil, fmt.Errorf("load persisted state: %w", err)
	}
	if loaded != nil {
		c.logger.Info(ctx, "restored manager from persisted state",
			zap.String("fingerprint", fp.Short()),
			zap.String("path", c.statePath))
		return loaded, nil
	}

	params, err := config.Params()
	if err != nil {
		return nil, err
	}

	manager, err := c.factory.New(params)
	if err != nil {
		return nil, err
	}

	c.logger.Info(ctx, "constructed manager from configuration",
		zap.String("fingerprint", fp.Short()),
		zap.Int("capacity", params.Capacity))
	return manager, nil
}
