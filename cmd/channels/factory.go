package channels

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Taichi-iskw/tv-guide/internal/config"
	"github.com/Taichi-iskw/tv-guide/internal/guide"
	"github.com/Taichi-iskw/tv-guide/internal/logging"
	"github.com/Taichi-iskw/tv-guide/internal/repository/kv"
	"github.com/Taichi-iskw/tv-guide/internal/service/directory"
	"github.com/Taichi-iskw/tv-guide/internal/service/favorites"
)

// Session wires the guide engine to its channel loader and favorites for one run
type Session struct {
	Engine    *guide.Engine
	Loader    *directory.Loader
	Favorites *favorites.Controller
	Logger    *zap.Logger

	store kv.Store
}

// NewSession loads the favorites from store and builds an engine over them.
// Channels are not fetched until Load.
func NewSession(ctx context.Context, service directory.Service, store kv.Store, collationLanguage string, logger *zap.Logger) *Session {
	logger = logging.OrNop(logger)
	favs := favorites.Load(ctx, store, logger)

	return &Session{
		Engine:    guide.NewEngine(favs, guide.NewTitleCollator(collationLanguage)),
		Loader:    directory.NewLoader(service, logger),
		Favorites: favs,
		Logger:    logger,
		store:     store,
	}
}

// Load fetches the channels and hands them to the engine. On failure the
// engine holds an empty list and the load error is returned.
func (s *Session) Load(ctx context.Context) error {
	channels, err := s.Loader.Load(ctx)
	s.Engine.SetChannels(channels)
	return err
}

// Close releases the favorites store
func (s *Session) Close() {
	if err := s.store.Close(); err != nil {
		s.Logger.Warn("failed to close favorites store", zap.Error(err))
	}
}

// Factory creates sessions for the commands
type Factory interface {
	CreateSession(ctx context.Context) (*Session, func(), error)
}

// ServiceFactory creates sessions from the configuration file and environment
type ServiceFactory struct{}

// NewServiceFactory creates a new service factory
func NewServiceFactory() *ServiceFactory {
	return &ServiceFactory{}
}

// CreateSession creates a session with all dependencies. The logger is taken
// from ctx.
func (f *ServiceFactory) CreateSession(ctx context.Context) (*Session, func(), error) {
	logger := logging.FromContext(ctx)

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := kv.Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open favorites store: %w", err)
	}

	service := directory.NewService(cfg.APIURL, cfg.RequestTimeout)
	session := NewSession(ctx, service, store, cfg.CollationLanguage, logger)

	return session, session.Close, nil
}
