package directory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Taichi-iskw/tv-guide/internal/errors"
	"github.com/Taichi-iskw/tv-guide/internal/logging"
	"github.com/Taichi-iskw/tv-guide/internal/model"
)

// Loader performs the one directory load of a run and exposes whether it is
// still outstanding. A failed load is logged and leaves an empty channel list;
// it is not retried.
type Loader struct {
	service Service
	logger  *zap.Logger

	once     sync.Once
	loading  atomic.Bool
	loaded   atomic.Bool
	channels []model.Channel
	err      error
}

// NewLoader creates a Loader over service
func NewLoader(service Service, logger *zap.Logger) *Loader {
	return &Loader{
		service: service,
		logger:  logging.OrNop(logger),
	}
}

// Load fetches the channel list on its first call; later and concurrent calls
// return the same result. On failure the list is empty and the error wraps
// errors.ErrLoadFailed.
func (l *Loader) Load(ctx context.Context) ([]model.Channel, error) {
	l.once.Do(func() {
		l.loading.Store(true)
		defer func() {
			l.loading.Store(false)
			l.loaded.Store(true)
		}()

		start := time.Now()
		channels, err := l.service.FetchChannels(ctx)
		if err != nil {
			l.logger.Error("error fetching channels", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
			l.channels = []model.Channel{}
			l.err = fmt.Errorf("%w: %w", errors.ErrLoadFailed, err)
			return
		}

		l.logger.Info("channels loaded", zap.Int("count", len(channels)), zap.Duration("elapsed", time.Since(start)))
		l.channels = channels
	})

	return l.channels, l.err
}

// Loading reports whether the load request is outstanding
func (l *Loader) Loading() bool {
	return l.loading.Load()
}

// Loaded reports whether the load has settled, successfully or not
func (l *Loader) Loaded() bool {
	return l.loaded.Load()
}
