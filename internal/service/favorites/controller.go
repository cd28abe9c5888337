// Package favorites keeps the user's favorite channels and persists them
// to a key-value store.
package favorites

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/Taichi-iskw/tv-guide/internal/errors"
	"github.com/Taichi-iskw/tv-guide/internal/logging"
	"github.com/Taichi-iskw/tv-guide/internal/model"
	"github.com/Taichi-iskw/tv-guide/internal/repository/kv"
)

// StoreKey is the key holding the serialized favorites
const StoreKey = "favorites"

// Controller owns the favorites set for the lifetime of the process. It is read
// once by Load and rewritten in full on every Toggle. A Controller is not safe
// for concurrent use.
type Controller struct {
	store  kv.Store
	set    model.FavoriteSet
	logger *zap.Logger
}

// Load reads the persisted favorites from store. A missing, unreadable or
// malformed value yields an empty set; Load never fails.
func Load(ctx context.Context, store kv.Store, logger *zap.Logger) *Controller {
	logger = logging.OrNop(logger)
	c := &Controller{
		store:  store,
		set:    model.NewFavoriteSet(),
		logger: logger,
	}

	value, err := store.Get(ctx, StoreKey)
	if err != nil {
		if kv.IsNotFound(err) {
			logger.Debug("no favorites stored yet")
		} else {
			logger.Warn("failed to read favorites, starting empty", zap.Error(err))
		}
		return c
	}

	set, err := Decode(value)
	if err != nil {
		logger.Warn("malformed favorites, starting empty", zap.Error(err))
		return c
	}

	c.set = set
	logger.Debug("favorites loaded", zap.Int("count", len(set)))
	return c
}

// Contains reports whether id is a favorite
func (c *Controller) Contains(id model.ChannelID) bool {
	return c.set.Contains(id)
}

// Toggle removes id if it is a favorite and adds it otherwise, then rewrites the
// persisted set. It reports whether id is a favorite afterwards. When the write
// fails the in-memory set keeps the change and the error is returned.
func (c *Controller) Toggle(ctx context.Context, id model.ChannelID) (bool, error) {
	if id == "" {
		return false, apperrors.New(apperrors.CodeInvalidArg, "channel id is required")
	}

	added := c.set.Toggle(id)
	c.logger.Debug("favorite toggled", zap.String("channel_id", string(id)), zap.Bool("favorite", added))

	if err := c.persist(ctx); err != nil {
		return added, err
	}
	return added, nil
}

// IDs returns the favorite ids in a deterministic order
func (c *Controller) IDs() []model.ChannelID {
	return c.set.IDs()
}

// Len returns the number of favorites
func (c *Controller) Len() int {
	return len(c.set)
}

// Set returns a copy of the favorites set
func (c *Controller) Set() model.FavoriteSet {
	return c.set.Clone()
}

func (c *Controller) persist(ctx context.Context) error {
	value, err := Encode(c.set)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to encode favorites")
	}
	if err := c.store.Set(ctx, StoreKey, value); err != nil {
		c.logger.Error("failed to persist favorites", zap.Error(err))
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to persist favorites")
	}
	return nil
}
