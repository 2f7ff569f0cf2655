package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"board-gateway/internal/domain"

	"golang.org/x/sync/singleflight"
)

// IdentityCache memoizes AuthenticationID -> UserIdentity resolutions.
// Implements domain.IdentityResolver.
//
// The mapping is immutable for the lifetime of an account, so successful
// resolutions are cached for the process lifetime with no TTL. Failed
// lookups are never cached: a missing account may be provisioning-lag and
// an unavailable directory is transient, so every caller is allowed to
// retry. Concurrent misses for the same key collapse into a single
// directory call whose outcome is shared by all waiters.
type IdentityCache struct {
	mu      sync.RWMutex
	entries map[domain.AuthenticationID]domain.UserIdentity

	group         singleflight.Group
	directory     domain.UserDirectory
	lookupTimeout time.Duration
	logger        *slog.Logger
}

// NewIdentityCache creates an empty cache backed by the given directory.
// lookupTimeout bounds each directory call; the flight owns the timeout,
// not any individual waiter.
func NewIdentityCache(directory domain.UserDirectory, lookupTimeout time.Duration, logger *slog.Logger) *IdentityCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityCache{
		entries:       make(map[domain.AuthenticationID]domain.UserIdentity),
		directory:     directory,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// Resolve returns the internal identity for id, consulting the directory
// at most once per uncached key regardless of how many callers race.
//
// A caller whose context is cancelled while waiting detaches with the
// context error; the in-flight directory call continues and its result
// still populates the cache for everyone else.
func (c *IdentityCache) Resolve(ctx context.Context, id domain.AuthenticationID) (*domain.UserIdentity, error) {
	if identity, ok := c.lookup(id); ok {
		return identity, nil
	}

	ch := c.group.DoChan(string(id), func() (any, error) {
		// Another flight may have populated the entry between the fast
		// path and joining the group.
		if identity, ok := c.lookup(id); ok {
			return identity, nil
		}

		// The flight is shared; detach from the initiating request so one
		// waiter's cancellation cannot abort the lookup for the rest.
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.lookupTimeout)
		defer cancel()

		identity, err := c.directory.FindUserByAuthenticationID(lctx, id)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[id] = *identity
		c.mu.Unlock()

		return identity, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			c.logger.DebugContext(ctx, "identity lookup shared with concurrent callers",
				"authentication_id", string(id))
		}
		return res.Val.(*domain.UserIdentity), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate removes a cached mapping and forgets any in-flight lookup for
// the key. Administrative correction only; the mapping never changes during
// normal operation.
func (c *IdentityCache) Invalidate(id domain.AuthenticationID) {
	c.group.Forget(string(id))
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()

	c.logger.Info("identity cache entry invalidated", "authentication_id", string(id))
}

// Len reports the number of cached mappings.
func (c *IdentityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *IdentityCache) lookup(id domain.AuthenticationID) (*domain.UserIdentity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	identity, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	return &identity, true
}
