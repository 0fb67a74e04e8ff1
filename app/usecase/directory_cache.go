package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"provisioning-service/app/domain"
	"provisioning-service/app/port"
)

// DefaultDirectoryFlushInterval bounds how stale a cached directory entry
// can get after an out-of-band change in the backend.
const DefaultDirectoryFlushInterval = 600 * time.Second

// DirectoryCache implements port.DirectoryResolver: a time-bounded
// email-keyed cache over the backend user directory. Invalidation is a
// whole-cache flush on a fixed interval, not a per-entry TTL.
type DirectoryCache struct {
	directoryGateway port.DirectoryGateway
	flushInterval    time.Duration
	logger           *slog.Logger

	mu      sync.RWMutex
	entries map[string]domain.DirectoryUser
}

// NewDirectoryCache creates a directory cache. Start must be called to run
// the periodic flush; tests call Clear directly instead.
func NewDirectoryCache(directoryGateway port.DirectoryGateway, flushInterval time.Duration, logger *slog.Logger) *DirectoryCache {
	if flushInterval <= 0 {
		flushInterval = DefaultDirectoryFlushInterval
	}
	return &DirectoryCache{
		directoryGateway: directoryGateway,
		flushInterval:    flushInterval,
		logger:           logger.With("component", "directory_cache"),
		entries:          make(map[string]domain.DirectoryUser),
	}
}

// Start launches the flush loop; it stops when ctx is canceled
func (c *DirectoryCache) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(c.flushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Clear()
			}
		}
	}()
}

// Clear unconditionally drops every cached entry
func (c *DirectoryCache) Clear() {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[string]domain.DirectoryUser)
	c.mu.Unlock()

	if n > 0 {
		c.logger.Debug("directory cache flushed", "evicted", n)
	}
}

// Resolve returns the directory user for the email. A cache hit answers
// without a network call; a miss queries the backend with an exact email
// filter and caches the normalized first match. Zero results, or a top
// result lacking both id and name, resolve to absent.
func (c *DirectoryCache) Resolve(ctx context.Context, email string) (domain.DirectoryUser, bool, error) {
	c.mu.RLock()
	cached, ok := c.entries[email]
	c.mu.RUnlock()
	if ok {
		return cached.Clone(), true, nil
	}

	users, err := c.directoryGateway.FindUsersByEmail(ctx, email)
	if err != nil {
		return domain.DirectoryUser{}, false, err
	}
	if len(users) == 0 || !users[0].Resolved() {
		return domain.DirectoryUser{}, false, nil
	}

	user := users[0]
	if user.Email == "" {
		user.Email = email
	}

	// Concurrent misses may both store; the writes carry the same value.
	c.mu.Lock()
	c.entries[email] = user.Clone()
	c.mu.Unlock()

	c.logger.Debug("directory user cached", "email", email, "user", user.Name)
	return user, true, nil
}
