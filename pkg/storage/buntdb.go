package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/raykavin/plotspec/pkg/logger"
	"github.com/raykavin/plotspec/pkg/plot"
	"github.com/raykavin/plotspec/pkg/spec"
	"github.com/tidwall/buntdb"
)

const (
	keyPrefix    = "payload:"
	createdIndex = "created_index"
)

// Entry describes a cached payload
type Entry struct {
	Key       string    `json:"key"`
	Traces    int       `json:"traces"`
	CreatedAt time.Time `json:"created_at"`
}

// record is the stored form of a cached payload
type record struct {
	Traces    int             `json:"traces"`
	CreatedAt time.Time       `json:"created_at"`
	Payload   json.RawMessage `json:"payload"`
}

// PayloadCache keeps compiled payloads in BuntDB, keyed by the spec and a
// fingerprint of the table they were compiled from
type PayloadCache struct {
	db  *buntdb.DB
	ttl time.Duration
	log logger.Logger
	now func() time.Time
}

// Option configures a PayloadCache
type Option func(*PayloadCache)

// WithTTL expires entries after d. Zero keeps entries until purged.
func WithTTL(d time.Duration) Option {
	return func(c *PayloadCache) {
		c.ttl = d
	}
}

// WithLogger sets the logger used to report cache hits and misses
func WithLogger(log logger.Logger) Option {
	return func(c *PayloadCache) {
		c.log = log
	}
}

// FromMemory creates an in-memory cache
func FromMemory(options ...Option) (*PayloadCache, error) {
	return Open(":memory:", options...)
}

// Open opens or creates a cache file
func Open(path string, options ...Option) (*PayloadCache, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	err = db.CreateIndex(createdIndex, keyPrefix+"*", buntdb.IndexJSON("created_at"))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	cache := &PayloadCache{
		db:  db,
		log: logger.Discard,
		now: time.Now,
	}
	for _, option := range options {
		option(cache)
	}

	return cache, nil
}

// Key derives the cache key of a (spec, table) pair
func Key(s *spec.VizSpec, fingerprint string) (string, error) {
	encoded, err := s.JSON()
	if err != nil {
		return "", fmt.Errorf("failed to encode spec: %w", err)
	}

	hash := sha256.New()
	hash.Write(encoded)
	hash.Write([]byte{0})
	hash.Write([]byte(fingerprint))
	return keyPrefix + hex.EncodeToString(hash.Sum(nil)), nil
}

// Get returns the cached payload for key. A missing or expired entry
// reports false without an error.
func (c *PayloadCache) Get(key string) (*plot.Payload, bool, error) {
	var payload *plot.Payload

	err := c.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(key)
		if err != nil {
			return err
		}

		var rec record
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			return fmt.Errorf("failed to unmarshal entry: %w", err)
		}

		payload, err = plot.DecodePayload(rec.Payload)
		return err
	})

	switch {
	case errors.Is(err, buntdb.ErrNotFound):
		c.log.WithField("key", key).Debug("cache miss")
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	c.log.WithField("key", key).Debug("cache hit")
	return payload, true, nil
}

// Put stores a payload under key, replacing any previous entry
func (c *PayloadCache) Put(key string, payload *plot.Payload) error {
	encoded, err := payload.JSON()
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	content, err := json.Marshal(record{
		Traces:    len(payload.Figure.Data),
		CreatedAt: c.now().UTC(),
		Payload:   encoded,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	var opts *buntdb.SetOptions
	if c.ttl > 0 {
		opts = &buntdb.SetOptions{Expires: true, TTL: c.ttl}
	}

	return c.db.Update(func(tx *buntdb.Tx) error {
		if _, _, err := tx.Set(key, string(content), opts); err != nil {
			return fmt.Errorf("failed to store payload: %w", err)
		}
		return nil
	})
}

// Fetch returns the cached payload for key, or compiles and stores it
func (c *PayloadCache) Fetch(key string, compile func() (*plot.Payload, error)) (*plot.Payload, error) {
	payload, ok, err := c.Get(key)
	if err != nil {
		c.log.WithError(err).Warn("cache read failed, recompiling")
	}
	if ok {
		return payload, nil
	}

	payload, err = compile()
	if err != nil {
		return nil, err
	}

	if err := c.Put(key, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Entries lists the cached payloads, oldest first
func (c *PayloadCache) Entries() ([]Entry, error) {
	entries := make([]Entry, 0)

	err := c.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend(createdIndex, func(key, value string) bool {
			var rec record
			if err := json.Unmarshal([]byte(value), &rec); err != nil {
				c.log.WithError(err).WithField("key", key).Warn("skipping unreadable cache entry")
				return true
			}

			entries = append(entries, Entry{
				Key:       key,
				Traces:    rec.Traces,
				CreatedAt: rec.CreatedAt,
			})
			return true
		})
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Len returns the number of live entries
func (c *PayloadCache) Len() (int, error) {
	var n int
	err := c.db.View(func(tx *buntdb.Tx) error {
		var err error
		n, err = tx.Len()
		return err
	})
	return n, err
}

// Purge removes every entry and returns how many were removed
func (c *PayloadCache) Purge() (int, error) {
	var n int
	err := c.db.Update(func(tx *buntdb.Tx) error {
		var err error
		if n, err = tx.Len(); err != nil {
			return err
		}
		return tx.DeleteAll()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}

	c.log.WithField("entries", n).Info("cache purged")
	return n, nil
}

// Close flushes and closes the underlying database
func (c *PayloadCache) Close() error {
	return c.db.Close()
}
