// Package blobstore is the string key-value store appointments and
// sessions are persisted in.
package blobstore

import "context"

type Store interface {
	// Get returns ok=false when key has never been set or was removed.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type scoped struct {
	inner  Store
	prefix string
}

// Scoped prefixes every key, so one store can hold per-device values
// under the same logical key.
func Scoped(inner Store, prefix string) Store {
	return &scoped{inner: inner, prefix: prefix}
}

func DevicePrefix(deviceID string) string {
	return "device:" + deviceID + ":"
}

func (s *scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key, value string) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *scoped) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, s.prefix+key)
}
