package blobstore

import (
	"context"
	"time"
)

// Observer receives the latency of each store operation.
type Observer interface {
	ObserveBlobOp(op string, start time.Time, err error)
}

type instrumented struct {
	inner Store
	obs   Observer
}

func Instrument(inner Store, obs Observer) Store {
	return &instrumented{inner: inner, obs: obs}
}

func (s *instrumented) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	v, ok, err := s.inner.Get(ctx, key)
	s.obs.ObserveBlobOp("get", start, err)
	return v, ok, err
}

func (s *instrumented) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.inner.Set(ctx, key, value)
	s.obs.ObserveBlobOp("set", start, err)
	return err
}

func (s *instrumented) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := s.inner.Remove(ctx, key)
	s.obs.ObserveBlobOp("remove", start, err)
	return err
}
