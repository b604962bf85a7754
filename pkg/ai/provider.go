package ai

import (
	"context"
	"errors"
)

// Upstream failure classes surfaced to callers. None of these are retried
// here; the service layer decides how to present them.
var (
	ErrRateLimited    = errors.New("ai: rate limit exceeded, try again in a moment")
	ErrQuotaExhausted = errors.New("ai: service credits exhausted")
	ErrEmptyResponse  = errors.New("ai: empty response from model")
)

// Option allows optional parameters like Temperature or a model override.
type Option func(*Options)

type Options struct {
	Temperature float64
	Model       string
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for any vision-capable diagnosis backend.
// Analyze submits one image plus an optional crop hint and returns the raw
// text reply of the model; parsing into a Diagnosis happens in this package
// so every provider benefits from the same tolerant handling.
type Provider interface {
	Analyze(ctx context.Context, imageData string, cropHint string, options ...Option) (string, error)
}
