// Package appctx provides request-scoped context for orchestration services.
//
// RequestContext extends Go's context.Context with in-memory memoization of
// data fetches and immediate execution of side-effect actions.
//
// A RequestContext is created per HTTP request by the AppContext middleware
// and retrieved by application services:
//
//	rc := appctx.Ensure(ctx)
//
//	// Fetch data with memoization
//	o, err := appctx.GetOrFetch(rc, "order:7f1c", fetchOrder)
//
//	// Run a side effect with the request's context
//	err = rc.Execute(&revalidate{ref: ref})
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
)

// ErrNilAction is returned when a nil Action is passed to Execute.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type requestContextKey struct{}

// RequestContext is a request-scoped context wrapper providing in-memory
// caching. It embeds context.Context and adds memoization via GetOrFetch.
//
// A RequestContext is request-scoped: create a new instance for each HTTP
// request. Its cache is safe for concurrent use so that fan-out work inside
// one request can share fetched data.
type RequestContext struct {
	context.Context
	mu    sync.Mutex
	cache map[string]cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// Both successful results and errors are cached to prevent redundant calls
// within the same request.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext wrapping the given context.Context. The
// embedded context carries the RequestContext itself, so actions run through
// Execute share its cache.
func New(ctx context.Context) *RequestContext {
	rc := &RequestContext{cache: make(map[string]cacheEntry)}
	rc.Context = context.WithValue(ctx, requestContextKey{}, rc)
	return rc
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// Ensure returns the RequestContext stored in ctx, or a fresh one wrapping
// ctx when none is present (background jobs, tests).
func Ensure(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached to
// prevent redundant calls within the same request.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
// Use DataProvider for type-safe, reusable fetch bindings that prevent this.
//
// The lock is not held while fetchFn runs. Two goroutines missing the same
// key may both fetch; the first stored result wins and is returned to both.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc.mu.Lock()
	entry, ok := rc.cache[key]
	rc.mu.Unlock()

	if !ok {
		val, err := fetchFn(rc.Context)

		rc.mu.Lock()
		if existing, found := rc.cache[key]; found {
			entry = existing
		} else {
			entry = cacheEntry{value: val, err: err}
			rc.cache[key] = entry
		}
		rc.mu.Unlock()
	}

	var zero T
	if entry.err != nil {
		return zero, entry.err
	}
	if entry.value == nil {
		return zero, nil
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}

// Forget drops the cached entry for key so the next GetOrFetch refetches.
// Writers call it after changing the underlying data.
func (rc *RequestContext) Forget(key string) {
	rc.mu.Lock()
	delete(rc.cache, key)
	rc.mu.Unlock()
}

// DataProvider is a type-safe wrapper around GetOrFetch for a specific data
// type. It binds a cache key and fetch function together, allowing callers
// to retrieve data without specifying the key and function each time.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get returns the cached value or fetches it using the provider's fetch
// function.
func (p *DataProvider[T]) Get(rc *RequestContext) (T, error) {
	return GetOrFetch(rc, p.key, p.fetchFn)
}

// Execute runs an action immediately with the RequestContext's embedded
// context. If Execute fails the action's Rollback is not called; the action
// is expected to leave no partial state behind.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}
