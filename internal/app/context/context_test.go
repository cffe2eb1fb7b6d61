package appctx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

const testFetchValue = "hello"

// testAction records whether it ran and with which context.
type testAction struct {
	desc       string
	executeErr error
	executed   atomic.Bool
	gotCtx     context.Context
}

func (a *testAction) Execute(ctx context.Context) error {
	a.gotCtx = ctx
	if a.executeErr != nil {
		return a.executeErr
	}
	a.executed.Store(true)
	return nil
}

func (a *testAction) Rollback(context.Context) error { return nil }

func (a *testAction) Description() string { return a.desc }

// --- GetOrFetch tests ---

func TestGetOrFetch_CacheMiss(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	val, err := GetOrFetch(rc, "key", func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != testFetchValue {
		t.Fatalf("got %q, want %q", val, testFetchValue)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CacheHit(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	fetchFn := func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	}

	_, _ = GetOrFetch(rc, "key", fetchFn)
	val, err := GetOrFetch(rc, "key", fetchFn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != testFetchValue {
		t.Fatalf("got %q, want %q", val, testFetchValue)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CachesErrors(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0
	fetchErr := errors.New("fetch failed")

	fetchFn := func(_ context.Context) (string, error) {
		calls++
		return "", fetchErr
	}

	_, _ = GetOrFetch(rc, "key", fetchFn)
	val, err := GetOrFetch(rc, "key", fetchFn)

	if !errors.Is(err, fetchErr) {
		t.Fatalf("got error %v, want %v", err, fetchErr)
	}
	if val != "" {
		t.Fatalf("got %q, want empty string", val)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_DifferentKeys(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	v1, _ := GetOrFetch(rc, "a", func(_ context.Context) (int, error) { return 1, nil })
	v2, _ := GetOrFetch(rc, "b", func(_ context.Context) (int, error) { return 2, nil })

	if v1 != 1 {
		t.Fatalf("key a: got %d, want 1", v1)
	}
	if v2 != 2 {
		t.Fatalf("key b: got %d, want 2", v2)
	}
}

func TestGetOrFetch_ZeroValue(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	val, err := GetOrFetch(rc, "key", func(_ context.Context) (int, error) { return 0, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 0 {
		t.Fatalf("got %d, want 0", val)
	}

	// Second call should return cached zero value.
	calls := 0
	val, err = GetOrFetch(rc, "key", func(_ context.Context) (int, error) {
		calls++
		return 99, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 0 {
		t.Fatalf("got %d, want cached 0", val)
	}
	if calls != 0 {
		t.Fatalf("fetchFn should not be called on cache hit")
	}
}

// --- DataProvider tests ---

func TestDataProvider_Get(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	p := NewDataProvider("order:1", func(_ context.Context) (string, error) {
		return "WO-1001", nil
	})

	val, err := p.Get(rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != "WO-1001" {
		t.Fatalf("got %q, want %q", val, "WO-1001")
	}
}

func TestDataProvider_Memoizes(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	p := NewDataProvider("key", func(_ context.Context) (int, error) {
		calls++
		return 42, nil
	})

	_, _ = p.Get(rc)
	val, _ := p.Get(rc)

	if val != 42 {
		t.Fatalf("got %d, want 42", val)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

// --- Concurrency tests ---

func TestGetOrFetch_ConcurrentCallersShareResult(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	var calls atomic.Int32

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			v, err := GetOrFetch(rc, "order:1", func(_ context.Context) (int, error) {
				return int(calls.Add(1)), nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[idx] = v
		}(i)
	}
	wg.Wait()

	for i, v := range results[1:] {
		if v != results[0] {
			t.Fatalf("caller %d got %d, caller 0 got %d", i+1, v, results[0])
		}
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	_, _ = GetOrFetch(rc, "key", func(_ context.Context) (int, error) { return 1, nil })
	_, err := GetOrFetch(rc, "key", func(_ context.Context) (string, error) { return "x", nil })
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}
}

func TestGetOrFetch_NilPointerIsCached(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	fetch := func(_ context.Context) (*string, error) {
		calls++
		return nil, nil
	}
	_, _ = GetOrFetch(rc, "key", fetch)
	v, err := GetOrFetch(rc, "key", fetch)
	if err != nil || v != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", v, err)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestForget_Refetches(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	fetch := func(_ context.Context) (int, error) {
		calls++
		return calls, nil
	}
	_, _ = GetOrFetch(rc, "key", fetch)
	rc.Forget("key")
	v, _ := GetOrFetch(rc, "key", fetch)
	if v != 2 {
		t.Fatalf("got %d, want 2 after Forget", v)
	}
}

// --- Execute tests ---

func TestExecute_RunsWithEmbeddedContext(t *testing.T) {
	t.Parallel()
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	rc := New(ctx)

	a := &testAction{desc: "validate order"}
	if err := rc.Execute(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.executed.Load() {
		t.Fatal("action was not executed")
	}
	if a.gotCtx.Value(key{}) != "v" {
		t.Fatal("action did not receive the embedded context")
	}
}

func TestExecute_ActionSeesRequestContext(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	a := &testAction{}
	if err := rc.Execute(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FromContext(a.gotCtx); got != rc {
		t.Fatal("action context should carry the RequestContext that ran it")
	}
}

func TestExecute_ReturnsActionError(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	boom := errors.New("boom")

	if err := rc.Execute(&testAction{executeErr: boom}); !errors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
}

func TestExecute_NilAction(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	if err := rc.Execute(nil); !errors.Is(err, ErrNilAction) {
		t.Fatalf("got %v, want ErrNilAction", err)
	}
}

// --- Context carriage tests ---

func TestFromContext_RoundTrip(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	ctx := WithRequestContext(context.Background(), rc)

	if got := FromContext(ctx); got != rc {
		t.Fatal("FromContext did not return the stored RequestContext")
	}
	if got := FromContext(context.Background()); got != nil {
		t.Fatal("FromContext on a bare context should return nil")
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	ctx := WithRequestContext(context.Background(), rc)

	if got := Ensure(ctx); got != rc {
		t.Fatal("Ensure should return the stored RequestContext")
	}
	if got := Ensure(context.Background()); got == nil || got == rc {
		t.Fatal("Ensure should create a fresh RequestContext when none is stored")
	}
}

func TestNew_ReturnsEmptyContext(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	if len(rc.cache) != 0 {
		t.Fatalf("cache should be empty, got %d entries", len(rc.cache))
	}
}
