package pathgen

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/profile"
)

func TestGenerateReturnsCurriculum(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validResponse),
	})
	g := NewGenerator(mock, DefaultConfig())

	c, err := g.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if c.Title != "Backend Go Developer Path" {
		t.Errorf("title = %q", c.Title)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerateValidatesProfileFirst(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewGenerator(mock, DefaultConfig())

	empty := &profile.Profile{}
	_, err := g.Generate(context.Background(), empty)

	var ve *profile.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *profile.ValidationError", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider was called %d times for an invalid profile, want 0", mock.CallCount())
	}
}

func TestGenerateSingleFlight(t *testing.T) {
	block := make(chan struct{})
	slow := &blockingProvider{release: block, started: make(chan struct{}, 4)}
	g := NewGenerator(slow, DefaultConfig())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = g.Generate(context.Background(), testProfile())
	}()

	// Wait for the first generation to be in flight.
	<-slow.started

	_, err := g.Generate(context.Background(), testProfile())
	if !errors.Is(err, ErrGenerationInFlight) {
		t.Errorf("second Generate error = %v, want ErrGenerationInFlight", err)
	}

	close(block)
	wg.Wait()

	// After the first completes, a new generation is allowed again.
	slow.release = nil
	if _, err := g.Generate(context.Background(), testProfile()); err != nil {
		t.Errorf("Generate after completion returned error: %v", err)
	}
}

func TestGenerateTimeoutClassified(t *testing.T) {
	slow := &blockingProvider{release: make(chan struct{})}
	g := NewGenerator(slow, Config{MaxTokens: 100, Timeout: 10 * time.Millisecond})

	_, err := g.Generate(context.Background(), testProfile())

	var gf *GenerationFailure
	if !errors.As(err, &gf) {
		t.Fatalf("error type = %T, want *GenerationFailure", err)
	}
	if !gf.Timeout {
		t.Error("Timeout flag not set on deadline expiry")
	}
}

func TestGenerateProviderErrorClassified(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testProfile())

	var gf *GenerationFailure
	if !errors.As(err, &gf) {
		t.Fatalf("error type = %T, want *GenerationFailure", err)
	}
	if gf.Timeout {
		t.Error("Timeout flag set on a non-timeout failure")
	}
}

func TestGenerateInvalidResponseNamesField(t *testing.T) {
	// Provider-side schema validation rejected the content; the hand
	// parser pins the violation to a field.
	bad := json.RawMessage(`{"title":"X","description":"d","estimatedDuration":"1 month","difficulty":"beginner","totalHours":10}`)
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: bad, Err: errors.New("schema validation failed")},
	})
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testProfile())

	var pf *ParseFailure
	if !errors.As(err, &pf) {
		t.Fatalf("error type = %T, want *ParseFailure", err)
	}
	if pf.Field != "modules" {
		t.Errorf("field = %q, want modules", pf.Field)
	}
}

// blockingProvider blocks Generate until released, or until the context
// expires. A nil release channel returns immediately.
type blockingProvider struct {
	release chan struct{}
	started chan struct{}
}

func (b *blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	select {
	case b.started <- struct{}{}:
	default:
	}

	if b.release == nil {
		return &llm.Response{Content: json.RawMessage(validResponse)}, nil
	}
	select {
	case <-b.release:
		return &llm.Response{Content: json.RawMessage(validResponse)}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (b *blockingProvider) ModelID() string { return "blocking" }
