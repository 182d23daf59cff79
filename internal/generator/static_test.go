package generator

import (
	"context"
	"errors"
	"testing"
)

func TestStatic(t *testing.T) {
	g := NewStatic()
	got, err := g.Generate(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != OfflineNotice {
		t.Errorf("got %q", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.Generate(ctx, "anything"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
