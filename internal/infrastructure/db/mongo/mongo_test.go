package mongo

import (
	"context"
	"testing"
	"time"
)

func TestOpContextAppliesDefaultTimeout(t *testing.T) {
	ctx, cancel := opContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if left := time.Until(deadline); left <= 0 || left > defaultTimeout {
		t.Fatalf("deadline %v outside (0, %v]", left, defaultTimeout)
	}
}

func TestOpContextKeepsShorterParentDeadline(t *testing.T) {
	parent, cancelParent := context.WithTimeout(context.Background(), time.Second)
	defer cancelParent()
	want, _ := parent.Deadline()

	ctx, cancel := opContext(parent)
	defer cancel()

	got, _ := ctx.Deadline()
	if !got.Equal(want) {
		t.Fatalf("expected parent deadline %v, got %v", want, got)
	}
}
