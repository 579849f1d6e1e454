package inmemory

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"

	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

func pendingAttempt(id string) entities.PaymentAttempt {
	return entities.PaymentAttempt{
		ID:       id,
		Provider: entities.ProviderMpesa,
		Amount:   100,
		Currency: "KES",
		Status:   entities.AttemptStatusPending,
	}
}

func TestPaymentLedger_CreateAndGet(t *testing.T) {
	l := NewPaymentLedger()
	ctx := context.Background()

	if _, err := l.Create(ctx, pendingAttempt("pa-1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	a, err := l.GetByID(ctx, "pa-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a.ID != "pa-1" {
		t.Fatalf("expected pa-1, got %+v", a)
	}

	miss, err := l.GetByID(ctx, "missing")
	if err != nil {
		t.Fatalf("get miss: %v", err)
	}
	if miss.ID != "" {
		t.Fatalf("expected zero-value attempt, got %+v", miss)
	}
}

func TestPaymentLedger_CorrelationClaims(t *testing.T) {
	l := NewPaymentLedger()
	ctx := context.Background()

	if _, err := l.Create(ctx, pendingAttempt("pa-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	ids := entities.CorrelationIDs{CheckoutRequestID: "ws_CO_1", MerchantRequestID: "mr-1"}
	if err := l.AttachCorrelationIDs(ctx, "pa-1", ids, json.RawMessage(`{"ok":true}`)); err != nil {
		t.Fatalf("attach: %v", err)
	}

	t.Run("lookup by either id", func(t *testing.T) {
		for _, cid := range []string{"ws_CO_1", "mr-1"} {
			a, err := l.FindByCorrelationID(ctx, cid)
			if err != nil {
				t.Fatalf("find %s: %v", cid, err)
			}
			if a.ID != "pa-1" {
				t.Fatalf("find %s: expected pa-1, got %+v", cid, a)
			}
		}
	})

	t.Run("re-attach by owner is idempotent", func(t *testing.T) {
		if err := l.AttachCorrelationIDs(ctx, "pa-1", ids, nil); err != nil {
			t.Fatalf("re-attach: %v", err)
		}
	})

	t.Run("claim by another attempt is rejected", func(t *testing.T) {
		if _, err := l.Create(ctx, pendingAttempt("pa-2")); err != nil {
			t.Fatalf("create: %v", err)
		}
		err := l.AttachCorrelationIDs(ctx, "pa-2", entities.CorrelationIDs{CheckoutRequestID: "ws_CO_1"}, nil)
		if !errors.Is(err, interfaces.ErrCorrelationIDClaimed) {
			t.Fatalf("expected ErrCorrelationIDClaimed, got %v", err)
		}
	})

	t.Run("unknown id misses with zero value", func(t *testing.T) {
		a, err := l.FindByCorrelationID(ctx, "nope")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if a.ID != "" {
			t.Fatalf("expected zero-value attempt, got %+v", a)
		}
	})
}

func TestPaymentLedger_CloseStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending closes once", func(t *testing.T) {
		l := NewPaymentLedger()
		if _, err := l.Create(ctx, pendingAttempt("pa-1")); err != nil {
			t.Fatalf("create: %v", err)
		}

		applied, err := l.CloseStatus(ctx, "pa-1", entities.AttemptStatusPending, entities.AttemptStatusCompleted, json.RawMessage(`{"ResultCode":0}`))
		if err != nil || !applied {
			t.Fatalf("expected applied close, got applied=%t err=%v", applied, err)
		}

		applied, err = l.CloseStatus(ctx, "pa-1", entities.AttemptStatusPending, entities.AttemptStatusFailed, nil)
		if err != nil {
			t.Fatalf("second close: %v", err)
		}
		if applied {
			t.Fatal("expected second close to be a no-op")
		}

		a, _ := l.GetByID(ctx, "pa-1")
		if a.Status != entities.AttemptStatusCompleted {
			t.Fatalf("terminal status overwritten: %s", a.Status)
		}
	})

	t.Run("unknown attempt is a no-op", func(t *testing.T) {
		l := NewPaymentLedger()
		applied, err := l.CloseStatus(ctx, "missing", entities.AttemptStatusPending, entities.AttemptStatusFailed, nil)
		if err != nil || applied {
			t.Fatalf("expected no-op, got applied=%t err=%v", applied, err)
		}
	})

	t.Run("concurrent closes apply exactly once", func(t *testing.T) {
		l := NewPaymentLedger()
		if _, err := l.Create(ctx, pendingAttempt("pa-1")); err != nil {
			t.Fatalf("create: %v", err)
		}

		var appliedCount int64
		var g errgroup.Group
		for i := 0; i < 16; i++ {
			to := entities.AttemptStatusCompleted
			if i%2 == 1 {
				to = entities.AttemptStatusFailed
			}
			g.Go(func() error {
				applied, err := l.CloseStatus(ctx, "pa-1", entities.AttemptStatusPending, to, nil)
				if applied {
					atomic.AddInt64(&appliedCount, 1)
				}
				return err
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatalf("concurrent close: %v", err)
		}
		if appliedCount != 1 {
			t.Fatalf("expected exactly one applied close, got %d", appliedCount)
		}

		a, _ := l.GetByID(ctx, "pa-1")
		if !a.Status.IsTerminal() {
			t.Fatalf("expected terminal status, got %s", a.Status)
		}
	})
}
