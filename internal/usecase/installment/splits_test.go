package installment

import (
	"errors"
	"testing"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
)

func sum(amounts []int64) int64 {
	var total int64
	for _, a := range amounts {
		total += a
	}
	return total
}

func TestCalculateSplits(t *testing.T) {
	t.Run("full is a single payment", func(t *testing.T) {
		amounts, err := CalculateSplits(10_000, domain.PaymentFull, nil, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(amounts) != 1 || amounts[0] != 10_000 {
			t.Fatalf("got %v", amounts)
		}
	})

	t.Run("50/50 rounds the first half up", func(t *testing.T) {
		amounts, err := CalculateSplits(10_001, domain.PaymentSplit5050, nil, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amounts[0] != 5_001 || amounts[1] != 5_000 {
			t.Fatalf("got %v", amounts)
		}
	})

	t.Run("30/70 rounds the entry up", func(t *testing.T) {
		amounts, err := CalculateSplits(10_001, domain.PaymentSplit3070, nil, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amounts[0] != 3_001 {
			t.Fatalf("entry = %d, want 3001", amounts[0])
		}
		if sum(amounts) != 10_001 {
			t.Fatalf("sum = %d", sum(amounts))
		}
	})

	t.Run("installments spread the remainder forward", func(t *testing.T) {
		amounts, err := CalculateSplits(10_000, domain.PaymentInstallments, nil, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int64{3_334, 3_333, 3_333}
		for i := range want {
			if amounts[i] != want[i] {
				t.Fatalf("got %v, want %v", amounts, want)
			}
		}
	})

	t.Run("custom splits must reconstruct the total", func(t *testing.T) {
		_, err := CalculateSplits(10_000, domain.PaymentSplitCustom, []int64{4_000, 5_000}, 0)
		if !errors.Is(err, domain.ErrInconsistente) {
			t.Fatalf("expected ErrInconsistente, got %v", err)
		}

		amounts, err := CalculateSplits(10_000, domain.PaymentSplitCustom, []int64{4_000, 6_000}, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amounts[0] != 4_000 || amounts[1] != 6_000 {
			t.Fatalf("got %v", amounts)
		}
	})

	t.Run("negative total rejected", func(t *testing.T) {
		if _, err := CalculateSplits(-1, domain.PaymentFull, nil, 0); !errors.Is(err, domain.ErrInconsistente) {
			t.Fatalf("expected ErrInconsistente, got %v", err)
		}
	})

	t.Run("every mode sums exactly", func(t *testing.T) {
		totals := []int64{0, 1, 99, 10_000, 10_001, 123_457, 999_999_999}
		modes := []domain.PaymentMode{
			domain.PaymentFull, domain.PaymentSplit5050, domain.PaymentSplit3070, domain.PaymentInstallments,
		}
		for _, total := range totals {
			for _, mode := range modes {
				amounts, err := CalculateSplits(total, mode, nil, 5)
				if err != nil {
					t.Fatalf("%s/%d: %v", mode, total, err)
				}
				if sum(amounts) != total {
					t.Fatalf("%s/%d: sum %d", mode, total, sum(amounts))
				}
				for i, a := range amounts {
					if a < 0 {
						t.Fatalf("%s/%d: negative amount %d at %d", mode, total, a, i)
					}
				}
			}
		}
	})
}

func TestDueDates(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("30 day spacing", func(t *testing.T) {
		dates := DueDates(base, 3, domain.PaymentInstallments)
		if !dates[0].Equal(base) {
			t.Fatalf("first due date moved: %v", dates[0])
		}
		if !dates[1].Equal(base.AddDate(0, 0, 30)) || !dates[2].Equal(base.AddDate(0, 0, 60)) {
			t.Fatalf("got %v", dates)
		}
	})

	t.Run("full mode stays on the base date", func(t *testing.T) {
		dates := DueDates(base, 1, domain.PaymentFull)
		if !dates[0].Equal(base) {
			t.Fatalf("got %v", dates[0])
		}
	})
}
