package installment

import (
	"fmt"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
)

// CalculateSplits maps (total, payment mode) to an ordered list of amounts in
// cents. The amounts always reconstruct the total exactly; rounding
// remainders go to the earliest installments.
func CalculateSplits(total int64, mode domain.PaymentMode, customSplits []int64, count int32) ([]int64, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: negative total %d", domain.ErrInconsistente, total)
	}

	switch mode {
	case domain.PaymentFull:
		return []int64{total}, nil

	case domain.PaymentSplit5050:
		first := (total + 1) / 2
		return []int64{first, total - first}, nil

	case domain.PaymentSplit3070:
		// ceil(total * 0.3) without floating point
		first := (3*total + 9) / 10
		return []int64{first, total - first}, nil

	case domain.PaymentSplitCustom:
		if len(customSplits) == 0 {
			return []int64{total}, nil
		}
		var sum int64
		for _, amount := range customSplits {
			if amount < 0 {
				return nil, fmt.Errorf("%w: negative split amount %d", domain.ErrInconsistente, amount)
			}
			sum += amount
		}
		if sum != total {
			return nil, fmt.Errorf("%w: custom splits sum %d, total %d", domain.ErrInconsistente, sum, total)
		}
		amounts := make([]int64, len(customSplits))
		copy(amounts, customSplits)
		return amounts, nil

	case domain.PaymentInstallments:
		n := int64(count)
		if n < 1 {
			n = 2
		}
		base := total / n
		remainder := total - base*n
		amounts := make([]int64, n)
		for i := int64(0); i < n; i++ {
			amounts[i] = base
			if i < remainder {
				amounts[i]++
			}
		}
		return amounts, nil

	default:
		return []int64{total}, nil
	}
}

// DueDates places installment 0 on the base date. Every mode other than full
// spaces the following installments 30 days apart.
func DueDates(base time.Time, n int, mode domain.PaymentMode) []time.Time {
	dates := make([]time.Time, n)
	for i := range dates {
		if mode == domain.PaymentFull || i == 0 {
			dates[i] = base
			continue
		}
		dates[i] = base.AddDate(0, 0, 30*i)
	}
	return dates
}
