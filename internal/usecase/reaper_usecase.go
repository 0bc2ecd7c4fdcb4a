package usecase

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"
)

const (
	// sweepPageSize bounds provider-call fan-out per invocation; a backlog
	// drains over successive sweeps.
	sweepPageSize = 50
	// sweepBatchSize is the number of sessions reaped concurrently. The batch
	// boundary is a join point: a batch fully finishes before the next starts.
	sweepBatchSize = 5
)

// SweepResult aggregates one reap pass. Failed sessions stay pending and are
// retried on the next sweep.
type SweepResult struct {
	Archived int
	Failed   int
}

type IReaperUseCase interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

// ReaperUseCase archives checkout sessions that expired without completing,
// disabling their provider-side plan so it cannot be purchased out-of-band.
//
// Reaping races safely with webhook completion: ClaimCompleted wins a late
// payment, and an archived plan simply makes completion impossible at the
// provider, which is the desired outcome.
type ReaperUseCase struct {
	sessions interfaces.ICheckoutSessionRepository
	provider interfaces.IPaymentProvider
}

var _ IReaperUseCase = (*ReaperUseCase)(nil)

func NewReaperUseCase(sessions interfaces.ICheckoutSessionRepository, provider interfaces.IPaymentProvider) *ReaperUseCase {
	return &ReaperUseCase{sessions: sessions, provider: provider}
}

func (u *ReaperUseCase) Sweep(ctx context.Context) (SweepResult, error) {
	if u.provider == nil {
		return SweepResult{}, ErrProviderNotConfigured
	}

	expired, err := u.sessions.FindExpiredPending(ctx, sweepPageSize)
	if err != nil {
		log.Printf("[reaper][usecase] expired-pending query failed err=%v", err)
		return SweepResult{}, err
	}
	if len(expired) == 0 {
		log.Printf("[reaper][usecase] sweep found nothing to reap")
		return SweepResult{}, nil
	}
	log.Printf("[reaper][usecase] sweep start expired=%d", len(expired))

	var archived, failed atomic.Int32
	for start := 0; start < len(expired); start += sweepBatchSize {
		end := start + sweepBatchSize
		if end > len(expired) {
			end = len(expired)
		}

		var wg sync.WaitGroup
		for _, s := range expired[start:end] {
			wg.Add(1)
			go func(s entities.CheckoutSession) {
				defer wg.Done()
				if err := u.reapOne(ctx, s); err != nil {
					log.Printf("[reaper][usecase] reap failed checkout_id=%s plan_id=%s err=%v", s.CheckoutID, s.PlanID, err)
					failed.Add(1)
					return
				}
				archived.Add(1)
			}(s)
		}
		wg.Wait()
	}

	result := SweepResult{Archived: int(archived.Load()), Failed: int(failed.Load())}
	log.Printf("[reaper][usecase] sweep done archived=%d failed=%d", result.Archived, result.Failed)
	return result, nil
}

func (u *ReaperUseCase) reapOne(ctx context.Context, s entities.CheckoutSession) error {
	// Sessions on a shared pre-existing plan have nothing to disable at the
	// provider; they only need the local archive mark.
	if s.PlanID != "" {
		if err := u.provider.ArchivePlan(ctx, s.PlanID); err != nil {
			return err
		}
	}
	return u.sessions.Archive(ctx, s.CheckoutID)
}
