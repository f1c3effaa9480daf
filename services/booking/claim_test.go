package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"sweepstack/models"
)

func bookedJob(t *testing.T, repo *memBookingRepo, id string) {
	t.Helper()
	err := repo.Create(context.Background(), &models.Booking{
		ID:          id,
		CustomerID:  "cust-1",
		ServiceType: models.ServiceStandardClean,
		Status:      models.StatusBooked,
	})
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}
}

func TestClaimExclusivity(t *testing.T) {
	repo := newMemBookingRepo()
	svc := newTestService(repo)
	bookedJob(t, repo, "BK-20270301-AAAAAA")

	const claimants = 50
	var wg sync.WaitGroup
	winners := make(chan string, claimants)
	conflicts := make(chan error, claimants)

	for i := 0; i < claimants; i++ {
		cleaner := fmt.Sprintf("cleaner-%02d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := svc.ClaimJob(context.Background(), "BK-20270301-AAAAAA", cleaner)
			if err != nil {
				conflicts <- err
				return
			}
			winners <- b.CleanerID
		}()
	}
	wg.Wait()
	close(winners)
	close(conflicts)

	if len(winners) != 1 {
		t.Fatalf("winners = %d, want exactly 1", len(winners))
	}
	winner := <-winners

	if len(conflicts) != claimants-1 {
		t.Errorf("conflicts = %d, want %d", len(conflicts), claimants-1)
	}
	for err := range conflicts {
		if CodeOf(err) != CodeAlreadyClaimed {
			t.Errorf("loser got %v, want alreadyClaimed", err)
		}
	}

	b, _ := repo.GetByID(context.Background(), "BK-20270301-AAAAAA")
	if b.CleanerID == "" || b.CleanerID != winner {
		t.Errorf("stored cleaner %q does not match winner %q", b.CleanerID, winner)
	}
	if b.Status != models.StatusBooked {
		t.Errorf("claim changed status to %s; must stay BOOKED until arrival", b.Status)
	}
}

func TestClaimIdempotentRetry(t *testing.T) {
	repo := newMemBookingRepo()
	svc := newTestService(repo)
	bookedJob(t, repo, "BK-20270301-BBBBBB")

	first, err := svc.ClaimJob(context.Background(), "BK-20270301-BBBBBB", "cleaner-7")
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}

	// A dropped response makes the winner retry the identical call; it
	// must observe success again with the same state, not a conflict.
	retry, err := svc.ClaimJob(context.Background(), "BK-20270301-BBBBBB", "cleaner-7")
	if err != nil {
		t.Fatalf("retry by winner: %v", err)
	}
	if retry.CleanerID != first.CleanerID || retry.Status != first.Status {
		t.Errorf("retry state %+v differs from first %+v", retry, first)
	}
}

func TestClaimFailureModes(t *testing.T) {
	repo := newMemBookingRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	bookedJob(t, repo, "BK-20270301-CCCCCC")
	if _, err := svc.ClaimJob(ctx, "BK-20270301-CCCCCC", "cleaner-1"); err != nil {
		t.Fatalf("setup claim: %v", err)
	}

	repo.Create(ctx, &models.Booking{ID: "BK-20270301-DDDDDD", Status: models.StatusDraft})
	repo.Create(ctx, &models.Booking{
		ID: "BK-20270301-EEEEEE", Status: models.StatusCompleted, CleanerID: "cleaner-1",
	})

	tests := []struct {
		name      string
		bookingID string
		cleanerID string
		wantCode  string
	}{
		{"other cleaner after claim", "BK-20270301-CCCCCC", "cleaner-2", CodeAlreadyClaimed},
		{"draft is not claimable", "BK-20270301-DDDDDD", "cleaner-2", CodeInvalidTransition},
		{"completed is not claimable", "BK-20270301-EEEEEE", "cleaner-1", CodeInvalidTransition},
		{"unknown booking", "BK-00000000-XXXXXX", "cleaner-2", CodeNotFound},
		{"missing cleaner id", "BK-20270301-CCCCCC", "", CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ClaimJob(ctx, tt.bookingID, tt.cleanerID)
			if CodeOf(err) != tt.wantCode {
				t.Errorf("got %v, want code %q", err, tt.wantCode)
			}
		})
	}

	// Failed claims must never mutate state.
	b, _ := repo.GetByID(ctx, "BK-20270301-CCCCCC")
	if b.CleanerID != "cleaner-1" {
		t.Errorf("failed claim overwrote winner: %q", b.CleanerID)
	}
}
