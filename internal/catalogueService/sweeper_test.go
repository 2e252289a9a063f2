package catalogue

import (
	model "catalogue-service/internal/models"
	"catalogue-service/internal/remaining"
	"catalogue-service/internal/repository"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestSweeper_SweepOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockCatalogueDB(ctrl)
	sweeper := NewSweeper(mockRepo, time.Minute, WithSweepClock(func() time.Time { return t0 }))

	mockRepo.EXPECT().DeactivateExpired(gomock.Any(), remaining.Cutoff(t0)).Return(int64(3), nil)
	n, err := sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	mockRepo.EXPECT().DeactivateExpired(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
	_, err = sweeper.SweepOnce(context.Background())
	require.Error(t, err)
}

func TestSweeper_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	repo := repository.NewMemoryRepo()

	seller := &model.Seller{Name: "alice", Email: "a@x.com"}
	require.NoError(t, repo.CreateSeller(ctx, seller))
	past := time.Now().UTC().Add(-2 * time.Hour)
	item := &model.Item{Title: "old", Description: "d", StartingPrice: 100, CurrentPrice: 100, DurationHours: 1,
		CreatedAt: past, EndTime: past.Add(time.Hour), Active: true, SellerID: seller.ID}
	require.NoError(t, repo.CreateItem(ctx, item))

	done := NewSweeper(repo, 10*time.Millisecond).Start(ctx)

	require.Eventually(t, func() bool {
		got, err := repo.GetItem(ctx, item.ID)
		return err == nil && !got.Active
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSweeper_NoRepoCallsAfterDone(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockCatalogueDB(ctrl)

	var mu sync.Mutex
	calls, closed := 0, false
	mockRepo.EXPECT().DeactivateExpired(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				t.Error("sweep ran after Start's channel was closed")
			}
			calls++
			return 0, nil
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := NewSweeper(mockRepo, time.Millisecond).Start(ctx)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls > 0
	}, 2*time.Second, time.Millisecond)

	cancel()
	<-done
	mu.Lock()
	closed = true
	mu.Unlock()

	time.Sleep(20 * time.Millisecond)
}

func TestSweeper_DisabledReturnsImmediately(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	go func() {
		NewSweeper(repository.NewMemoryRepo(), 0).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled sweeper kept running")
	}
}
