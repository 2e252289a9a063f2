package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	catalogue "catalogue-service/internal/catalogueService"
	model "catalogue-service/internal/models"
	"catalogue-service/internal/repository/sqlite"
)

// Benchmark 1: CreateItem - single seller, sequential
func Benchmark_CreateItem_Sequential(b *testing.B) {
	_, svc, sellerIDs := setupService(b, 1, 0)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.CreateItem(ctx, model.NewItem{
			Title:         fmt.Sprintf("item_%d", i),
			Description:   "Independent benchmark item",
			StartingPrice: model.MoneyFromUnits(float64(50 + rand.Intn(100))),
			DurationHours: 2,
			SellerID:      sellerIDs[0],
		}); err != nil {
			b.Fatalf("failed to create item: %v", err)
		}
	}
}

// Benchmark 2: CreateItem - many goroutines against one store
func Benchmark_CreateItem_Concurrent(b *testing.B) {
	_, svc, sellerIDs := setupService(b, 10, 0)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var n int64
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			i := atomic.AddInt64(&n, 1)
			_, _ = svc.CreateItem(ctx, model.NewItem{
				Title:         fmt.Sprintf("parallel_item_%d", i),
				Description:   "Used to simulate many sellers listing concurrently",
				StartingPrice: model.MoneyFromUnits(10),
				DurationHours: 1,
				SellerID:      sellerIDs[i%int64(len(sellerIDs))],
			})
		}
	})
}

// Benchmark 3: ListItems - active scope over a large catalogue
func Benchmark_ListItems_Active(b *testing.B) {
	_, svc, _ := setupService(b, 10, 5000)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.ListItems(ctx, model.ScopeActive); err != nil {
			b.Fatalf("failed to list items: %v", err)
		}
	}
}

// Benchmark 4: SearchItems - concurrent readers
func Benchmark_SearchItems_Concurrent(b *testing.B) {
	_, svc, _ := setupService(b, 10, 5000)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			_, _ = svc.SearchItems(ctx, fmt.Sprintf("title_%d", rnd.Intn(100)), model.ScopeAll)
		}
	})
}

// Benchmark 5: Mixed Workload (listers + creators + sweeper concurrently)
func Benchmark_MixedWorkload_WithSweeper(b *testing.B) {
	repo, svc, sellerIDs := setupService(b, 10, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := catalogue.NewSweeper(repo, time.Millisecond)
	go sweeper.Run(ctx)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			if rnd.Intn(2) == 0 {
				_, _ = svc.ListItems(ctx, model.ScopeActive)
				continue
			}
			_, _ = svc.CreateItem(ctx, model.NewItem{
				Title:         fmt.Sprintf("mixed_%d", rnd.Int()),
				Description:   "mixed workload item",
				StartingPrice: model.MoneyFromUnits(5),
				DurationHours: 1,
				SellerID:      sellerIDs[rnd.Intn(len(sellerIDs))],
			})
		}
	})
}

// Benchmark 6: CreateItem on the SQLite store
func Benchmark_CreateItem_SQLite(b *testing.B) {
	store, err := sqlite.Open(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatalf("failed to open sqlite store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	svc := catalogue.NewCatalogueService(store)
	seller, err := svc.CreateSeller(ctx, "bench", "bench@example.com")
	if err != nil {
		b.Fatalf("failed to create seller: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.CreateItem(ctx, model.NewItem{
			Title:         fmt.Sprintf("sqlite_item_%d", i),
			Description:   "durable benchmark item",
			StartingPrice: model.MoneyFromUnits(20),
			DurationHours: 3,
			SellerID:      seller.ID,
		}); err != nil {
			b.Fatalf("failed to create item: %v", err)
		}
	}
}
