// VGTrends - Video Game Sales and Search Trends Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vgtrends

package database

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/vgtrends/internal/config"
	"github.com/tomtom215/vgtrends/internal/models"
)

// testDBSemaphore serializes DuckDB usage across tests. Concurrent CGO
// calls from many in-memory databases can hang under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

var testDBMutex sync.Mutex

// setupTestDB creates an empty in-memory database. The semaphore is held
// until the test completes.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	cfg := &config.DatabaseConfig{
		Path:        ":memory:",
		MaxMemory:   "512MB",
		SkipIndexes: true,
	}

	type result struct {
		db  *DB
		err error
	}

	resultCh := make(chan result, 1)
	go func() {
		testDBMutex.Lock()
		db, err := New(cfg)
		testDBMutex.Unlock()
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Failed to close test database: %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatal("Timed out creating test database")
		return nil
	}
}

// setupSeededDB returns a database loaded with the fixture datasets.
func setupSeededDB(t *testing.T) *DB {
	t.Helper()

	db := setupTestDB(t)
	if err := db.Seed(context.Background(), fixtureGames(), fixtureTrends()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return db
}

// fixtureGames is in load order. The two Puzzle titles tie on every sales
// column; the Call of Duty rows are platform editions of one title.
func fixtureGames() []models.GameSale {
	return []models.GameSale{
		{Name: "Wii Sports", Year: 2006, Genre: "Sports", Platform: "Wii", Publisher: "Nintendo",
			NASales: 41.49, EUSales: 29.02, JPSales: 3.77, OtherSales: 8.46, GlobalSales: 82.74},
		{Name: "New Super Mario Bros.", Year: 2006, Genre: "Platform", Platform: "DS", Publisher: "Nintendo",
			NASales: 11.38, EUSales: 9.23, JPSales: 6.5, OtherSales: 2.9, GlobalSales: 30.01},
		{Name: "Wii Play", Year: 2006, Genre: "Misc", Platform: "Wii", Publisher: "Nintendo",
			NASales: 14.03, EUSales: 9.2, JPSales: 2.93, OtherSales: 2.85, GlobalSales: 29.02},
		{Name: "Pokemon Diamond", Year: 2006, Genre: "Role-Playing", Platform: "DS", Publisher: "Nintendo",
			NASales: 6.42, EUSales: 4.52, JPSales: 6.04, OtherSales: 1.37, GlobalSales: 18.36},
		{Name: "Tie A", Year: 2006, Genre: " Puzzle ", Platform: "PC", Publisher: "Indie",
			NASales: 1, GlobalSales: 1},
		{Name: "Tie B", Year: 2006, Genre: "Puzzle", Platform: "PC", Publisher: "Indie",
			NASales: 1, GlobalSales: 1},
		{Name: "Zero Sales", Year: 2006, Genre: "", Platform: "Wii", Publisher: "Nobody"},
		{Name: "Call of Duty: Black Ops", Year: 2010, Genre: "Shooter", Platform: "X360", Publisher: "Activision",
			NASales: 9.7, EUSales: 3.68, JPSales: 0.11, OtherSales: 1.13, GlobalSales: 14.62},
		{Name: "Call of Duty: Black Ops", Year: 2010, Genre: "Shooter", Platform: "PS3", Publisher: "Activision",
			NASales: 5.99, EUSales: 4.37, JPSales: 0.48, OtherSales: 1.79, GlobalSales: 12.63},
	}
}

func fixtureTrends() []models.Trend {
	return []models.Trend{
		{Query: "minecraft", Year: 2010, Category: "Games", Region: "North America", Location: "United States", CountryCode: "US", Rank: 1},
		{Query: "fortnite", Year: 2010, Category: "Games", Region: "North America", Location: "Canada", CountryCode: "CA", Rank: 2},
		{Query: "call of duty", Year: 2010, Category: "Games", Region: "Europe", Location: "Germany", CountryCode: "DE", Rank: 1},
		{Query: "pokemon", Year: 2011, Category: "Games", Region: "Japan", Location: "Japan", CountryCode: "JP", Rank: 1},
		{Query: "wii", Year: 2006, Category: "Consoles", Region: "Europe", Location: "France", CountryCode: "FR", Rank: 1},
		{Query: "gta", Year: 2010, Category: "Games", Region: "Latin America", Location: "Brazil", CountryCode: "BR", Rank: 1},
		{Query: "zelda", Year: 2012, Category: "Games", Region: "Asia Pacific", Location: "Australia", CountryCode: "AU", Rank: 1},
		{Query: "global query", Year: 2010, Category: "Games", Region: "Global", Location: "Global", Rank: 1},
		{Query: "xbox", Year: 2010, Category: "Consoles", Region: "North America", Location: "United States", CountryCode: "US", Rank: 2},
		{Query: "halo", Year: 2010, Category: "Games", Region: "North America", Location: "United States", CountryCode: "US", Rank: 3},
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNew_InMemory(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if db.Conn() == nil {
		t.Fatal("Conn() returned nil")
	}

	for _, table := range []string{"game_sales", "trends"} {
		var n int
		if err := db.Conn().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Fatalf("table %s not created: %v", table, err)
		}
		if n != 0 {
			t.Errorf("table %s has %d rows, want 0", table, n)
		}
	}
}

func TestEnsureContext(t *testing.T) {
	db := &DB{}

	ctx, cancel := db.ensureContext(context.Background())
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Error("expected default deadline on context without one")
	}

	parent, parentCancel := context.WithTimeout(context.Background(), time.Second)
	defer parentCancel()
	ctx, cancel2 := db.ensureContext(parent)
	defer cancel2()
	want, _ := parent.Deadline()
	if got, _ := ctx.Deadline(); !got.Equal(want) {
		t.Errorf("deadline = %v, want parent deadline %v", got, want)
	}
}
