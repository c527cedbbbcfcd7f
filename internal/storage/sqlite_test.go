package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSubmitAndTopScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, s := range []struct {
		name  string
		score int
	}{
		{"ada", 100},
		{"bob", 50},
		{"cyd", 200},
	} {
		if err := store.SubmitScore(ctx, s.name, s.score); err != nil {
			t.Fatalf("SubmitScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(ctx, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []string{"cyd", "ada", "bob"}
	for i, name := range want {
		if scores[i].Name != name {
			t.Errorf("rank %d = %s, expected %s", i+1, scores[i].Name, name)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		store.SubmitScore(ctx, "p", (i+1)*100)
	}

	scores, err := store.TopScores(ctx, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SubmitScore(ctx, "first", 7)
	store.SubmitScore(ctx, "second", 7)

	scores, err := store.TopScores(ctx, 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Name != "first" || scores[1].Name != "second" {
		t.Errorf("tie order = %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	high, err := store.HighScore(ctx)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	store.SubmitScore(ctx, "a", 100)
	store.SubmitScore(ctx, "b", 300)
	store.SubmitScore(ctx, "c", 200)

	high, err = store.HighScore(ctx)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.SubmitScore(ctx, "a", 100)
	store.SubmitScore(ctx, "b", 200)

	if err := store.ClearScores(ctx); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(ctx, 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreRecordGame(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rec := GameRecord{
		SessionID: "s-1",
		Score:     4,
		Length:    5,
		Ticks:     37,
		EndReason: "wall",
		Duration:  3700 * time.Millisecond,
	}
	if _, err := store.RecordGame(ctx, rec); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}

	got, err := store.gameBySession(ctx, "s-1")
	if err != nil {
		t.Fatalf("gameBySession() failed: %v", err)
	}
	if got == nil {
		t.Fatal("gameBySession() returned nil")
	}
	if got.Score != 4 || got.Length != 5 || got.Ticks != 37 || got.EndReason != "wall" {
		t.Errorf("record = %+v", got)
	}
	if got.Duration != 3700*time.Millisecond {
		t.Errorf("duration = %v, expected 3.7s", got.Duration)
	}

	if _, err := store.RecordGame(ctx, rec); !errors.Is(err, ErrDuplicateGame) {
		t.Errorf("second RecordGame() = %v, expected ErrDuplicateGame", err)
	}

	missing, err := store.gameBySession(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("gameBySession(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreRecentGamesAndStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i, score := range []int{2, 9, 5} {
		_, err := store.RecordGame(ctx, GameRecord{
			SessionID: string(rune('a' + i)),
			Score:     score,
			Length:    score + 1,
			EndReason: "self",
			Duration:  time.Second,
		})
		if err != nil {
			t.Fatalf("RecordGame() failed: %v", err)
		}
	}

	games, err := store.RecentGames(ctx, 2)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 2 || games[0].SessionID != "c" {
		t.Errorf("recent games = %+v, expected newest first", games)
	}

	st, err := store.GameStats(ctx)
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if st.Games != 3 || st.BestScore != 9 || st.Longest != 10 {
		t.Errorf("stats = %+v", st)
	}
	if st.AvgScore < 5.33 || st.AvgScore > 5.34 {
		t.Errorf("avg = %v, expected 5.33", st.AvgScore)
	}
	if st.TotalTime != 3*time.Second {
		t.Errorf("total time = %v, expected 3s", st.TotalTime)
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	st, err := store.GameStats(context.Background())
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("empty stats = %+v", st)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
