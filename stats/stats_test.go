package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func addGames(s *GameStats, scores ...int) {
	for i, score := range scores {
		start := epoch.Add(time.Duration(i) * time.Minute)
		s.AddGame("test", score, start, start.Add(10*time.Second))
	}
}

func TestAggregates(t *testing.T) {
	s := NewGameStats()
	if s.GamesPlayed() != 0 || s.AverageScore() != 0 || s.MedianScore() != 0 || s.MaxScore() != 0 {
		t.Fatal("Expected empty stats to report zeros")
	}

	addGames(s, 1, 4, 2, 9)

	if got := s.GamesPlayed(); got != 4 {
		t.Errorf("Expected 4 games, got %d", got)
	}
	if got := s.AverageScore(); got != 4 {
		t.Errorf("Expected average 4, got %f", got)
	}
	if got := s.MedianScore(); got != 3 {
		t.Errorf("Expected median 3, got %f", got)
	}
	if got := s.MaxScore(); got != 9 {
		t.Errorf("Expected max 9, got %d", got)
	}
	if got := s.AverageDuration(); got != 10 {
		t.Errorf("Expected average duration 10s, got %f", got)
	}
}

func TestCompaction(t *testing.T) {
	s := NewGameStats()
	scores := make([]int, GroupSize+3)
	for i := range scores {
		scores[i] = i
	}
	addGames(s, scores...)

	records := s.Records()
	if len(records) != 4 {
		t.Fatalf("Expected 3 raw records and one summary, got %d", len(records))
	}

	var summary *GameRecord
	for i := range records {
		if records[i].CompressionIndex == 1 {
			summary = &records[i]
		}
	}
	if summary == nil {
		t.Fatal("Expected a level 1 summary record")
	}
	if summary.GamesCount != GroupSize {
		t.Errorf("Expected %d games in summary, got %d", GroupSize, summary.GamesCount)
	}
	if summary.MinScore != 0 || summary.MaxScore != GroupSize-1 {
		t.Errorf("Unexpected summary range %d..%d", summary.MinScore, summary.MaxScore)
	}
	if got := s.GamesPlayed(); got != GroupSize+3 {
		t.Errorf("Expected %d games after compaction, got %d", GroupSize+3, got)
	}
	if got := s.MaxScore(); got != GroupSize+2 {
		t.Errorf("Expected max %d, got %d", GroupSize+2, got)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stats.json")

	s := NewGameStats()
	addGames(s, 3, 5)
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := NewGameStats()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.GamesPlayed() != 2 || loaded.MaxScore() != 5 {
		t.Errorf("Expected 2 games max 5, got %d max %d", loaded.GamesPlayed(), loaded.MaxScore())
	}
	if got := loaded.Records()[0].SessionID; got != "test" {
		t.Errorf("Expected session id to round trip, got %q", got)
	}
}

func TestLoadMissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()

	s := NewGameStats()
	addGames(s, 1)
	if err := s.Load(filepath.Join(dir, "absent.json")); err != nil {
		t.Errorf("Expected missing file to load empty, got %v", err)
	}
	if s.GamesPlayed() != 0 {
		t.Errorf("Expected empty history, got %d", s.GamesPlayed())
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(bad); err == nil {
		t.Error("Expected an error for a corrupt file")
	}
}
