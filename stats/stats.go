package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// GroupSize is how many records of one compression level get folded
// into a single summary record
const GroupSize = 100

// GameRecord is either a single game (CompressionIndex 0) or a summary
// of GamesCount games.
type GameRecord struct {
	SessionID        string    `json:"sessionId,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MedianScore      float64   `json:"medianScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

// GameStats is the score history across sessions
type GameStats struct {
	mu      sync.RWMutex
	records []GameRecord
}

func NewGameStats() *GameStats {
	return &GameStats{records: make([]GameRecord, 0)}
}

// AddGame records one finished game
func (s *GameStats) AddGame(sessionID string, score int, start, end time.Time) {
	d := end.Sub(start).Seconds()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, GameRecord{
		SessionID:       sessionID,
		StartTime:       start,
		EndTime:         end,
		Score:           score,
		GamesCount:      1,
		AverageScore:    float64(score),
		MedianScore:     float64(score),
		MaxScore:        score,
		MinScore:        score,
		AverageDuration: d,
		MaxDuration:     d,
		MinDuration:     d,
	})
	s.compact()
}

// compact folds full groups level by level until a level has fewer than
// GroupSize records. Caller holds the write lock.
func (s *GameStats) compact() {
	sort.SliceStable(s.records, func(i, j int) bool {
		a, b := s.records[i], s.records[j]
		if a.CompressionIndex != b.CompressionIndex {
			return a.CompressionIndex < b.CompressionIndex
		}
		return a.StartTime.Before(b.StartTime)
	})

	for level := 0; ; level++ {
		var atLevel, rest []GameRecord
		for _, r := range s.records {
			if r.CompressionIndex == level {
				atLevel = append(atLevel, r)
			} else {
				rest = append(rest, r)
			}
		}
		if len(atLevel) < GroupSize {
			return
		}

		var folded []GameRecord
		for i := 0; i < len(atLevel); i += GroupSize {
			end := i + GroupSize
			if end > len(atLevel) {
				folded = append(folded, atLevel[i:]...)
				break
			}
			folded = append(folded, summarize(atLevel[i:end], level+1))
		}
		s.records = append(rest, folded...)
	}
}

func summarize(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	var totalScore, totalDuration float64
	medians := make([]float64, 0, len(group))
	for _, g := range group {
		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
		for i := 0; i < g.GamesCount; i++ {
			medians = append(medians, g.MedianScore)
		}
	}

	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	out.MedianScore = median(medians)
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2
	}
	return values[n/2]
}

// Records returns a copy of the stored records
func (s *GameStats) Records() []GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]GameRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *GameStats) GamesPlayed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, r := range s.records {
		total += r.GamesCount
	}
	return total
}

func (s *GameStats) AverageScore() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	var n int
	for _, r := range s.records {
		sum += r.AverageScore * float64(r.GamesCount)
		n += r.GamesCount
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// MedianScore weights each record's median by its game count
func (s *GameStats) MedianScore() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []float64
	for _, r := range s.records {
		for i := 0; i < r.GamesCount; i++ {
			all = append(all, r.MedianScore)
		}
	}
	return median(all)
}

func (s *GameStats) MaxScore() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := 0
	for _, r := range s.records {
		best = max(best, r.MaxScore)
	}
	return best
}

// AverageDuration is in seconds
func (s *GameStats) AverageDuration() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	var n int
	for _, r := range s.records {
		sum += r.AverageDuration * float64(r.GamesCount)
		n += r.GamesCount
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Save writes the records as JSON, creating parent directories
func (s *GameStats) Save(path string) error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.records, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create stats directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	return nil
}

// Load replaces the records with the contents of path. A missing file
// leaves an empty history.
func (s *GameStats) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.mu.Lock()
		s.records = make([]GameRecord, 0)
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("read stats file: %w", err)
	}

	var records []GameRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decode stats file: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}
