package server

import (
	"testing"
	"time"
)

func sessionFor(gameID string, duration int) PlaySession {
	return PlaySession{
		ID:       gameID + "-session",
		GameID:   gameID,
		Date:     time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC),
		Duration: duration,
	}
}

func TestAggregatePlaytimeSumsPerGame(t *testing.T) {
	games := []Game{
		{ID: "a", Title: "Azul"},
		{ID: "b", Title: "Brass"},
	}
	sessions := []PlaySession{
		sessionFor("a", 60),
		sessionFor("a", 30),
		sessionFor("b", 45),
	}

	result := aggregatePlaytime(games, sessions)
	if len(result) != 2 {
		t.Fatalf("expected 2 games, got %d", len(result))
	}
	if result[0].TotalPlaytime != 90 {
		t.Fatalf("expected 90 minutes for a, got %d", result[0].TotalPlaytime)
	}
	if result[1].TotalPlaytime != 45 {
		t.Fatalf("expected 45 minutes for b, got %d", result[1].TotalPlaytime)
	}
}

func TestAggregatePlaytimeZeroForUnplayed(t *testing.T) {
	games := []Game{{ID: "a"}, {ID: "b"}}
	sessions := []PlaySession{sessionFor("a", 20)}

	result := aggregatePlaytime(games, sessions)
	if result[1].TotalPlaytime != 0 {
		t.Fatalf("expected 0 for unplayed game, got %d", result[1].TotalPlaytime)
	}
}

func TestAggregatePlaytimePreservesOrder(t *testing.T) {
	games := []Game{{ID: "c"}, {ID: "a"}, {ID: "b"}}
	result := aggregatePlaytime(games, nil)
	for i, game := range games {
		if result[i].ID != game.ID {
			t.Fatalf("expected %s at index %d, got %s", game.ID, i, result[i].ID)
		}
	}
}

func TestComputeStats(t *testing.T) {
	games := []Game{{ID: "a"}, {ID: "b"}}
	sessions := []PlaySession{
		sessionFor("a", 60),
		sessionFor("a", 30),
		sessionFor("b", 45),
	}

	stats := computeStats(games, sessions)
	if stats.TotalGames != 2 {
		t.Fatalf("expected 2 games, got %d", stats.TotalGames)
	}
	if stats.TotalSessions != 3 {
		t.Fatalf("expected 3 sessions, got %d", stats.TotalSessions)
	}
	if stats.TotalPlaytime != 135 {
		t.Fatalf("expected 135 minutes, got %d", stats.TotalPlaytime)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := computeStats(nil, nil)
	if stats.TotalGames != 0 || stats.TotalSessions != 0 || stats.TotalPlaytime != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestGenreBreakdown(t *testing.T) {
	games := []GameWithPlaytime{
		{Game: Game{ID: "a", Genre: "Strategy"}, TotalPlaytime: 30},
		{Game: Game{ID: "b", Genre: "Strategy"}, TotalPlaytime: 60},
		{Game: Game{ID: "c", Genre: ""}, TotalPlaytime: 45},
		{Game: Game{ID: "d", Genre: "Party"}, TotalPlaytime: 0},
	}

	result := genreBreakdown(games)
	if len(result) != 2 {
		t.Fatalf("expected 2 genres, got %d: %+v", len(result), result)
	}
	if result[0].Genre != "Strategy" || result[0].Minutes != 90 {
		t.Fatalf("expected Strategy at 90, got %+v", result[0])
	}
	if result[1].Genre != "Uncategorized" || result[1].Minutes != 45 {
		t.Fatalf("expected Uncategorized at 45, got %+v", result[1])
	}
}

func TestGenreBreakdownExcludesZeroGroups(t *testing.T) {
	games := []GameWithPlaytime{
		{Game: Game{ID: "a", Genre: "Party"}, TotalPlaytime: 0},
		{Game: Game{ID: "b", Genre: "Party"}, TotalPlaytime: 0},
	}
	if result := genreBreakdown(games); len(result) != 0 {
		t.Fatalf("expected no genres, got %+v", result)
	}
}

func TestGenreBreakdownSortedDescending(t *testing.T) {
	games := []GameWithPlaytime{
		{Game: Game{ID: "a", Genre: "One"}, TotalPlaytime: 10},
		{Game: Game{ID: "b", Genre: "Two"}, TotalPlaytime: 50},
		{Game: Game{ID: "c", Genre: "Three"}, TotalPlaytime: 30},
	}
	result := genreBreakdown(games)
	for i := 1; i < len(result); i++ {
		if result[i].Minutes > result[i-1].Minutes {
			t.Fatalf("breakdown not sorted descending: %+v", result)
		}
	}
}

func TestTopPlayed(t *testing.T) {
	games := []GameWithPlaytime{
		{Game: Game{ID: "a"}, TotalPlaytime: 10},
		{Game: Game{ID: "b"}, TotalPlaytime: 0},
		{Game: Game{ID: "c"}, TotalPlaytime: 50},
		{Game: Game{ID: "d"}, TotalPlaytime: 30},
	}

	result := topPlayed(games, 2)
	if len(result) != 2 {
		t.Fatalf("expected 2 games, got %d", len(result))
	}
	if result[0].ID != "c" || result[1].ID != "d" {
		t.Fatalf("expected [c d], got %+v", result)
	}
}

func TestTopPlayedExcludesUnplayed(t *testing.T) {
	games := []GameWithPlaytime{
		{Game: Game{ID: "a"}, TotalPlaytime: 0},
		{Game: Game{ID: "b"}, TotalPlaytime: 5},
	}
	result := topPlayed(games, 10)
	if len(result) != 1 || result[0].ID != "b" {
		t.Fatalf("expected only played games, got %+v", result)
	}
}
