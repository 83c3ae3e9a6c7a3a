package server

import "time"

// SuggestionFilter narrows the library for the "what should we play"
// page. Zero-valued options are no-ops; the set ones apply together.
type SuggestionFilter struct {
	PlayerCount        int
	FavoriteOnly       bool
	NotPlayedSinceDays int
	MaxPlaytimeMinutes int
}

// Active reports whether any filter option is set. When nothing is set
// Apply returns the input unchanged and the page shows no suggestions.
func (f SuggestionFilter) Active() bool {
	return f.PlayerCount > 0 || f.FavoriteOnly || f.NotPlayedSinceDays > 0 || f.MaxPlaytimeMinutes > 0
}

// Apply filters the games, preserving input order. Sessions are needed
// only for the recency option: a game played after now minus N days is
// excluded.
func (f SuggestionFilter) Apply(games []Game, sessions []PlaySession, now time.Time) []Game {
	filtered := games

	if f.PlayerCount > 0 {
		filtered = keep(filtered, func(game Game) bool {
			return game.MinPlayers <= f.PlayerCount && game.MaxPlayers >= f.PlayerCount
		})
	}
	if f.FavoriteOnly {
		filtered = keep(filtered, func(game Game) bool {
			return game.IsFavorite
		})
	}
	if f.NotPlayedSinceDays > 0 {
		cutoff := now.AddDate(0, 0, -f.NotPlayedSinceDays)
		recent := make(map[string]struct{})
		for _, session := range sessions {
			if session.Date.After(cutoff) {
				recent[session.GameID] = struct{}{}
			}
		}
		filtered = keep(filtered, func(game Game) bool {
			_, played := recent[game.ID]
			return !played
		})
	}
	if f.MaxPlaytimeMinutes > 0 {
		filtered = keep(filtered, func(game Game) bool {
			return game.TypicalPlaytime > 0 && game.TypicalPlaytime <= f.MaxPlaytimeMinutes
		})
	}
	return filtered
}

func keep(games []Game, predicate func(Game) bool) []Game {
	result := make([]Game, 0, len(games))
	for _, game := range games {
		if predicate(game) {
			result = append(result, game)
		}
	}
	return result
}
