package server

import "sort"

const uncategorizedGenre = "Uncategorized"

// aggregatePlaytime attaches the summed session duration to each game.
// A single pass over the sessions builds a map keyed by game id, so
// games with no sessions come out at zero and input order is kept.
func aggregatePlaytime(games []Game, sessions []PlaySession) []GameWithPlaytime {
	totals := make(map[string]int, len(games))
	for _, session := range sessions {
		totals[session.GameID] += session.Duration
	}
	result := make([]GameWithPlaytime, 0, len(games))
	for _, game := range games {
		result = append(result, GameWithPlaytime{
			Game:          game,
			TotalPlaytime: totals[game.ID],
		})
	}
	return result
}

func computeStats(games []Game, sessions []PlaySession) LibraryStats {
	total := 0
	for _, session := range sessions {
		total += session.Duration
	}
	return LibraryStats{
		TotalGames:    len(games),
		TotalSessions: len(sessions),
		TotalPlaytime: total,
	}
}

// genreBreakdown groups total playtime by genre, dropping genres with
// no logged minutes. Games without a genre count as "Uncategorized".
// The result is ordered by descending minutes.
func genreBreakdown(games []GameWithPlaytime) []GenreTotal {
	byGenre := make(map[string]int)
	for _, game := range games {
		genre := game.Genre
		if genre == "" {
			genre = uncategorizedGenre
		}
		byGenre[genre] += game.TotalPlaytime
	}
	result := make([]GenreTotal, 0, len(byGenre))
	for genre, minutes := range byGenre {
		if minutes == 0 {
			continue
		}
		result = append(result, GenreTotal{Genre: genre, Minutes: minutes})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Minutes != result[j].Minutes {
			return result[i].Minutes > result[j].Minutes
		}
		return result[i].Genre < result[j].Genre
	})
	return result
}

// topPlayed returns the games with the most logged playtime, descending,
// capped at limit. Unplayed games are excluded.
func topPlayed(games []GameWithPlaytime, limit int) []GameWithPlaytime {
	played := make([]GameWithPlaytime, 0, len(games))
	for _, game := range games {
		if game.TotalPlaytime > 0 {
			played = append(played, game)
		}
	}
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].TotalPlaytime > played[j].TotalPlaytime
	})
	if len(played) > limit {
		played = played[:limit]
	}
	return played
}
