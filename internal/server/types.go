package server

import "time"

// Game is a catalogued board game. TypicalPlaytime is in minutes; zero
// means not recorded. Genre may be empty, in which case aggregation
// groups it under "Uncategorized".
type Game struct {
	ID              string
	Title           string
	GameMechanics   string
	Genre           string
	MinPlayers      int
	MaxPlayers      int
	TypicalPlaytime int
	BoxColor        string
	IsFavorite      bool
}

type SessionPlayer struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// PlaySession is a single logged play of a game. Sessions are immutable
// once logged; they disappear only when their game is deleted.
type PlaySession struct {
	ID       string
	GameID   string
	Date     time.Time
	Duration int
	Notes    string
	Players  []SessionPlayer
	Winner   string
}

// GameWithPlaytime is a Game plus the summed duration of every session
// referencing it. Derived on read, never persisted.
type GameWithPlaytime struct {
	Game
	TotalPlaytime int
}

// PlaySessionWithGame is a PlaySession plus its resolved Game. When the
// game no longer exists the Game field is a placeholder titled
// "Deleted Game".
type PlaySessionWithGame struct {
	PlaySession
	Game Game
}

type LibraryStats struct {
	TotalGames    int
	TotalSessions int
	TotalPlaytime int
}

type GenreTotal struct {
	Genre   string
	Minutes int
}
