package web

type Flash struct {
	Text    string
	IsError bool
}

type StatsSummary struct {
	TotalGames    int
	TotalSessions int
	TotalPlaytime int
}

type GameCard struct {
	ID              string
	Title           string
	GameMechanics   string
	Genre           string
	MinPlayers      int
	MaxPlayers      int
	TypicalPlaytime int
	BoxColor        string
	IsFavorite      bool
	TotalPlaytime   int
}

type SessionRow struct {
	GameTitle string
	Date      string
	Duration  int
	Players   string
	Winner    string
	Notes     string
}

type GameOption struct {
	ID    string
	Title string
}

type HomeData struct {
	Flash  Flash
	Stats  StatsSummary
	Recent []SessionRow
}

type ShelfData struct {
	Flash Flash
	Games []GameCard
	Edit  *GameCard
}

type LogData struct {
	Flash Flash
	Games []GameOption
	Now   string
}

type GenreBar struct {
	Genre   string
	Minutes int
	Percent int
}

type TopGameBar struct {
	Title   string
	Minutes int
	Percent int
}

type StatsData struct {
	Flash    Flash
	HasGames bool
	Genres   []GenreBar
	TopGames []TopGameBar
}

type PlayFilters struct {
	PlayerCount        int
	FavoriteOnly       bool
	NotPlayedSinceDays int
	MaxPlaytimeMinutes int
}

type PlayData struct {
	Flash   Flash
	Filters PlayFilters
	Active  bool
	Games   []GameCard
}
