package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	log "github.com/sirupsen/logrus"

	"game-shelf/internal/web"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats()
	if err != nil {
		s.renderFailure(w, r, "load stats", err)
		return
	}
	recent, err := s.store.RecentSessions(s.cfg.RecentSessionsLimit)
	if err != nil {
		s.renderFailure(w, r, "load recent sessions", err)
		return
	}
	data := web.HomeData{
		Flash: s.popFlash(w, r),
		Stats: web.StatsSummary{
			TotalGames:    stats.TotalGames,
			TotalSessions: stats.TotalSessions,
			TotalPlaytime: stats.TotalPlaytime,
		},
		Recent: buildSessionRows(recent),
	}
	templ.Handler(web.Home(data)).ServeHTTP(w, r)
}

func (s *Server) handleShelfView(w http.ResponseWriter, r *http.Request) {
	games, err := s.store.GamesWithPlaytime()
	if err != nil {
		s.renderFailure(w, r, "load shelf", err)
		return
	}
	data := web.ShelfData{
		Flash: s.popFlash(w, r),
		Games: buildGameCards(games),
	}
	if editID := r.URL.Query().Get("edit"); editID != "" {
		game, err := s.store.GetGame(editID)
		if err == nil {
			card := buildGameCard(GameWithPlaytime{Game: game})
			data.Edit = &card
		}
	}
	templ.Handler(web.Shelf(data)).ServeHTTP(w, r)
}

func (s *Server) handleLogView(w http.ResponseWriter, r *http.Request) {
	games, err := s.store.ListGames()
	if err != nil {
		s.renderFailure(w, r, "load games", err)
		return
	}
	options := make([]web.GameOption, 0, len(games))
	for _, game := range games {
		options = append(options, web.GameOption{ID: game.ID, Title: game.Title})
	}
	data := web.LogData{
		Flash: s.popFlash(w, r),
		Games: options,
		Now:   time.Now().Format("2006-01-02T15:04"),
	}
	templ.Handler(web.LogForm(data)).ServeHTTP(w, r)
}

func (s *Server) handleStatsView(w http.ResponseWriter, r *http.Request) {
	games, err := s.store.GamesWithPlaytime()
	if err != nil {
		s.renderFailure(w, r, "load stats", err)
		return
	}
	data := web.StatsData{
		Flash:    s.popFlash(w, r),
		HasGames: len(games) > 0,
		Genres:   buildGenreBars(genreBreakdown(games)),
		TopGames: buildTopGameBars(topPlayed(games, s.cfg.TopPlayedLimit)),
	}
	templ.Handler(web.Stats(data)).ServeHTTP(w, r)
}

func (s *Server) handlePlayView(w http.ResponseWriter, r *http.Request) {
	games, err := s.store.ListGames()
	if err != nil {
		s.renderFailure(w, r, "load games", err)
		return
	}
	sessions, err := s.store.ListSessions()
	if err != nil {
		s.renderFailure(w, r, "load sessions", err)
		return
	}
	filter := filterFromQuery(r)
	data := web.PlayData{
		Flash: s.popFlash(w, r),
		Filters: web.PlayFilters{
			PlayerCount:        filter.PlayerCount,
			FavoriteOnly:       filter.FavoriteOnly,
			NotPlayedSinceDays: filter.NotPlayedSinceDays,
			MaxPlaytimeMinutes: filter.MaxPlaytimeMinutes,
		},
		Active: filter.Active(),
	}
	if data.Active {
		filtered := filter.Apply(games, sessions, time.Now())
		cards := make([]web.GameCard, 0, len(filtered))
		for _, game := range filtered {
			cards = append(cards, buildGameCard(GameWithPlaytime{Game: game}))
		}
		data.Games = cards
	}
	templ.Handler(web.Play(data)).ServeHTTP(w, r)
}

func filterFromQuery(r *http.Request) SuggestionFilter {
	query := r.URL.Query()
	return SuggestionFilter{
		PlayerCount:        queryInt(query.Get("players")),
		FavoriteOnly:       query.Get("isFavorite") != "",
		NotPlayedSinceDays: queryInt(query.Get("notPlayedSince")),
		MaxPlaytimeMinutes: queryInt(query.Get("maxPlaytime")),
	}
}

func queryInt(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) web.Flash {
	text, isError := s.flashes.Pop(w, r)
	return web.Flash{Text: text, IsError: isError}
}

func (s *Server) renderFailure(w http.ResponseWriter, r *http.Request, action string, err error) {
	log.Printf("failed to %s: %v", action, err)
	http.Error(w, "Something went wrong. Please try again.", http.StatusInternalServerError)
}

func buildGameCards(games []GameWithPlaytime) []web.GameCard {
	cards := make([]web.GameCard, 0, len(games))
	for _, game := range games {
		cards = append(cards, buildGameCard(game))
	}
	return cards
}

func buildGameCard(game GameWithPlaytime) web.GameCard {
	return web.GameCard{
		ID:              game.ID,
		Title:           game.Title,
		GameMechanics:   game.GameMechanics,
		Genre:           game.Genre,
		MinPlayers:      game.MinPlayers,
		MaxPlayers:      game.MaxPlayers,
		TypicalPlaytime: game.TypicalPlaytime,
		BoxColor:        game.BoxColor,
		IsFavorite:      game.IsFavorite,
		TotalPlaytime:   game.TotalPlaytime,
	}
}

func buildSessionRows(sessions []PlaySessionWithGame) []web.SessionRow {
	rows := make([]web.SessionRow, 0, len(sessions))
	for _, session := range sessions {
		rows = append(rows, web.SessionRow{
			GameTitle: session.Game.Title,
			Date:      session.Date.Format("Jan 2, 2006"),
			Duration:  session.Duration,
			Players:   formatPlayers(session.Players),
			Winner:    session.Winner,
			Notes:     session.Notes,
		})
	}
	return rows
}

func formatPlayers(players []SessionPlayer) string {
	if len(players) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(players))
	for _, player := range players {
		parts = append(parts, player.Name+" ("+strconv.FormatFloat(player.Score, 'f', -1, 64)+")")
	}
	return strings.Join(parts, ", ")
}

func buildGenreBars(genres []GenreTotal) []web.GenreBar {
	max := 0
	for _, genre := range genres {
		if genre.Minutes > max {
			max = genre.Minutes
		}
	}
	bars := make([]web.GenreBar, 0, len(genres))
	for _, genre := range genres {
		bars = append(bars, web.GenreBar{
			Genre:   genre.Genre,
			Minutes: genre.Minutes,
			Percent: percentOf(genre.Minutes, max),
		})
	}
	return bars
}

func buildTopGameBars(games []GameWithPlaytime) []web.TopGameBar {
	max := 0
	for _, game := range games {
		if game.TotalPlaytime > max {
			max = game.TotalPlaytime
		}
	}
	bars := make([]web.TopGameBar, 0, len(games))
	for _, game := range games {
		bars = append(bars, web.TopGameBar{
			Title:   game.Title,
			Minutes: game.TotalPlaytime,
			Percent: percentOf(game.TotalPlaytime, max),
		})
	}
	return bars
}

func percentOf(value, max int) int {
	if max <= 0 {
		return 0
	}
	return value * 100 / max
}
