package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"game-shelf/internal/db"
)

// ErrNotFound is returned when a referenced game id does not exist.
var ErrNotFound = errors.New("game not found")

// Store is the gateway to the two persisted collections. Reads are
// memoized in a tag-keyed cache; every mutation invalidates the tags it
// touches before returning.
type Store struct {
	db    *gorm.DB
	cache *readCache
}

func NewStore(conn *gorm.DB) *Store {
	return &Store{
		db:    conn,
		cache: newReadCache(),
	}
}

// GameInput carries the writable fields of a game.
type GameInput struct {
	Title           string
	GameMechanics   string
	Genre           string
	MinPlayers      int
	MaxPlayers      int
	TypicalPlaytime int
	BoxColor        string
	IsFavorite      bool
}

// SessionInput carries the writable fields of a play session. GameID is
// trusted to reference an existing game; dangling references are
// resolved to a placeholder at read time.
type SessionInput struct {
	GameID   string
	Date     time.Time
	Duration int
	Notes    string
	Players  []SessionPlayer
	Winner   string
}

// ListGames returns every game ordered by title ascending.
func (s *Store) ListGames() ([]Game, error) {
	if cached, ok := s.cache.get("games:list"); ok {
		return cached.([]Game), nil
	}
	var records []db.Game
	if err := s.db.Order("title asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	games := make([]Game, 0, len(records))
	for _, record := range records {
		games = append(games, toGame(record))
	}
	s.cache.put("games:list", games, tagGames)
	return games, nil
}

// GetGame returns a single game by id.
func (s *Store) GetGame(id string) (Game, error) {
	var record db.Game
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Game{}, ErrNotFound
		}
		return Game{}, fmt.Errorf("get game: %w", err)
	}
	return toGame(record), nil
}

// AddGame creates a game and returns it with its assigned id.
func (s *Store) AddGame(input GameInput) (Game, error) {
	if input.Title == "" || input.GameMechanics == "" {
		return Game{}, errors.New("missing required game fields")
	}
	record := db.Game{
		Title:           input.Title,
		GameMechanics:   input.GameMechanics,
		Genre:           input.Genre,
		MinPlayers:      input.MinPlayers,
		MaxPlayers:      input.MaxPlayers,
		TypicalPlaytime: input.TypicalPlaytime,
		BoxColor:        input.BoxColor,
		IsFavorite:      input.IsFavorite,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return Game{}, fmt.Errorf("add game: %w", err)
	}
	s.cache.invalidate(tagGames)
	return toGame(record), nil
}

// UpdateGame merges the input into an existing game.
func (s *Store) UpdateGame(id string, input GameInput) (Game, error) {
	var record db.Game
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Game{}, ErrNotFound
		}
		return Game{}, fmt.Errorf("update game: %w", err)
	}
	updates := map[string]any{
		"title":            input.Title,
		"game_mechanics":   input.GameMechanics,
		"genre":            input.Genre,
		"min_players":      input.MinPlayers,
		"max_players":      input.MaxPlayers,
		"typical_playtime": input.TypicalPlaytime,
		"box_color":        input.BoxColor,
		"is_favorite":      input.IsFavorite,
	}
	if err := s.db.Model(&record).Updates(updates).Error; err != nil {
		return Game{}, fmt.Errorf("update game: %w", err)
	}
	s.cache.invalidate(tagGames)
	return toGame(record), nil
}

// DeleteGame removes the game and every session referencing it in one
// transaction, so a failed delete leaves both collections untouched.
func (s *Store) DeleteGame(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&db.Game{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("game_id = ?", id).Delete(&db.PlaySession{}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete game: %w", err)
	}
	s.cache.invalidate(tagGames, tagSessions)
	return nil
}

// ToggleFavorite flips the favorite flag from its current value.
func (s *Store) ToggleFavorite(id string, current bool) error {
	result := s.db.Model(&db.Game{}).Where("id = ?", id).Update("is_favorite", !current)
	if result.Error != nil {
		return fmt.Errorf("toggle favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	s.cache.invalidate(tagGames)
	return nil
}

// ListSessions returns every session, most recent first.
func (s *Store) ListSessions() ([]PlaySession, error) {
	if cached, ok := s.cache.get("sessions:list"); ok {
		return cached.([]PlaySession), nil
	}
	var records []db.PlaySession
	if err := s.db.Order("date desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sessions := make([]PlaySession, 0, len(records))
	for _, record := range records {
		session, err := toSession(record)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	s.cache.put("sessions:list", sessions, tagSessions)
	return sessions, nil
}

// LogSession records a play session.
func (s *Store) LogSession(input SessionInput) (PlaySession, error) {
	players, err := encodePlayers(input.Players)
	if err != nil {
		return PlaySession{}, fmt.Errorf("log session: %w", err)
	}
	record := db.PlaySession{
		GameID:   input.GameID,
		Date:     input.Date,
		Duration: input.Duration,
		Notes:    input.Notes,
		Players:  players,
		Winner:   input.Winner,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return PlaySession{}, fmt.Errorf("log session: %w", err)
	}
	s.cache.invalidate(tagSessions, tagGames)
	session, err := toSession(record)
	if err != nil {
		return PlaySession{}, err
	}
	return session, nil
}

// RecentSessions returns the most recent sessions with their games
// resolved. A session whose game was deleted out from under it gets a
// "Deleted Game" placeholder.
func (s *Store) RecentSessions(limit int) ([]PlaySessionWithGame, error) {
	key := fmt.Sprintf("sessions:recent:%d", limit)
	if cached, ok := s.cache.get(key); ok {
		return cached.([]PlaySessionWithGame), nil
	}
	var records []db.PlaySession
	if err := s.db.Order("date desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	gameIDs := make([]string, 0, len(records))
	for _, record := range records {
		gameIDs = append(gameIDs, record.GameID)
	}
	byID := make(map[string]Game, len(gameIDs))
	if len(gameIDs) > 0 {
		var games []db.Game
		if err := s.db.Where("id IN ?", gameIDs).Find(&games).Error; err != nil {
			return nil, fmt.Errorf("recent sessions: %w", err)
		}
		for _, game := range games {
			byID[game.ID] = toGame(game)
		}
	}
	resolved := make([]PlaySessionWithGame, 0, len(records))
	for _, record := range records {
		session, err := toSession(record)
		if err != nil {
			return nil, err
		}
		game, ok := byID[record.GameID]
		if !ok {
			game = deletedGamePlaceholder(record.GameID)
		}
		resolved = append(resolved, PlaySessionWithGame{PlaySession: session, Game: game})
	}
	s.cache.put(key, resolved, tagGames, tagSessions)
	return resolved, nil
}

// GamesWithPlaytime returns every game with its aggregate playtime, in
// title order.
func (s *Store) GamesWithPlaytime() ([]GameWithPlaytime, error) {
	if cached, ok := s.cache.get("games:playtime"); ok {
		return cached.([]GameWithPlaytime), nil
	}
	games, err := s.ListGames()
	if err != nil {
		return nil, err
	}
	sessions, err := s.ListSessions()
	if err != nil {
		return nil, err
	}
	aggregated := aggregatePlaytime(games, sessions)
	s.cache.put("games:playtime", aggregated, tagGames, tagSessions)
	return aggregated, nil
}

// Stats returns the library-wide totals.
func (s *Store) Stats() (LibraryStats, error) {
	if cached, ok := s.cache.get("stats"); ok {
		return cached.(LibraryStats), nil
	}
	games, err := s.ListGames()
	if err != nil {
		return LibraryStats{}, err
	}
	sessions, err := s.ListSessions()
	if err != nil {
		return LibraryStats{}, err
	}
	stats := computeStats(games, sessions)
	s.cache.put("stats", stats, tagGames, tagSessions)
	return stats, nil
}

func toGame(record db.Game) Game {
	return Game{
		ID:              record.ID,
		Title:           record.Title,
		GameMechanics:   record.GameMechanics,
		Genre:           record.Genre,
		MinPlayers:      record.MinPlayers,
		MaxPlayers:      record.MaxPlayers,
		TypicalPlaytime: record.TypicalPlaytime,
		BoxColor:        record.BoxColor,
		IsFavorite:      record.IsFavorite,
	}
}

func toSession(record db.PlaySession) (PlaySession, error) {
	var players []SessionPlayer
	if len(record.Players) > 0 {
		if err := json.Unmarshal(record.Players, &players); err != nil {
			return PlaySession{}, fmt.Errorf("decode session players: %w", err)
		}
	}
	return PlaySession{
		ID:       record.ID,
		GameID:   record.GameID,
		Date:     record.Date,
		Duration: record.Duration,
		Notes:    record.Notes,
		Players:  players,
		Winner:   record.Winner,
	}, nil
}

func encodePlayers(players []SessionPlayer) (datatypes.JSON, error) {
	if len(players) == 0 {
		return datatypes.JSON("[]"), nil
	}
	data, err := json.Marshal(players)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

func deletedGamePlaceholder(gameID string) Game {
	return Game{
		ID:    gameID,
		Title: "Deleted Game",
	}
}
