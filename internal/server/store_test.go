package server

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"game-shelf/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&db.Game{}, &db.PlaySession{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewStore(conn)
}

func mustAddGame(t *testing.T, store *Store, input GameInput) Game {
	t.Helper()
	game, err := store.AddGame(input)
	if err != nil {
		t.Fatalf("add game: %v", err)
	}
	return game
}

func mustLogSession(t *testing.T, store *Store, input SessionInput) PlaySession {
	t.Helper()
	session, err := store.LogSession(input)
	if err != nil {
		t.Fatalf("log session: %v", err)
	}
	return session
}

func gameInput(title string) GameInput {
	return GameInput{
		Title:         title,
		GameMechanics: "Dice rolling",
		MinPlayers:    2,
		MaxPlayers:    4,
	}
}

func sessionInput(gameID string, date time.Time, duration int) SessionInput {
	return SessionInput{
		GameID:   gameID,
		Date:     date,
		Duration: duration,
	}
}

func TestAddGameAssignsID(t *testing.T) {
	store := newTestStore(t)
	game := mustAddGame(t, store, gameInput("Azul"))
	if game.ID == "" {
		t.Fatal("expected a store-assigned id")
	}
	if game.Title != "Azul" {
		t.Fatalf("unexpected game %+v", game)
	}
}

func TestAddGameRequiresFields(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.AddGame(GameInput{MinPlayers: 1, MaxPlayers: 2}); err == nil {
		t.Fatal("expected error for missing required fields")
	}
	games, err := store.ListGames()
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no record created, got %+v", games)
	}
}

func TestListGamesOrderedByTitle(t *testing.T) {
	store := newTestStore(t)
	mustAddGame(t, store, gameInput("Carcassonne"))
	mustAddGame(t, store, gameInput("Azul"))
	mustAddGame(t, store, gameInput("Brass"))

	games, err := store.ListGames()
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	titles := []string{"Azul", "Brass", "Carcassonne"}
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	for i, title := range titles {
		if games[i].Title != title {
			t.Fatalf("expected %s at index %d, got %s", title, i, games[i].Title)
		}
	}
}

func TestUpdateGameMergesFields(t *testing.T) {
	store := newTestStore(t)
	game := mustAddGame(t, store, gameInput("Azul"))

	input := gameInput("Azul: Summer Pavilion")
	input.Genre = "Abstract"
	input.IsFavorite = true
	updated, err := store.UpdateGame(game.ID, input)
	if err != nil {
		t.Fatalf("update game: %v", err)
	}
	if updated.Title != "Azul: Summer Pavilion" || updated.Genre != "Abstract" || !updated.IsFavorite {
		t.Fatalf("unexpected game after update %+v", updated)
	}
}

func TestUpdateGameNotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.UpdateGame("missing", gameInput("Azul")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleFavorite(t *testing.T) {
	store := newTestStore(t)
	game := mustAddGame(t, store, gameInput("Azul"))

	if err := store.ToggleFavorite(game.ID, false); err != nil {
		t.Fatalf("toggle favorite: %v", err)
	}
	got, err := store.GetGame(game.ID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if !got.IsFavorite {
		t.Fatal("expected favorite to flip to true")
	}

	if err := store.ToggleFavorite("missing", false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListSessionsMostRecentFirst(t *testing.T) {
	store := newTestStore(t)
	game := mustAddGame(t, store, gameInput("Azul"))
	base := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	mustLogSession(t, store, sessionInput(game.ID, base, 30))
	mustLogSession(t, store, sessionInput(game.ID, base.AddDate(0, 0, 2), 60))
	mustLogSession(t, store, sessionInput(game.ID, base.AddDate(0, 0, 1), 45))

	sessions, err := store.ListSessions()
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i].Date.After(sessions[i-1].Date) {
			t.Fatalf("sessions not in descending date order: %+v", sessions)
		}
	}
}

func TestLogSessionRoundTripsPlayers(t *testing.T) {
	store := newTestStore(t)
	game := mustAddGame(t, store, gameInput("Azul"))
	input := sessionInput(game.ID, time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC), 90)
	input.Players = []SessionPlayer{{Name: "Ann", Score: 12}, {Name: "Bob", Score: 9}}
	input.Winner = "Ann"
	mustLogSession(t, store, input)

	sessions, err := store.ListSessions()
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	session := sessions[0]
	if len(session.Players) != 2 || session.Players[0].Name != "Ann" || session.Players[1].Score != 9 {
		t.Fatalf("unexpected players %+v", session.Players)
	}
	if session.Winner != "Ann" {
		t.Fatalf("unexpected winner %q", session.Winner)
	}
}

func TestDeleteGameCascadesToSessions(t *testing.T) {
	store := newTestStore(t)
	doomed := mustAddGame(t, store, gameInput("Azul"))
	kept := mustAddGame(t, store, gameInput("Brass"))
	base := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	mustLogSession(t, store, sessionInput(doomed.ID, base, 30))
	mustLogSession(t, store, sessionInput(doomed.ID, base.AddDate(0, 0, 1), 60))
	mustLogSession(t, store, sessionInput(kept.ID, base, 45))

	if err := store.DeleteGame(doomed.ID); err != nil {
		t.Fatalf("delete game: %v", err)
	}

	games, err := store.ListGames()
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 1 || games[0].ID != kept.ID {
		t.Fatalf("expected only the kept game, got %+v", games)
	}

	sessions, err := store.ListSessions()
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	for _, session := range sessions {
		if session.GameID == doomed.ID {
			t.Fatalf("orphaned session survived delete: %+v", session)
		}
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 surviving session, got %d", len(sessions))
	}
}

func TestDeleteGameNotFound(t *testing.T) {
	store := newTestStore(t)
	if err := store.DeleteGame("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecentSessionsResolvesGames(t *testing.T) {
	store := newTestStore(t)
	game := mustAddGame(t, store, gameInput("Azul"))
	base := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	mustLogSession(t, store, sessionInput(game.ID, base, 30))
	mustLogSession(t, store, sessionInput("dangling-id", base.AddDate(0, 0, 1), 60))

	recent, err := store.RecentSessions(5)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(recent))
	}
	if recent[0].Game.Title != "Deleted Game" {
		t.Fatalf("expected placeholder for dangling reference, got %+v", recent[0].Game)
	}
	if recent[1].Game.Title != "Azul" {
		t.Fatalf("expected resolved game, got %+v", recent[1].Game)
	}
}

func TestRecentSessionsHonorsLimit(t *testing.T) {
	store := newTestStore(t)
	game := mustAddGame(t, store, gameInput("Azul"))
	base := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		mustLogSession(t, store, sessionInput(game.ID, base.AddDate(0, 0, i), 30))
	}

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(recent))
	}
	if !recent[0].Date.After(recent[1].Date) {
		t.Fatalf("expected most recent first, got %+v", recent)
	}
}

func TestGamesWithPlaytime(t *testing.T) {
	store := newTestStore(t)
	azul := mustAddGame(t, store, gameInput("Azul"))
	brass := mustAddGame(t, store, gameInput("Brass"))
	base := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	mustLogSession(t, store, sessionInput(azul.ID, base, 60))
	mustLogSession(t, store, sessionInput(azul.ID, base.AddDate(0, 0, 1), 30))
	mustLogSession(t, store, sessionInput(brass.ID, base, 45))

	games, err := store.GamesWithPlaytime()
	if err != nil {
		t.Fatalf("games with playtime: %v", err)
	}
	if games[0].TotalPlaytime != 90 || games[1].TotalPlaytime != 45 {
		t.Fatalf("unexpected totals %+v", games)
	}
}

func TestStats(t *testing.T) {
	store := newTestStore(t)
	azul := mustAddGame(t, store, gameInput("Azul"))
	base := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	mustLogSession(t, store, sessionInput(azul.ID, base, 60))
	mustLogSession(t, store, sessionInput(azul.ID, base.AddDate(0, 0, 1), 30))

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalGames != 1 || stats.TotalSessions != 2 || stats.TotalPlaytime != 90 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestMutationsInvalidateCachedReads(t *testing.T) {
	store := newTestStore(t)
	mustAddGame(t, store, gameInput("Azul"))

	if _, err := store.ListGames(); err != nil {
		t.Fatalf("list games: %v", err)
	}
	if _, err := store.Stats(); err != nil {
		t.Fatalf("stats: %v", err)
	}

	mustAddGame(t, store, gameInput("Brass"))

	games, err := store.ListGames()
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected fresh read after mutation, got %+v", games)
	}
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalGames != 2 {
		t.Fatalf("expected stats to observe the new game, got %+v", stats)
	}
}
