package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var formValidator = validator.New()

// fieldErrors maps field names to user-facing messages. It implements
// error so a failed parse can flow through the action boundary; the
// message summarizes every failed field.
type fieldErrors map[string]string

func (e fieldErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, message := range e {
		messages = append(messages, message)
	}
	sort.Strings(messages)
	return strings.Join(messages, " ")
}

type gameFormData struct {
	Title           string `validate:"required"`
	GameMechanics   string `validate:"required"`
	MinPlayers      int    `validate:"min=1"`
	MaxPlayers      int    `validate:"min=1"`
	TypicalPlaytime int    `validate:"omitempty,min=1"`
}

var gameFormMessages = map[string]string{
	"Title":           "Title is required.",
	"GameMechanics":   "Game mechanics are required.",
	"MinPlayers":      "Minimum players must be a positive number.",
	"MaxPlayers":      "Maximum players must be a positive number.",
	"TypicalPlaytime": "Typical playtime must be a positive number of minutes.",
}

// parseGameForm converts the submitted form into a GameInput. It
// returns the hidden id (empty for a new game) and a fieldErrors value
// naming every malformed field.
func parseGameForm(r *http.Request) (string, GameInput, error) {
	errs := fieldErrors{}

	minPlayers := parseFormInt(r, "minPlayers", "MinPlayers", errs)
	maxPlayers := parseFormInt(r, "maxPlayers", "MaxPlayers", errs)
	typicalPlaytime := 0
	if raw := strings.TrimSpace(r.FormValue("typicalPlaytime")); raw != "" {
		typicalPlaytime = parseFormInt(r, "typicalPlaytime", "TypicalPlaytime", errs)
	}

	data := gameFormData{
		Title:           strings.TrimSpace(r.FormValue("title")),
		GameMechanics:   strings.TrimSpace(r.FormValue("gameMechanics")),
		MinPlayers:      minPlayers,
		MaxPlayers:      maxPlayers,
		TypicalPlaytime: typicalPlaytime,
	}
	collectValidationErrors(data, gameFormMessages, errs)
	if len(errs) > 0 {
		return "", GameInput{}, errs
	}

	input := GameInput{
		Title:           data.Title,
		GameMechanics:   data.GameMechanics,
		Genre:           strings.TrimSpace(r.FormValue("genre")),
		MinPlayers:      data.MinPlayers,
		MaxPlayers:      data.MaxPlayers,
		TypicalPlaytime: data.TypicalPlaytime,
		BoxColor:        strings.TrimSpace(r.FormValue("boxColor")),
		IsFavorite:      r.FormValue("isFavorite") != "",
	}
	return strings.TrimSpace(r.FormValue("id")), input, nil
}

type sessionFormData struct {
	GameID   string `validate:"required"`
	Duration int    `validate:"min=1"`
}

var sessionFormMessages = map[string]string{
	"GameID":   "You must select a game.",
	"Duration": "Duration must be at least 1 minute.",
}

// parseSessionForm converts the submitted form into a SessionInput.
// Each repeated "players" value holds a JSON {name, score} object; one
// malformed entry fails the whole submission.
func parseSessionForm(r *http.Request) (SessionInput, error) {
	errs := fieldErrors{}

	data := sessionFormData{
		GameID:   strings.TrimSpace(r.FormValue("gameId")),
		Duration: parseFormInt(r, "duration", "Duration", errs),
	}
	collectValidationErrors(data, sessionFormMessages, errs)

	date, err := parseSessionDate(r.FormValue("date"))
	if err != nil {
		errs["Date"] = "Date must be a valid date."
	}

	players, playerErr := parseSessionPlayers(r.Form["players"])
	if playerErr != "" {
		errs["Players"] = playerErr
	}

	if len(errs) > 0 {
		return SessionInput{}, errs
	}
	return SessionInput{
		GameID:   data.GameID,
		Date:     date,
		Duration: data.Duration,
		Notes:    strings.TrimSpace(r.FormValue("notes")),
		Players:  players,
		Winner:   strings.TrimSpace(r.FormValue("winner")),
	}, nil
}

var sessionDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02",
	time.RFC3339,
}

func parseSessionDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range sessionDateLayouts {
		date, err := time.Parse(layout, raw)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseSessionPlayers(values []string) ([]SessionPlayer, string) {
	players := make([]SessionPlayer, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		var player SessionPlayer
		if err := json.Unmarshal([]byte(value), &player); err != nil {
			return nil, "Player entries must be valid."
		}
		if strings.TrimSpace(player.Name) == "" {
			return nil, "Player name cannot be empty."
		}
		player.Name = strings.TrimSpace(player.Name)
		players = append(players, player)
	}
	return players, ""
}

func parseFormInt(r *http.Request, name, field string, errs fieldErrors) int {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		errs[field] = fieldMessage(field)
		return 0
	}
	return value
}

func collectValidationErrors(data any, messages map[string]string, errs fieldErrors) {
	err := formValidator.Struct(data)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = "Please fill out all required fields correctly."
		return
	}
	for _, verr := range verrs {
		field := verr.Field()
		if _, exists := errs[field]; exists {
			continue
		}
		if message, ok := messages[field]; ok {
			errs[field] = message
		} else {
			errs[field] = "Please fill out all required fields correctly."
		}
	}
}

func fieldMessage(field string) string {
	if message, ok := gameFormMessages[field]; ok {
		return message
	}
	if message, ok := sessionFormMessages[field]; ok {
		return message
	}
	return "Please fill out all required fields correctly."
}
