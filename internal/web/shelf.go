package web

import (
	"strings"

	"github.com/a-h/templ"
)

func Shelf(data ShelfData) templ.Component {
	return layout("Shelf", "/games", data.Flash, func(buf *strings.Builder) {
		buf.WriteString(`<h1>Your Shelf</h1>`)
		writeGameForm(buf, data.Edit)
		if len(data.Games) == 0 {
			buf.WriteString(`<p class="empty">Nothing on the shelf yet. Add your first game above.</p>`)
			return
		}
		buf.WriteString(`<section class="card-grid">`)
		for _, game := range data.Games {
			writeGameCard(buf, game, true)
		}
		buf.WriteString(`</section>`)
	})
}

func writeGameForm(buf *strings.Builder, edit *GameCard) {
	heading := "Add a game"
	submit := "Add game"
	var game GameCard
	if edit != nil {
		heading = "Edit " + edit.Title
		submit = "Save changes"
		game = *edit
	}
	buf.WriteString(`<section class="panel">
        <h2>` + esc(heading) + `</h2>
        <form method="post" action="/games" class="game-form">
          <input type="hidden" name="id" value="` + esc(game.ID) + `"/>
          <label>Title<input name="title" value="` + esc(game.Title) + `" required/></label>
          <label>Mechanics<input name="gameMechanics" value="` + esc(game.GameMechanics) + `" required/></label>
          <label>Genre<input name="genre" value="` + esc(game.Genre) + `" placeholder="Uncategorized"/></label>
          <div class="field-row">
            <label>Min players<input type="number" name="minPlayers" min="1" value="` + nonZero(game.MinPlayers) + `" required/></label>
            <label>Max players<input type="number" name="maxPlayers" min="1" value="` + nonZero(game.MaxPlayers) + `" required/></label>
            <label>Typical playtime (min)<input type="number" name="typicalPlaytime" min="1" value="` + nonZero(game.TypicalPlaytime) + `"/></label>
          </div>
          <div class="field-row">
            <label>Box color<input type="color" name="boxColor" value="` + colorValue(game.BoxColor) + `"/></label>
            <label class="check">Favorite<input type="checkbox" name="isFavorite"` + checked(game.IsFavorite) + `/></label>
          </div>
          <button type="submit" class="primary">` + esc(submit) + `</button>`)
	if edit != nil {
		buf.WriteString(`
          <a href="/games" class="secondary">Cancel</a>`)
	}
	buf.WriteString(`
        </form>
      </section>`)
}

func writeGameCard(buf *strings.Builder, game GameCard, withActions bool) {
	buf.WriteString(`<article class="game-card" style="border-top-color: ` + colorValue(game.BoxColor) + `">
          <h3>` + esc(game.Title))
	if game.IsFavorite {
		buf.WriteString(` <span class="star" title="Favorite">&#9733;</span>`)
	}
	buf.WriteString(`</h3>
          <p class="meta">` + esc(game.GameMechanics) + `</p>
          <ul class="facts">
            <li>` + esc(genreLabel(game.Genre)) + `</li>
            <li>` + esc(playerRange(game.MinPlayers, game.MaxPlayers)) + ` players</li>`)
	if game.TypicalPlaytime > 0 {
		buf.WriteString(`
            <li>~` + esc(minutesLabel(game.TypicalPlaytime)) + ` per play</li>`)
	}
	if game.TotalPlaytime > 0 {
		buf.WriteString(`
            <li>` + esc(minutesLabel(game.TotalPlaytime)) + ` played</li>`)
	}
	buf.WriteString(`
          </ul>`)
	if withActions {
		favoriteLabel := "Favorite"
		if game.IsFavorite {
			favoriteLabel = "Unfavorite"
		}
		buf.WriteString(`
          <div class="card-actions">
            <a href="/games?edit=` + esc(game.ID) + `">Edit</a>
            <form method="post" action="/games/` + esc(game.ID) + `/favorite">
              <input type="hidden" name="current" value="` + boolValue(game.IsFavorite) + `"/>
              <button type="submit" class="link">` + favoriteLabel + `</button>
            </form>
            <form method="post" action="/games/` + esc(game.ID) + `/delete">
              <button type="submit" class="link danger">Delete</button>
            </form>
          </div>`)
	}
	buf.WriteString(`
        </article>`)
}

func genreLabel(genre string) string {
	if genre == "" {
		return "Uncategorized"
	}
	return genre
}

func nonZero(value int) string {
	if value == 0 {
		return ""
	}
	return itoa(value)
}

func checked(value bool) string {
	if value {
		return ` checked`
	}
	return ""
}

func boolValue(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

func colorValue(color string) string {
	if color == "" {
		return "#4f6d7a"
	}
	return esc(color)
}
