package web

import (
	"strings"

	"github.com/a-h/templ"
)

func Play(data PlayData) templ.Component {
	return layout("Play Now", "/play", data.Flash, func(buf *strings.Builder) {
		buf.WriteString(`<h1>Play Now</h1>
      <section class="panel">
        <form method="get" action="/play" class="game-form">
          <div class="field-row">
            <label>How many players?<input type="number" name="players" min="1" value="` + nonZero(data.Filters.PlayerCount) + `"/></label>
            <label>Not played in (days)<input type="number" name="notPlayedSince" min="1" value="` + nonZero(data.Filters.NotPlayedSinceDays) + `"/></label>
            <label>Max playtime (min)<input type="number" name="maxPlaytime" min="1" value="` + nonZero(data.Filters.MaxPlaytimeMinutes) + `"/></label>
            <label class="check">Favorites only<input type="checkbox" name="isFavorite" value="true"` + checked(data.Filters.FavoriteOnly) + `/></label>
          </div>
          <button type="submit" class="primary">Suggest games</button>
          <a href="/play" class="secondary">Clear</a>
        </form>
      </section>`)
		if !data.Active {
			return
		}
		buf.WriteString(`
      <h2>Suggestions</h2>`)
		if len(data.Games) == 0 {
			buf.WriteString(`
      <p class="empty">No games match your criteria. Try adjusting your filters or adding more games.</p>`)
			return
		}
		buf.WriteString(`
      <section class="card-grid">`)
		for _, game := range data.Games {
			writeGameCard(buf, game, false)
		}
		buf.WriteString(`</section>`)
	})
}
