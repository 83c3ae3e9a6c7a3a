package web

import (
	"strings"

	"github.com/a-h/templ"
)

func Stats(data StatsData) templ.Component {
	return layout("Stats", "/stats", data.Flash, func(buf *strings.Builder) {
		buf.WriteString(`<h1>Game Statistics</h1>`)
		if !data.HasGames {
			buf.WriteString(`<p class="empty">No game data available. Add games and log sessions to see your stats here.</p>`)
			return
		}
		buf.WriteString(`<div class="panel-grid">
        <section class="panel">
          <h2>Playtime by genre</h2>`)
		writeBars(buf, genreBars(data.Genres))
		buf.WriteString(`
        </section>
        <section class="panel">
          <h2>Most played games</h2>`)
		writeBars(buf, topGameBars(data.TopGames))
		buf.WriteString(`
        </section>
      </div>`)
	})
}

type bar struct {
	Label   string
	Minutes int
	Percent int
}

func genreBars(genres []GenreBar) []bar {
	bars := make([]bar, 0, len(genres))
	for _, genre := range genres {
		bars = append(bars, bar{Label: genre.Genre, Minutes: genre.Minutes, Percent: genre.Percent})
	}
	return bars
}

func topGameBars(games []TopGameBar) []bar {
	bars := make([]bar, 0, len(games))
	for _, game := range games {
		bars = append(bars, bar{Label: game.Title, Minutes: game.Minutes, Percent: game.Percent})
	}
	return bars
}

func writeBars(buf *strings.Builder, bars []bar) {
	if len(bars) == 0 {
		buf.WriteString(`<p class="empty">No playtime logged yet.</p>`)
		return
	}
	buf.WriteString(`<ul class="bar-list">`)
	for _, item := range bars {
		buf.WriteString(`
            <li>
              <span class="bar-label">` + esc(item.Label) + `</span>
              <span class="bar-track"><span class="bar-fill" style="width: ` + itoa(item.Percent) + `%"></span></span>
              <span class="bar-value">` + esc(minutesLabel(item.Minutes)) + `</span>
            </li>`)
	}
	buf.WriteString(`
          </ul>`)
}
