package web

import (
	"strings"

	"github.com/a-h/templ"
)

func Home(data HomeData) templ.Component {
	return layout("Dashboard", "/", data.Flash, func(buf *strings.Builder) {
		buf.WriteString(`<h1>Dashboard</h1>
      <section class="stat-grid">
        <div class="stat-card"><span class="stat-value">` + itoa(data.Stats.TotalGames) + `</span><span class="stat-label">Games on the shelf</span></div>
        <div class="stat-card"><span class="stat-value">` + itoa(data.Stats.TotalSessions) + `</span><span class="stat-label">Sessions logged</span></div>
        <div class="stat-card"><span class="stat-value">` + esc(minutesLabel(data.Stats.TotalPlaytime)) + `</span><span class="stat-label">Time played</span></div>
      </section>
      <section class="panel">
        <h2>Recent sessions</h2>`)
		if len(data.Recent) == 0 {
			buf.WriteString(`<p class="empty">No sessions logged yet. <a href="/log">Log your first play.</a></p>`)
		} else {
			buf.WriteString(`<table class="session-table">
          <thead><tr><th>Game</th><th>Date</th><th>Duration</th><th>Players</th><th>Winner</th></tr></thead>
          <tbody>`)
			for _, row := range data.Recent {
				title := ""
				if row.Notes != "" {
					title = ` title="` + esc(row.Notes) + `"`
				}
				buf.WriteString(`<tr` + title + `>
            <td>` + esc(row.GameTitle) + `</td>
            <td>` + esc(row.Date) + `</td>
            <td>` + esc(minutesLabel(row.Duration)) + `</td>
            <td>` + esc(row.Players) + `</td>
            <td>` + esc(row.Winner) + `</td>
          </tr>`)
			}
			buf.WriteString(`</tbody>
        </table>`)
		}
		buf.WriteString(`
      </section>`)
	})
}
