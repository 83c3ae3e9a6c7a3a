package web

import (
	"strings"

	"github.com/a-h/templ"
)

// LogForm renders the play-session form. Player rows are plain inputs;
// the submit handler serializes each row into a hidden "players" field
// holding a JSON {name, score} object, which is the shape the action
// expects.
func LogForm(data LogData) templ.Component {
	return layout("Log a Play", "/log", data.Flash, func(buf *strings.Builder) {
		buf.WriteString(`<h1>Log a Play</h1>
      <section class="panel">`)
		if len(data.Games) == 0 {
			buf.WriteString(`<p class="empty">Add a game to the <a href="/games">shelf</a> before logging a play.</p>
      </section>`)
			return
		}
		buf.WriteString(`
        <form method="post" action="/sessions" id="sessionForm" class="game-form">
          <label>Game
            <select name="gameId" required>
              <option value="">Select a game…</option>`)
		for _, game := range data.Games {
			buf.WriteString(`
              <option value="` + esc(game.ID) + `">` + esc(game.Title) + `</option>`)
		}
		buf.WriteString(`
            </select>
          </label>
          <div class="field-row">
            <label>Date<input type="datetime-local" name="date" value="` + esc(data.Now) + `" required/></label>
            <label>Duration (min)<input type="number" name="duration" min="1" required/></label>
          </div>
          <fieldset id="playerRows">
            <legend>Players &amp; scores</legend>
            <div class="player-row"><input placeholder="Name" class="player-name"/><input type="number" placeholder="Score" class="player-score"/></div>
            <div class="player-row"><input placeholder="Name" class="player-name"/><input type="number" placeholder="Score" class="player-score"/></div>
          </fieldset>
          <button type="button" id="addPlayer" class="secondary">Add player</button>
          <label>Winner<input name="winner" placeholder="Leave blank if nobody won"/></label>
          <label>Notes<textarea name="notes" rows="3"></textarea></label>
          <button type="submit" class="primary">Log session</button>
        </form>
      </section>

      <script>
        const form = document.getElementById("sessionForm");
        const rows = document.getElementById("playerRows");
        document.getElementById("addPlayer").addEventListener("click", () => {
          const row = document.createElement("div");
          row.className = "player-row";
          row.innerHTML = '<input placeholder="Name" class="player-name"/><input type="number" placeholder="Score" class="player-score"/>';
          rows.appendChild(row);
        });
        form.addEventListener("submit", () => {
          form.querySelectorAll('input[name="players"]').forEach((input) => input.remove());
          rows.querySelectorAll(".player-row").forEach((row) => {
            const name = row.querySelector(".player-name").value.trim();
            if (!name) {
              return;
            }
            const score = Number(row.querySelector(".player-score").value) || 0;
            const hidden = document.createElement("input");
            hidden.type = "hidden";
            hidden.name = "players";
            hidden.value = JSON.stringify({ name: name, score: score });
            form.appendChild(hidden);
          });
        });
      </script>`)
	})
}
