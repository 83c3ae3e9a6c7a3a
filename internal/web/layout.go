package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{Href: "/", Label: "Dashboard"},
	{Href: "/games", Label: "Shelf"},
	{Href: "/log", Label: "Log a Play"},
	{Href: "/stats", Label: "Stats"},
	{Href: "/play", Label: "Play Now"},
}

// layout wraps a page body in the shared chrome: head, nav, flash slot.
func layout(title string, active string, flash Flash, body func(buf *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf strings.Builder
		buf.WriteString(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>` + esc(title) + ` · Game Shelf</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <header class="topbar">
      <span class="brand">Game Shelf</span>
      <nav>`)
		for _, link := range navLinks {
			class := ""
			if link.Href == active {
				class = ` class="active"`
			}
			buf.WriteString(`<a href="` + link.Href + `"` + class + `>` + esc(link.Label) + `</a>`)
		}
		buf.WriteString(`</nav>
    </header>
    <main class="shell">
`)
		writeFlash(&buf, flash)
		body(&buf)
		buf.WriteString(`
    </main>
  </body>
</html>
`)
		_, err := io.WriteString(w, buf.String())
		return err
	})
}
