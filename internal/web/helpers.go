package web

import (
	"html"
	"strconv"
	"strings"
)

func esc(value string) string {
	return html.EscapeString(value)
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

// minutesLabel renders a duration in minutes as "90 min" or "1h 30m"
// once it passes the hour mark.
func minutesLabel(minutes int) string {
	if minutes < 60 {
		return itoa(minutes) + " min"
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return itoa(hours) + "h"
	}
	return itoa(hours) + "h " + itoa(rest) + "m"
}

func playerRange(min, max int) string {
	if min == max {
		return itoa(min)
	}
	return itoa(min) + "-" + itoa(max)
}

func writeFlash(buf *strings.Builder, flash Flash) {
	if flash.Text == "" {
		return
	}
	class := "flash"
	if flash.IsError {
		class = "flash flash-error"
	}
	buf.WriteString(`<div class="` + class + `">` + esc(flash.Text) + `</div>`)
}
