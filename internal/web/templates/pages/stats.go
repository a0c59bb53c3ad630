package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/scoreboard/internal/web/page"
	"github.com/mcoot/scoreboard/internal/web/templates/layout"
)

// StatsData is the standalone stats page
type StatsData struct {
	layout.PageData
	Page *page.Page
}

// Stats renders only the personal stats section
func Stats(data StatsData) templ.Component {
	return layout.Base(data.PageData, StatsPanel(data.Page))
}
