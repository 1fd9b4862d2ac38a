package cli

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"calgrid/internal/grid"
	"calgrid/internal/model"
	"calgrid/internal/tui"
)

// Controller is the interactive TUI's event loop. It owns the event
// data, the navigation state, and the renderer, and maps key presses to
// navigation transitions. Every handled event triggers exactly one
// compose-and-render cycle.
type Controller struct {
	screen   *tui.ScreenHandler
	view     *tui.View
	events   model.EventList
	state    *grid.ViewState
	composer grid.Composer
	logger   zerolog.Logger
}

// NewController sets up a controller for the given data and state.
func NewController(
	screen *tui.ScreenHandler,
	view *tui.View,
	events model.EventList,
	state *grid.ViewState,
	composer grid.Composer,
	logger zerolog.Logger,
) *Controller {
	return &Controller{
		screen:   screen,
		view:     view,
		events:   events,
		state:    state,
		composer: composer,
		logger:   logger,
	}
}

// Run blocks on the terminal event loop until the user quits.
func (c *Controller) Run() {
	defer c.screen.Fini()

	c.render()

	for {
		ev := c.screen.PollEvent()

		switch e := ev.(type) {
		case *tcell.EventKey:
			if c.handleKey(e) {
				return
			}
		case *tcell.EventResize:
			c.screen.NeedsSync()
		}

		c.render()
	}
}

// handleKey applies the navigation transition mapped to a key press and
// reports whether the controller should quit.
func (c *Controller) handleKey(e *tcell.EventKey) (quit bool) {
	var err error

	switch {
	case e.Key() == tcell.KeyEscape || e.Rune() == 'q':
		return true
	case e.Key() == tcell.KeyLeft || e.Rune() == 'h':
		err = c.state.Prev()
	case e.Key() == tcell.KeyRight || e.Rune() == 'l':
		err = c.state.Next()
	case e.Rune() == 't':
		err = c.state.Today(model.DateOf(time.Now()))
	case e.Rune() == 'm':
		err = c.state.ToggleMode()
	case e.Rune() == 'H':
		err = c.state.MiniPrev()
	case e.Rune() == 'L':
		err = c.state.MiniNext()
	case e.Key() == tcell.KeyEnter:
		// jump the primary view into the month the mini calendar shows,
		// which also snaps a detached mini anchor back in sync
		err = c.state.JumpToDate(c.state.MiniAnchor.First())
	}

	if err != nil {
		c.logger.Warn().Err(err).Msg("navigation rejected")
	}
	return false
}

func (c *Controller) render() {
	now := time.Now()
	today := model.DateOf(now)
	nowTimestamp := model.Timestamp{Hour: now.Hour(), Minute: now.Minute()}

	desc := c.composer.Compose(c.events.Events, c.state, today)
	for _, skipped := range desc.Skipped {
		c.logger.Debug().
			Str("id", skipped.Event.ID).
			Str("reason", skipped.Reason).
			Msg("skipping malformed event")
	}

	c.view.Render(&desc, nowTimestamp, today)
}
