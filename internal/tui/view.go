package tui

import (
	"fmt"

	"calgrid/internal/grid"
	"calgrid/internal/model"
	"calgrid/internal/styling"
)

const (
	miniWidth        = 24
	timelineWidth    = 6
	headerRows       = 2
	statusRows       = 1
	weekdayLabelRows = 1
	allDayRows       = 2
)

// View draws a composed grid description to a screen. It holds no
// calendar state of its own; everything it shows comes in through
// Render's arguments.
type View struct {
	screen     *ScreenHandler
	stylesheet *styling.Stylesheet
	chips      *styling.ChipPalette

	// axis is the time axis the composer used; the view scales its
	// pixel-equivalent units to terminal rows.
	axis grid.TimeAxis

	// suntimes, if non-nil, provides sunrise/sunset for shading the
	// timeline.
	suntimes func(model.Date) *model.SunTimes
}

// NewView constructs a view rendering to the given screen.
func NewView(
	screen *ScreenHandler,
	stylesheet *styling.Stylesheet,
	chips *styling.ChipPalette,
	axis grid.TimeAxis,
	suntimes func(model.Date) *model.SunTimes,
) *View {
	return &View{
		screen:     screen,
		stylesheet: stylesheet,
		chips:      chips,
		axis:       axis,
		suntimes:   suntimes,
	}
}

// Render draws the full frame: header, primary grid, mini calendar, and
// status bar.
func (v *View) Render(desc *grid.GridDescription, now model.Timestamp, today model.Date) {
	v.screen.Clear()

	w, h := v.screen.Dimensions()
	if w < 20 || h < 10 {
		v.screen.DrawText(0, 0, w, h, v.stylesheet.Normal, "terminal too small")
		v.screen.Show()
		return
	}

	mainW := w
	showMini := w >= 60
	if showMini {
		mainW = w - miniWidth - 1
	}

	v.drawHeader(desc, w)

	mainH := h - headerRows - statusRows
	switch desc.Mode {
	case grid.ModeMonth:
		v.drawMonthGrid(desc, 0, headerRows, mainW, mainH)
	default:
		v.drawWeekGrid(desc, 0, headerRows, mainW, mainH, now, today)
	}

	if showMini {
		v.drawMiniCalendar(desc, mainW+1, headerRows)
	}

	v.drawStatus(desc, 0, h-1, w)

	v.screen.Show()
}

func (v *View) drawHeader(desc *grid.GridDescription, w int) {
	v.screen.DrawBox(0, 0, w, headerRows, v.stylesheet.Header)
	v.screen.DrawText(1, 0, w-1, 1, v.stylesheet.Header, fmt.Sprintf("%s  [%s]", desc.Label, desc.Mode.ToString()))
}

func (v *View) drawMonthGrid(desc *grid.GridDescription, x, y, w, h int) {
	rows := len(desc.Cells) / 7
	if rows == 0 {
		return
	}
	cellW := w / 7
	cellH := (h - weekdayLabelRows) / rows
	if cellW < 3 || cellH < 1 {
		return
	}

	for i := 0; i < 7; i++ {
		label := desc.Cells[i].Date.ToWeekday().String()[:2]
		v.screen.DrawText(x+i*cellW+1, y, cellW-1, 1, v.stylesheet.Header, label)
	}

	for i, cell := range desc.Cells {
		cellX := x + (i%7)*cellW
		cellY := y + weekdayLabelRows + (i/7)*cellH

		style := v.cellStyle(cell)
		v.screen.DrawBox(cellX, cellY, cellW-1, cellH, style)
		v.screen.DrawText(cellX, cellY, cellW-1, 1, style, fmt.Sprintf("%2d", cell.Date.Day))

		maxChips := cellH - 1
		for j, chip := range cell.Chips {
			if j >= maxChips {
				v.screen.DrawText(cellX, cellY+cellH-1, cellW-1, 1, style, fmt.Sprintf("+%d more", len(cell.Chips)-maxChips))
				break
			}
			v.drawChip(chip, cellX, cellY+1+j, cellW-1)
		}
	}
}

func (v *View) drawWeekGrid(desc *grid.GridDescription, x, y, w, h int, now model.Timestamp, today model.Date) {
	dayW := (w - timelineWidth) / 7
	if dayW < 3 || h < allDayRows+3 {
		return
	}
	dayX := func(i int) int { return x + timelineWidth + i*dayW }

	for i, cell := range desc.Cells {
		style := v.cellStyle(cell)
		label := fmt.Sprintf("%s %2d", cell.Date.ToWeekday().String()[:2], cell.Date.Day)
		v.screen.DrawText(dayX(i)+1, y, dayW-1, 1, style, label)
	}

	// all-day row
	for i, cell := range desc.Cells {
		for j, chip := range cell.Chips {
			if j >= allDayRows-1 {
				v.screen.DrawText(dayX(i), y+allDayRows-1, dayW-1, 1, v.stylesheet.Normal, fmt.Sprintf("+%d", len(cell.Chips)-j))
				break
			}
			v.drawChip(chip, dayX(i), y+1+j, dayW-1)
		}
	}

	timedY := y + 1 + allDayRows
	timedH := h - 1 - allDayRows

	// scale the composer's pixel-equivalent units to terminal rows; show
	// the full 24 hours whenever at least one row per hour fits
	rowsPerHour := timedH / 24
	if rowsPerHour < 1 {
		rowsPerHour = 1
	}
	scale := float64(rowsPerHour) / v.axis.HourHeight

	v.drawTimeline(desc, x, timedY, timedH, rowsPerHour)

	for i, cell := range desc.Cells {
		for _, placed := range cell.Timed {
			top := timedY + int(placed.Top*scale)
			height := int(placed.Height*scale + 0.5)
			if height < 1 {
				height = 1
			}
			if top >= timedY+timedH {
				continue
			}
			if top+height > timedY+timedH {
				height = timedY + timedH - top
			}
			chipStyle := v.chips.ForSlot(placed.ColorSlot)
			v.screen.DrawBox(dayX(i), top, dayW-1, height, chipStyle)
			label := placed.Event.Title
			if placed.Event.Start != "" {
				label = placed.Event.Start + " " + label
			}
			v.screen.DrawText(dayX(i), top, dayW-1, 1, chipStyle, label)
		}

		if cell.Date == today {
			nowY := timedY + int(v.axis.YForTime(now)*scale)
			if nowY < timedY+timedH {
				v.screen.DrawBox(dayX(i), nowY, dayW-1, 1, v.stylesheet.TimelineNow)
			}
		}
	}
}

func (v *View) drawTimeline(desc *grid.GridDescription, x, y, h, rowsPerHour int) {
	var suntimes *model.SunTimes
	if v.suntimes != nil && len(desc.Cells) > 0 {
		suntimes = v.suntimes(desc.Cells[0].Date)
	}

	for hour := 0; hour < 24; hour++ {
		row := y + hour*rowsPerHour
		if row >= y+h {
			break
		}

		style := v.stylesheet.TimelineDay
		if suntimes != nil {
			ts := model.Timestamp{Hour: hour}
			if !ts.IsAfter(suntimes.Rise) || ts.IsAfter(suntimes.Set) {
				style = v.stylesheet.TimelineNight
			}
		}
		v.screen.DrawText(x, row, timelineWidth-1, 1, style, fmt.Sprintf("%02d:00", hour))
	}
}

func (v *View) drawMiniCalendar(desc *grid.GridDescription, x, y int) {
	v.screen.DrawText(x+1, y, miniWidth-1, 1, v.stylesheet.Header, desc.MiniLabel)

	if len(desc.MiniCells) == 0 {
		return
	}
	for i := 0; i < 7; i++ {
		label := desc.MiniCells[i].Date.ToWeekday().String()[:2]
		v.screen.DrawText(x+1+i*3, y+1, 2, 1, v.stylesheet.Header, label)
	}

	for i, cell := range desc.MiniCells {
		cellX := x + 1 + (i%7)*3
		cellY := y + 2 + i/7

		style := v.stylesheet.Normal
		switch {
		case cell.IsToday:
			style = v.stylesheet.Today
		case cell.InPrimaryWeek:
			style = v.stylesheet.WeekHighlight
		case cell.IsOutsideMonth:
			style = v.stylesheet.OutsideMonth
		}
		if cell.HasEvents {
			style = style.Bolded()
		}
		v.screen.DrawText(cellX, cellY, 2, 1, style, fmt.Sprintf("%2d", cell.Date.Day))
	}
}

func (v *View) drawStatus(desc *grid.GridDescription, x, y, w int) {
	v.screen.DrawBox(x, y, w, 1, v.stylesheet.Status)
	help := "h/l:prev/next  t:today  m:mode  H/L:mini  enter:go to mini month  q:quit"
	if len(desc.Skipped) > 0 {
		help = fmt.Sprintf("%s  (%d malformed events skipped)", help, len(desc.Skipped))
	}
	v.screen.DrawText(x+1, y, w-1, 1, v.stylesheet.Status, help)
}

func (v *View) cellStyle(cell grid.Cell) styling.DrawStyling {
	switch {
	case cell.IsToday:
		return v.stylesheet.Today
	case cell.IsOutsideMonth:
		return v.stylesheet.OutsideMonth
	default:
		return v.stylesheet.Normal
	}
}

func (v *View) drawChip(chip grid.PlacedEvent, x, y, w int) {
	style := v.chips.ForSlot(chip.ColorSlot)
	label := chip.Event.Title
	if chip.Event.Start != "" {
		label = chip.Event.Start + " " + label
	}
	v.screen.DrawText(x, y, w, 1, style, label)
}
