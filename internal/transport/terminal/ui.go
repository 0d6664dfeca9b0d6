// Package terminal plays the game in a terminal with termbox: the board is
// drawn from driver snapshots, keys and mouse become driver commands.
package terminal

import (
	"context"
	"fmt"

	"github.com/nsf/termbox-go"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/service/game"
)

type Driver interface {
	Submit(ctx context.Context, cmd game.Command) error
	Latest() game.Snapshot
}

type UI struct {
	driver   Driver
	cellSize int
	cursor   int
	frames   chan game.Snapshot
}

// New builds a UI for driver. Register Notify with the driver before the
// driver starts.
func New(driver Driver, cellSize int) *UI {
	return &UI{
		driver:   driver,
		cellSize: cellSize,
		cursor:   domain.Columns / 2,
		frames:   make(chan game.Snapshot, 1),
	}
}

// Notify is a game.Driver snapshot observer. Only the newest frame is
// kept; a terminal cannot show frames faster than it drains them.
func (u *UI) Notify(snap game.Snapshot) {
	select {
	case u.frames <- snap:
	default:
		select {
		case <-u.frames:
		default:
		}
		select {
		case u.frames <- snap:
		default:
		}
	}
}

// action is what one terminal event asks for.
type action struct {
	cmd    *game.Command
	cursor int
	quit   bool
}

// translate maps a termbox event to an action. cursor is the column the
// keyboard currently points at.
func translate(ev termbox.Event, cursor int) action {
	a := action{cursor: cursor}

	switch ev.Type {
	case termbox.EventKey:
		switch {
		case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q':
			a.quit = true
		case ev.Key == termbox.KeyArrowLeft:
			if cursor > 0 {
				a.cursor = cursor - 1
			}
			a.cmd = &game.Command{Type: game.CmdHoverColumn, Column: a.cursor}
		case ev.Key == termbox.KeyArrowRight:
			if cursor < domain.Columns-1 {
				a.cursor = cursor + 1
			}
			a.cmd = &game.Command{Type: game.CmdHoverColumn, Column: a.cursor}
		case ev.Key == termbox.KeyEnter || ev.Key == termbox.KeySpace:
			a.cmd = &game.Command{Type: game.CmdSelectColumn, Column: cursor}
		case ev.Ch >= '1' && ev.Ch < '1'+domain.Columns:
			a.cursor = int(ev.Ch - '1')
			a.cmd = &game.Command{Type: game.CmdSelectColumn, Column: a.cursor}
		case ev.Ch == 'n':
			a.cmd = &game.Command{Type: game.CmdNewMatch}
		case ev.Ch == 'r':
			a.cmd = &game.Command{Type: game.CmdResetScores}
		}

	case termbox.EventMouse:
		if ev.Key != termbox.MouseLeft {
			break
		}
		col := columnAt(ev.MouseX)
		if ev.Mod&termbox.ModMotion != 0 {
			// dragging previews, the press itself drops
			if col >= 0 {
				a.cursor = col
			}
			a.cmd = &game.Command{Type: game.CmdHoverColumn, Column: col}
			break
		}
		if col >= 0 {
			a.cursor = col
			a.cmd = &game.Command{Type: game.CmdSelectColumn, Column: col}
		}
	}
	return a
}

// Run takes over the terminal until the player quits or ctx ends.
func (u *UI) Run(ctx context.Context) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	events := make(chan termbox.Event)
	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	defer termbox.Interrupt()

	screen := termboxScreen{}
	snap := u.driver.Latest()
	if err := Draw(screen, snap, u.cellSize); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case snap = <-u.frames:
			if err := Draw(screen, snap, u.cellSize); err != nil {
				return err
			}

		case ev := <-events:
			switch ev.Type {
			case termbox.EventError:
				return fmt.Errorf("terminal input: %w", ev.Err)
			case termbox.EventResize:
				if err := Draw(screen, snap, u.cellSize); err != nil {
					return err
				}
				continue
			}

			a := translate(ev, u.cursor)
			if a.quit {
				return nil
			}
			u.cursor = a.cursor
			if a.cmd == nil {
				continue
			}
			if err := u.driver.Submit(ctx, *a.cmd); err != nil {
				log.Debug().Str("component", "terminal").Err(err).Msg("command not delivered")
				return err
			}
		}
	}
}

type termboxScreen struct{}

func (termboxScreen) Clear(fg, bg termbox.Attribute) error { return termbox.Clear(fg, bg) }

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxScreen) Flush() error { return termbox.Flush() }
