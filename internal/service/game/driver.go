package game

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

var ErrDriverStopped = errors.New("driver stopped")

type CommandType string

const (
	CmdSelectColumn CommandType = "select_column"
	CmdHoverColumn  CommandType = "hover_column"
	CmdNewMatch     CommandType = "new_match"
	CmdResetScores  CommandType = "reset_scores"
)

// Command is one input from an adapter. Column is used by the select and
// hover commands; a negative hover column clears the preview.
type Command struct {
	Type   CommandType `json:"type"`
	Column int         `json:"column"`
}

// Driver runs a Table on a single goroutine. Adapter commands and clock
// ticks are handled one at a time, so the table never sees two mutations
// interleave.
type Driver struct {
	table    *Table
	store    ScoreStore
	interval time.Duration

	commands chan Command
	saves    chan domain.Scores
	done     chan struct{}

	mu        sync.RWMutex
	latest    Snapshot
	observers []func(Snapshot)
}

// NewDriver wraps table. A nil store disables score persistence.
func NewDriver(table *Table, store ScoreStore, interval time.Duration) *Driver {
	d := &Driver{
		table:    table,
		store:    store,
		interval: interval,
		commands: make(chan Command, 64),
		saves:    make(chan domain.Scores, 1),
		done:     make(chan struct{}),
		latest:   table.Snapshot(),
	}
	table.OnScoresChanged(d.queueSave)
	return d
}

// OnSnapshot registers fn to receive every published snapshot. fn runs on
// the driver goroutine and must not block. Register before Run.
func (d *Driver) OnSnapshot(fn func(Snapshot)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, fn)
}

// Latest returns the most recently published snapshot. Safe from any
// goroutine.
func (d *Driver) Latest() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.latest
}

// Submit queues cmd for the driver goroutine.
func (d *Driver) Submit(ctx context.Context, cmd Command) error {
	select {
	case d.commands <- cmd:
		return nil
	case <-d.done:
		return ErrDriverStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes commands and ticks until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.done)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d.persistLoop(ctx)
	}()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	log.Info().Str("component", "driver").Dur("interval", d.interval).Msg("game loop started")
	d.publish()

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			d.flush()
			log.Info().Str("component", "driver").Msg("game loop stopped")
			return ctx.Err()

		case cmd := <-d.commands:
			d.apply(cmd)
			d.publish()

		case <-ticker.C:
			if d.table.Tick() {
				d.publish()
			}
		}
	}
}

func (d *Driver) apply(cmd Command) {
	switch cmd.Type {
	case CmdSelectColumn:
		// rejections are reported through the snapshot message
		_ = d.table.SelectColumn(cmd.Column)
	case CmdHoverColumn:
		d.table.Hover(cmd.Column)
	case CmdNewMatch:
		d.table.NewMatch()
	case CmdResetScores:
		d.table.ResetScores()
	default:
		log.Warn().Str("component", "driver").Str("type", string(cmd.Type)).Msg("unknown command")
	}
}

func (d *Driver) publish() {
	snap := d.table.Snapshot()

	d.mu.Lock()
	d.latest = snap
	observers := d.observers
	d.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

// queueSave keeps only the newest tally waiting; an older unsaved one is
// superseded. Called on the driver goroutine only.
func (d *Driver) queueSave(scores domain.Scores) {
	if d.store == nil {
		return
	}
	select {
	case d.saves <- scores:
	default:
		select {
		case <-d.saves:
		default:
		}
		d.saves <- scores
	}
}

func (d *Driver) persistLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case scores := <-d.saves:
			d.save(scores)
		}
	}
}

// flush writes a tally that was queued but not yet saved when the loop
// stopped.
func (d *Driver) flush() {
	select {
	case scores := <-d.saves:
		d.save(scores)
	default:
	}
}

func (d *Driver) save(scores domain.Scores) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.store.Save(ctx, scores); err != nil {
		log.Error().Str("component", "store").Err(err).Msg("failed to save scores")
		return
	}
	log.Debug().Str("component", "store").Interface("scores", scores).Msg("scores saved")
}
