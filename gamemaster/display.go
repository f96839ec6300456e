package gamemaster

import (
	"fmt"
	"io"
	"ludo/game"
	"ludo/utils"
	"strings"
	"sync"
)

var dieFaces = []string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// Display renders the game as text lines. It implements
// communication.Renderer and communication.Controls and remembers the last
// availability so the input loop can gate commands on it.
type Display struct {
	mu    sync.Mutex
	out   io.Writer
	board *game.Board
	cell  int
	face  int // -1 when the die is hidden
	avail game.Availability
}

func NewDisplay(out io.Writer, board *game.Board) *Display {
	return &Display{
		out:   out,
		board: board,
		cell:  board.Home(),
		face:  -1,
	}
}

func (d *Display) ShowRoll(face int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.face = utils.Clamp(face, 0, len(dieFaces)-1)
	fmt.Fprintf(d.out, "die %s  rolled %d\n", dieFaces[d.face], d.face+1)
}

func (d *Display) HideRoll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.face = -1
}

func (d *Display) MoveTo(cell game.Cell) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cell = cell.Index
	fmt.Fprintf(d.out, "%s %s\n", d.track(), cell.ID)
}

func (d *Display) PlaceAt(cell game.Cell) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cell = cell.Index
	fmt.Fprintf(d.out, "%s %s (placed)\n", d.track(), cell.ID)
}

func (d *Display) SetInteractable(a game.Availability) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if a == d.avail {
		return
	}
	d.avail = a
	fmt.Fprintf(d.out, "actions: %s\n", describe(a))
}

// Play writes a feedback clip; it serves as the feedback.Player sink.
func (d *Display) Play(clip string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, "♪ %s\n", clip)
}

func (d *Display) Availability() game.Availability {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.avail
}

// Track draws the board with the token's position.
func (d *Display) Track() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.track()
}

func (d *Display) track() string {
	var b strings.Builder
	b.WriteByte('[')
	pos := utils.Clamp(d.cell, d.board.Home(), d.board.Goal())
	for i := 0; i < d.board.Len(); i++ {
		switch {
		case i == pos:
			b.WriteByte('@')
		case i == d.board.Goal():
			b.WriteByte('G')
		default:
			b.WriteByte('.')
		}
	}
	b.WriteByte(']')
	return b.String()
}

func describe(a game.Availability) string {
	var names []string
	if a.Roll {
		names = append(names, "roll")
	}
	if a.Move {
		names = append(names, "move")
	}
	if a.Reset {
		names = append(names, "reset")
	}
	if len(names) == 0 {
		return "(wait)"
	}
	return strings.Join(names, " ")
}
