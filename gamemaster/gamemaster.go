package gamemaster

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"ludo/engine"
	"ludo/game"
	"strings"

	"github.com/rs/zerolog/log"
)

// Command is one player action read from the input.
type Command string

const (
	Roll   Command = "roll"
	Move   Command = "move"
	Reset  Command = "reset"
	Status Command = "status"
	Help   Command = "help"
	Quit   Command = "quit"
)

var aliases = map[string]Command{
	"r": Roll,
	"m": Move,
	"x": Reset,
	"s": Status,
	"h": Help,
	"?": Help,
	"q": Quit,
}

// ParseCommand maps an input line to a command.
func ParseCommand(line string) (Command, bool) {
	word := strings.ToLower(strings.TrimSpace(line))
	if c, ok := aliases[word]; ok {
		return c, true
	}
	switch c := Command(word); c {
	case Roll, Move, Reset, Status, Help, Quit:
		return c, true
	}
	return "", false
}

// GameMaster turns text commands into engine requests. An action the display
// currently shows as disabled is not forwarded.
type GameMaster struct {
	Engine  engine.Engine
	Display *Display
	in      io.Reader
	out     io.Writer
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(e engine.Engine, d *Display, in io.Reader, out io.Writer) *GameMaster {
	return &GameMaster{
		Engine:  e,
		Display: d,
		in:      in,
		out:     out,
	}
}

// Run reads commands until quit, end of input or ctx is done. After every
// forwarded action it waits for the engine to settle before reading on.
func (gm *GameMaster) Run(ctx context.Context) error {
	gm.help()
	scanner := bufio.NewScanner(gm.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		cmd, ok := ParseCommand(line)
		if !ok {
			fmt.Fprintf(gm.out, "unknown command %q, type help\n", strings.TrimSpace(line))
			continue
		}
		if cmd == Quit {
			return nil
		}
		if err := gm.Handle(ctx, cmd); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Handle applies a single command.
func (gm *GameMaster) Handle(ctx context.Context, cmd Command) error {
	avail := gm.Display.Availability()

	switch cmd {
	case Roll:
		if !avail.Roll {
			gm.unavailable(cmd)
			return nil
		}
		gm.Engine.RequestRoll()
	case Move:
		if !avail.Move {
			gm.unavailable(cmd)
			return nil
		}
		gm.Engine.RequestMove()
	case Reset:
		if !avail.Reset {
			gm.unavailable(cmd)
			return nil
		}
		gm.Engine.Reset()
	case Status:
		gm.status()
		return nil
	case Help:
		gm.help()
		return nil
	default:
		return nil
	}

	return gm.Engine.Wait(ctx)
}

func (gm *GameMaster) unavailable(cmd Command) {
	log.Debug().Str("command", string(cmd)).Msg("disabled action ignored")
	fmt.Fprintf(gm.out, "%s is not available right now\n", cmd)
}

func (gm *GameMaster) status() {
	s := gm.Engine.State()
	fmt.Fprintf(gm.out, "%s cell %d, last roll %d, %s\n", gm.Display.Track(), s.CurrentCell, s.LastRoll, s.Phase)
	if s.Phase == game.Finished {
		fmt.Fprintln(gm.out, "game over, reset to play again")
	}
}

func (gm *GameMaster) help() {
	fmt.Fprintln(gm.out, "commands: roll (r), move (m), reset (x), status (s), help (h), quit (q)")
}
