// meta/meta.go
package meta

import "time"

// RANDOM_URL is the plain-text integer endpoint dice are fetched from.
const RANDOM_URL = "https://www.random.org/integers/?num=1&min=1&max=6&col=1&base=10&format=plain&rnd=new"

// USER_AGENT identifies this client to the random source.
const USER_AGENT = "ludo-turn-engine"

// RANDOM_TIMEOUT bounds a single random number fetch.
const RANDOM_TIMEOUT = 5 * time.Second

// BOARD_CELLS is the length of a single token's path, home to goal.
const BOARD_CELLS = 57

// STEP_DELAY paces the token between consecutive cells.
const STEP_DELAY = 600 * time.Millisecond

// MOVE_COOLDOWN is the minimum interval between two "move" cues.
const MOVE_COOLDOWN = 100 * time.Millisecond

// MAX_TURNS caps an automatic game.
const MAX_TURNS = 1000

// CLOSE_TIMEOUT bounds how long closing an engine waits for in-flight work.
const CLOSE_TIMEOUT = 10 * time.Second
