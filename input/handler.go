package input

import (
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/warrenfall/config"
	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/render"
)

// Action is the frontend-level outcome of one terminal event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRestart
	ActionResize
)

// Terminals report presses only, never releases, so a tapped direction
// stays live for a sustain window that key autorepeat keeps refreshing.
const holdWindow = 200 * time.Millisecond

const (
	dirUp = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// Rune aliases for keys that can't be bare single-char binding values
var runeAliases = map[string]rune{
	"space": ' ',
}

// keymap holds the configured bindings resolved to runes
type keymap struct {
	up, down, left, right rune
	dodge, restart, quit  rune
}

// bindRune resolves one binding value to the rune it matches
func bindRune(s string) rune {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r
	}
	for _, r := range s {
		return unicode.ToLower(r)
	}
	return 0
}

// Handler folds terminal events into the per-tick intent. Movement
// keys and the arrow keys steer, the mouse aims, its left button
// attacks, and dodge is edge triggered.
type Handler struct {
	camera *render.Camera
	keys   keymap

	moveExpiry [dirCount]time.Time
	aimCol     int
	aimRow     int
	haveAim    bool
	attackHeld bool
	dodge      bool
}

// NewHandler creates an input handler with the given bindings
func NewHandler(camera *render.Camera, b config.Bindings) *Handler {
	return &Handler{
		camera: camera,
		keys: keymap{
			up:      bindRune(b.Up),
			down:    bindRune(b.Down),
			left:    bindRune(b.Left),
			right:   bindRune(b.Right),
			dodge:   bindRune(b.Dodge),
			restart: bindRune(b.Restart),
			quit:    bindRune(b.Quit),
		},
	}
}

// HandleEvent consumes one terminal event
func (h *Handler) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.aimCol, h.aimRow = ev.Position()
		h.haveAim = true
		h.attackHeld = ev.Buttons()&tcell.Button1 != 0
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

// handleKey routes one key event through the bindings
func (h *Handler) handleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		h.press(dirUp)
	case tcell.KeyDown:
		h.press(dirDown)
	case tcell.KeyLeft:
		h.press(dirLeft)
	case tcell.KeyRight:
		h.press(dirRight)
	case tcell.KeyRune:
		switch r := unicode.ToLower(ev.Rune()); r {
		case h.keys.quit:
			return ActionQuit
		case h.keys.restart:
			return ActionRestart
		case h.keys.up:
			h.press(dirUp)
		case h.keys.down:
			h.press(dirDown)
		case h.keys.left:
			h.press(dirLeft)
		case h.keys.right:
			h.press(dirRight)
		case h.keys.dodge:
			h.dodge = true
		}
	}
	return ActionNone
}

// press marks a direction live until its sustain window expires
func (h *Handler) press(dir int) {
	h.moveExpiry[dir] = time.Now().Add(holdWindow)
}

// Intent folds the handler state into the intent for the next tick.
// Before the first mouse event the aim sits on the view center, which
// tracks the player.
func (h *Handler) Intent(now time.Time) engine.Intent {
	var in engine.Intent
	if now.Before(h.moveExpiry[dirUp]) {
		in.MoveY--
	}
	if now.Before(h.moveExpiry[dirDown]) {
		in.MoveY++
	}
	if now.Before(h.moveExpiry[dirLeft]) {
		in.MoveX--
	}
	if now.Before(h.moveExpiry[dirRight]) {
		in.MoveX++
	}

	if h.haveAim {
		in.AimX, in.AimY = h.camera.World(h.aimCol, h.aimRow-render.HudRows)
	} else {
		in.AimX = h.camera.OffX + h.camera.ViewWidth/2
		in.AimY = h.camera.OffY + h.camera.ViewHeight/2
	}

	in.Attack = h.attackHeld
	in.Dodge = h.dodge
	h.dodge = false
	return in
}
