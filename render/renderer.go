package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/grid"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/registry"
)

// HudRows is the strip at the top of the screen reserved for score and
// health; the playfield starts below it.
const HudRows = 1

// actorSprite is one glyph queued for the y-sorted draw pass
type actorSprite struct {
	worldY float64
	col    int
	row    int
	glyph  rune
	style  tcell.Style
}

// Renderer draws a session onto a tcell screen, one frame at a time.
// Both tile planes go down first, then actors sorted by world y so the
// lower sprite wins a shared cell, then the HUD and overlays.
type Renderer struct {
	screen tcell.Screen
	camera Camera
	width  int
	height int
}

// New creates a renderer sized to the current screen
func New(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Camera exposes the view transform for input unprojection
func (r *Renderer) Camera() *Camera {
	return &r.camera
}

// Resize re-reads the screen size and refits the view below the HUD
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
	rows := r.height - HudRows
	if rows < 1 {
		rows = 1
	}
	r.camera.SetView(r.width, rows)
}

// Frame draws one complete frame and flips it to the terminal
func (r *Renderer) Frame(ctx *engine.GameContext) {
	r.screen.Clear()

	// 1. Camera follows the player center, or the map center without one
	bounds := ctx.Grid.PixelBounds()
	fx, fy := bounds.CenterX(), bounds.CenterY()
	c := &ctx.World.Components
	if kin, ok := c.Kinetic.GetComponent(ctx.Player); ok {
		if col, okCol := c.Collider.GetComponent(ctx.Player); okCol {
			box := col.Rect(kin.X, kin.Y)
			fx, fy = box.CenterX(), box.CenterY()
		}
	}
	r.camera.Follow(fx, fy, bounds.Width, bounds.Height)

	r.drawTiles(ctx)
	r.drawActors(ctx)
	r.drawHud(ctx)
	if ctx.GameOver {
		r.drawGameOver(ctx)
	}

	r.screen.Show()
}

// put writes one view cell, clipping anything outside the playfield
func (r *Renderer) put(col, row int, glyph rune, style tcell.Style) {
	y := row + HudRows
	if col < 0 || col >= r.width || y < HudRows || y >= r.height {
		return
	}
	r.screen.SetContent(col, y, glyph, nil, style)
}

// text writes a string at an absolute screen position
func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		x := col + i
		if x < 0 || x >= r.width || row < 0 || row >= r.height {
			continue
		}
		r.screen.SetContent(x, row, ch, nil, style)
	}
}

// drawTiles paints the visible slab of both planes, two columns per tile
func (r *Renderer) drawTiles(ctx *engine.GameContext) {
	tileSize := float64(parameter.TileSize)
	x0 := int(math.Floor(r.camera.OffX / tileSize))
	y0 := int(math.Floor(r.camera.OffY / tileSize))
	x1 := int(math.Floor((r.camera.OffX + r.camera.ViewWidth) / tileSize))
	y1 := int(math.Floor((r.camera.OffY + r.camera.ViewHeight) / tileSize))

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			p := core.Point{X: tx, Y: ty}
			col, row := r.camera.Screen(float64(tx)*tileSize, float64(ty)*tileSize)
			if tile, ok := ctx.Grid.Tile(p, grid.PlaneBackground); ok {
				glyph, style := tileGlyph(tile.Code)
				r.put(col, row, glyph, style)
				r.put(col+1, row, glyph, style)
			}
			if tile, ok := ctx.Grid.Tile(p, grid.PlaneForeground); ok {
				glyph, style := tileGlyph(tile.Code)
				r.put(col, row, glyph, style)
				r.put(col+1, row, glyph, style)
			}
		}
	}
}

// drawActors paints projectiles, enemies and the player y-sorted
func (r *Renderer) drawActors(ctx *engine.GameContext) {
	c := &ctx.World.Components
	var sprites []actorSprite

	add := func(e core.Entity, glyph rune, style tcell.Style) {
		kin, ok := c.Kinetic.GetComponent(e)
		if !ok {
			return
		}
		col, okCol := c.Collider.GetComponent(e)
		if !okCol {
			return
		}
		box := col.Rect(kin.X, kin.Y)
		sc, sr := r.camera.Screen(box.CenterX(), box.CenterY())
		sprites = append(sprites, actorSprite{worldY: kin.Y, col: sc, row: sr, glyph: glyph, style: style})
	}

	for _, e := range ctx.Roster.Members(registry.GroupProjectiles) {
		proj, ok := c.Projectile.GetComponent(e)
		if !ok {
			continue
		}
		style := styleEnemyShot
		if proj.Owner == ctx.Player {
			style = stylePlayerShot
		}
		add(e, '•', style)
	}

	for _, e := range ctx.Roster.Members(registry.GroupEnemies) {
		health, ok := c.Health.GetComponent(e)
		if !ok || health.Dead() || !health.Visible {
			continue
		}
		beh, okBeh := c.Behavior.GetComponent(e)
		if !okBeh {
			continue
		}
		glyph, style := archetypeGlyph(beh.Archetype, beh.Defending())
		add(e, glyph, style)
	}

	if health, ok := c.Health.GetComponent(ctx.Player); ok && !health.Dead() && health.Visible {
		add(ctx.Player, '@', stylePlayer)
	}

	sort.Slice(sprites, func(i, j int) bool { return sprites[i].worldY < sprites[j].worldY })
	for _, s := range sprites {
		r.put(s.col, s.row, s.glyph, s.style)
	}
}

// drawHud paints the score and the health pips on the reserved strip
func (r *Renderer) drawHud(ctx *engine.GameContext) {
	r.text(1, 0, fmt.Sprintf("score %d", ctx.Score), styleHud)

	cur, maxHealth := ctx.PlayerHealth()
	for i := 0; i < maxHealth; i++ {
		style := styleHeartGap
		if i < cur {
			style = styleHeart
		}
		x := r.width - 2*(maxHealth-i)
		if x < 0 || r.height < 1 {
			continue
		}
		r.screen.SetContent(x, 0, '♥', nil, style)
	}
}

// drawGameOver fades the end screen in over the playfield
func (r *Renderer) drawGameOver(ctx *engine.GameContext) {
	fade := ctx.GameOverElapsed.Seconds() * parameter.GameOverFadeRate
	if fade > parameter.GameOverFadeMax {
		fade = parameter.GameOverFadeMax
	}
	v := int32(fade)
	styleTitle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v/6, v/6)).Bold(true)
	styleInfo := tcell.StyleDefault.Foreground(tcell.NewRGBColor(v/2, v/2, v/2))

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("final score %d", ctx.Score),
		"press r to restart, q to quit",
	}
	midRow := r.height / 2
	for i, line := range lines {
		style := styleInfo
		if i == 0 {
			style = styleTitle
		}
		r.text((r.width-len(line))/2, midRow-1+i, line, style)
	}
}
