package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/warrenfall/cavern"
	"github.com/lixenwraith/warrenfall/component"
)

var (
	styleWallFace   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 130, 95))
	styleWallCap    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 82, 62))
	styleRock       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(112, 112, 124))
	styleStoneFloor = tcell.StyleDefault.Foreground(tcell.NewRGBColor(72, 72, 84))
	styleDirtFloor  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(104, 78, 52))

	stylePlayer      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHornet      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSpider      = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleBeetle      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBeetleGuard = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	stylePlayerShot  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleEnemyShot   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 150, 60))

	styleHud      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHeart    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHeartGap = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 80, 80))
)

// Variation tables keyed by the generator's per-tile roll
var (
	wallCapRunes    = []rune{'█', '▇'}
	rockRunes       = []rune{'▒', '░'}
	stoneFloorRunes = []rune{'·', '.', ':', '·'}
	dirtFloorRunes  = []rune{',', '.', '\'', ',', '`', ','}
)

// tileGlyph picks the rune and style for a placed tile
func tileGlyph(code cavern.TileCode) (rune, tcell.Style) {
	switch code.Type {
	case cavern.TileWallFace:
		return '▓', styleWallFace
	case cavern.TileWallCap:
		return wallCapRunes[code.Variation%len(wallCapRunes)], styleWallCap
	case cavern.TileRock:
		return rockRunes[code.Variation%len(rockRunes)], styleRock
	case cavern.TileStoneFloor:
		return stoneFloorRunes[code.Variation%len(stoneFloorRunes)], styleStoneFloor
	case cavern.TileDirtFloor:
		return dirtFloorRunes[code.Variation%len(dirtFloorRunes)], styleDirtFloor
	}
	return ' ', tcell.StyleDefault
}

// archetypeGlyph picks the rune and style for an enemy
func archetypeGlyph(a component.Archetype, defending bool) (rune, tcell.Style) {
	switch a {
	case component.ArchetypeSpider:
		return 'S', styleSpider
	case component.ArchetypeBeetle:
		if defending {
			return 'B', styleBeetleGuard
		}
		return 'B', styleBeetle
	default:
		return 'H', styleHornet
	}
}
