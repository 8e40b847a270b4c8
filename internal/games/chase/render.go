package chase

import (
	"fmt"

	platformcore "github.com/vovakirdan/mazehunt/internal/core"
	"github.com/vovakirdan/mazehunt/internal/games/chase/core"
)

const hudHeight = 4

// checkLayout verifies the maze fits on the current screen. The maze is
// drawn in wall-expanded form: a W x H cell grid takes (2W+1) x (2H+1)
// characters.
func (g *Game) checkLayout() {
	exW := 2*g.sim.Grid.W + 1
	exH := 2*g.sim.Grid.H + 1
	g.tooSmall = g.screenW < exW+2 || g.screenH < exH+hudHeight+1
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderEntities(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d | Press R to restart", g.Score()))
	case g.loop.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d | Lives: %d | Level: %d",
		g.Title(), g.Score(), g.sim.Lives, g.level)
	if g.sim.PowerTicks > 0 {
		hud += fmt.Sprintf(" | POWER %d", g.sim.PowerTicks)
	}
	if active, cooldown := g.sim.SprintState(); active {
		hud += " | SPRINT"
	} else if cooldown > 0 {
		hud += fmt.Sprintf(" | sprint in %d", cooldown)
	}
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 1, '─', platformcore.ColorGray)
	}

	line := " ←↑↓→/WASD/HJKL: Move | Space: Sprint | P: Pause | Q: Quit"
	if g.flash != "" && g.sim.Tick() < g.flashUntil {
		line = " " + g.flash
	}
	dst.DrawTextColored(0, 2, line, platformcore.ColorGray)

	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 3, '─', platformcore.ColorGray)
	}
}

// mazeOrigin returns the top-left screen position of the expanded maze.
func (g *Game) mazeOrigin(dst *platformcore.Screen) (int, int) {
	exW := 2*g.sim.Grid.W + 1
	exH := 2*g.sim.Grid.H + 1
	ox := (dst.Width() - exW) / 2
	oy := hudHeight + (dst.Height()-hudHeight-exH)/2
	if oy < hudHeight {
		oy = hudHeight
	}
	return ox, oy
}

// renderMaze draws walls and cell contents in wall-expanded form. Even
// coordinates are wall positions, odd/odd coordinates are cell interiors.
func (g *Game) renderMaze(dst *platformcore.Screen) {
	grid := g.sim.Grid
	ox, oy := g.mazeOrigin(dst)
	exW := 2*grid.W + 1
	exH := 2*grid.H + 1

	for ey := 0; ey < exH; ey++ {
		for ex := 0; ex < exW; ex++ {
			evenX := ex%2 == 0
			evenY := ey%2 == 0

			switch {
			case evenX && evenY:
				dst.SetCell(ox+ex, oy+ey, '█', platformcore.ColorBlue)

			case !evenX && evenY:
				// Horizontal boundary above row ey/2
				x := (ex - 1) / 2
				b := ey / 2
				if b == 0 || b == grid.H || grid.HasWall(core.C(x, b), core.DirUp) {
					dst.SetCell(ox+ex, oy+ey, '█', platformcore.ColorBlue)
				}

			case evenX && !evenY:
				// Vertical boundary left of column ex/2
				b := ex / 2
				y := (ey - 1) / 2
				if b == 0 || b == grid.W || grid.HasWall(core.C(b, y), core.DirLeft) {
					dst.SetCell(ox+ex, oy+ey, '█', platformcore.ColorBlue)
				}

			default:
				g.renderCellContent(dst, ox+ex, oy+ey, core.C((ex-1)/2, (ey-1)/2))
			}
		}
	}
}

// renderCellContent draws whatever sits in the cell interior.
func (g *Game) renderCellContent(dst *platformcore.Screen, sx, sy int, c core.Coord) {
	switch g.sim.Grid.Cell(c).Content {
	case core.ContentCollectible:
		dst.SetCell(sx, sy, '·', platformcore.ColorWhite)
	case core.ContentPowerNode:
		dst.SetCell(sx, sy, '◆', platformcore.ColorBrightYellow)
	}
}

// renderEntities draws the player and pursuers over the maze.
func (g *Game) renderEntities(dst *platformcore.Screen) {
	ox, oy := g.mazeOrigin(dst)

	for _, p := range g.sim.Pursuers {
		if p.Mode == core.ModeDisabled {
			continue
		}
		r, color := pursuerGlyph(p)
		dst.SetCell(ox+1+2*p.Pos.X, oy+1+2*p.Pos.Y, r, color)
	}

	playerColor := platformcore.ColorBrightYellow
	if g.sim.PowerTicks > 0 {
		playerColor = platformcore.ColorBrightWhite
	}
	dst.SetCell(ox+1+2*g.sim.PlayerPos.X, oy+1+2*g.sim.PlayerPos.Y, '@', playerColor)
}

// pursuerGlyph picks the rune and color for a pursuer.
func pursuerGlyph(p *core.Pursuer) (rune, platformcore.Color) {
	if p.Mode == core.ModeEvading {
		return 'e', platformcore.ColorBlue
	}

	switch p.Archetype {
	case core.ArchetypeHunter:
		return 'H', platformcore.ColorBrightRed
	case core.ArchetypePatrol:
		return 'P', platformcore.ColorOrange
	case core.ArchetypePhantom:
		if p.Phantom.Warning {
			return 'F', platformcore.ColorBrightWhite
		}
		return 'F', platformcore.ColorMagenta
	case core.ArchetypeSwarm:
		return 'S', platformcore.ColorGreen
	default:
		return '?', platformcore.ColorWhite
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := platformcore.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
