package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene driven by the App.
// Dapper Dasher has a single gameplay scene; the interface keeps the App
// independent of its construction.
type Scene interface {
	// Update advances the scene logic by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
