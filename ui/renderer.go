package ui

import (
	"fmt"
	"yeast-sim/game"
	"yeast-sim/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowTitle = "Yeast"
	overlayX    = 60
	overlayY    = 60
	overlayFont = 16
)

// Renderer draws a game into a raylib window. raylib throttles the loop
// inside EndDrawing once SetTargetFPS is set.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	scale        float32
}

// NewRenderer opens the window. Close must be called on the same
// goroutine once the run is over.
func NewRenderer() *Renderer {
	rl.InitWindow(types.WorldSize, types.WorldSize, windowTitle)
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(types.TargetFPS)

	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.scale = float32(min(r.screenWidth, r.screenHeight)) / types.WorldSize
}

// Quit reports a window close or the q key.
func (r *Renderer) Quit() bool {
	return rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ)
}

func (r *Renderer) BeginFrame(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.White)

	for _, w := range g.Walls() {
		rl.DrawLineEx(r.point(w.A.X, w.A.Y), r.point(w.B.X, w.B.Y), float32(2*w.Radius)*r.scale, toRaylib(w.Color))
	}

	for _, p := range g.Particles() {
		pos := p.Position()
		center := r.point(pos.X, pos.Y)
		radius := float32(p.Radius) * r.scale
		rl.DrawCircleV(center, radius, toRaylib(p.Color))
		rl.DrawCircleLines(int32(center.X), int32(center.Y), radius, rl.DarkGray)
	}
}

func (r *Renderer) EndFrame(g *game.Game) {
	label := fmt.Sprintf("Glucose count: %d", g.Census().Glucose)
	rl.DrawText(label, overlayX, overlayY, overlayFont, rl.Black)
	rl.EndDrawing()
}

func (r *Renderer) Close() error {
	rl.CloseWindow()
	return nil
}

func (r *Renderer) point(x, y float64) rl.Vector2 {
	return rl.Vector2{X: float32(x) * r.scale, Y: float32(y) * r.scale}
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
