// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06 // Ограничение dt после долгих пауз

	TermCols = 120
	TermRows = 40

	SnapshotFrames = 120
	SnapshotStep   = 1.0 / 60
)

var BackgroundColor = color.RGBA{20, 20, 30, 255}

// Simulation is the user-tunable part of the configuration. Colours are CSS
// colour strings, parsed by render.ParseColor.
type Simulation struct {
	PathColor      string `json:"pathColor"`
	CircleColor    string `json:"circleColor"`
	HoverStroke    string `json:"hoverStroke"`
	ClickStroke    string `json:"clickStroke"`
	DrawFromCenter bool   `json:"drawFromCenter"`
	ShowFPS        bool   `json:"showFps"`

	// Параметры орбиты
	OrbitRadius  float64 `json:"orbitRadius"`
	OrbitSpeed   float64 `json:"orbitSpeed"` // радиан в секунду
	CircleRadius float64 `json:"circleRadius"`

	// Параметры следа
	TraceMaxCount   int     `json:"traceMaxCount"`
	TraceAfterEvery int     `json:"traceAfterEvery"`
	TraceDecay      float64 `json:"traceDecay"` // точек в секунду
	TraceLineWidth  float64 `json:"traceLineWidth"`
}

// Default returns the settings used when no file overrides them.
func Default() Simulation {
	return Simulation{
		PathColor:      "hsl(40, 80%, 35%)",
		CircleColor:    "hsl(51, 100%, 48%)",
		HoverStroke:    "hsl(210, 60%, 52%)",
		ClickStroke:    "hsl(200, 100%, 52%)",
		DrawFromCenter: true,

		OrbitRadius:  200,
		OrbitSpeed:   1.5,
		CircleRadius: 20,

		TraceMaxCount:   400,
		TraceAfterEvery: 1,
		TraceLineWidth:  2,
	}
}

// Load reads a JSON settings file over the defaults. Fields missing from the
// file keep their default values.
func Load(path string) (Simulation, error) {
	sim := Default()
	file, err := os.ReadFile(path)
	if err != nil {
		return sim, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(file, &sim); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return sim, nil
}
