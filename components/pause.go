package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. While Paused the physics step is
// frozen unless StepOnce is set, which advances exactly one sub-step.
type ClockData struct {
	Paused   bool
	StepOnce bool
	Dt       float64 // simulated seconds advanced this tick, 0 when frozen
	Tick     int
	Elapsed  float64
}

var Clock = donburi.NewComponentType[ClockData]()
