package controller

import "marketgenius/generator"

// State is exactly one of Idle, Loading, Ready or Failed.
type State interface {
	Phase() Phase
	isState()
}

// Phase names a State variant.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

type Idle struct{}

// Loading carries the request that is in flight.
type Loading struct {
	Request generator.Request
}

type Ready struct {
	Result generator.Result
}

// Failed holds the user-facing message only.
type Failed struct {
	Message string
}

func (Idle) Phase() Phase    { return PhaseIdle }
func (Loading) Phase() Phase { return PhaseLoading }
func (Ready) Phase() Phase   { return PhaseReady }
func (Failed) Phase() Phase  { return PhaseFailed }

func (Idle) isState()    {}
func (Loading) isState() {}
func (Ready) isState()   {}
func (Failed) isState()  {}
