// SPDX-License-Identifier: EPL-2.0

package algo

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ik5/audalgo/audio"
)

// Unit is a processing stage driven in two phases: ports are set and
// ConfigurationChange derives an execution plan on the control thread, then
// Process is called once per block on the audio thread.
//
// Units do no locking. Callers must not run control operations while a
// Process call is in flight.
type Unit interface {
	ID() string
	Type() string

	SetInputPort(p audio.Port)
	SetOutputPort(p audio.Port)
	InputPort() audio.Port
	OutputPort() audio.Port

	// ConfigurationChange recomputes the plan from the current ports. It may
	// disable the unit, in which case Process passes input through.
	ConfigurationChange()
	NeedProcess() bool

	// Process transforms frames interleaved frames of input. The returned
	// slice either aliases input (passthrough) or is owned by the unit and
	// valid until the next call. ok is false when nothing could be produced;
	// outFrames is then 0.
	Process(t time.Time, input []byte, frames int) (output []byte, outFrames int, ok bool)
}

// Option configures the shared state of a unit.
type Option func(*Algo)

// WithLogger routes configuration messages to l.
func WithLogger(l *log.Logger) Option {
	return func(a *Algo) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithID replaces the generated instance id.
func WithID(id string) Option {
	return func(a *Algo) {
		if id != "" {
			a.id = id
		}
	}
}

// Algo holds the ports and lifecycle flags every unit shares. It is meant to
// be embedded.
type Algo struct {
	id     string
	kind   string
	logger *log.Logger

	input  audio.Port
	output audio.Port

	needProcess bool
	configured  bool
}

func newAlgo(kind string, opts ...Option) Algo {
	a := Algo{
		id:     uuid.New().String(),
		kind:   kind,
		logger: log.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&a)
		}
	}
	return a
}

func (a *Algo) ID() string   { return a.id }
func (a *Algo) Type() string { return a.kind }

func (a *Algo) SetInputPort(p audio.Port) {
	p.Map = p.Map.Clone()
	a.input = p
}

func (a *Algo) SetOutputPort(p audio.Port) {
	p.Map = p.Map.Clone()
	a.output = p
}

func (a *Algo) InputPort() audio.Port  { return a.input }
func (a *Algo) OutputPort() audio.Port { return a.output }

// NeedProcess is false before the first configuration and whenever the unit
// disabled itself.
func (a *Algo) NeedProcess() bool { return a.needProcess }

// Configured reports whether ConfigurationChange ran at least once.
func (a *Algo) Configured() bool { return a.configured }

// configurationChange resets the flags before a unit derives its plan.
func (a *Algo) configurationChange() {
	a.configured = true
	a.needProcess = true
}

func (a *Algo) disable(format string, args ...any) {
	a.needProcess = false
	a.logf(format, args...)
}

func (a *Algo) logf(format string, args ...any) {
	short := a.id
	if len(short) > 8 {
		short = short[:8]
	}
	a.logger.Printf("%s %s: %s", a.kind, short, fmt.Sprintf(format, args...))
}
