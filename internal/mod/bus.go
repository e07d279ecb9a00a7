// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mod

import (
	"context"
	"strconv"
	"sync"

	"github.com/mia-platform/fatallogger/internal/logger"
)

// Phase is a step of the mod lifecycle.
type Phase int

const (
	PhaseCommonSetup Phase = iota
	PhaseLoadComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseCommonSetup:
		return "common_setup"
	case PhaseLoadComplete:
		return "load_complete"
	default:
		return "Phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// Listener is invoked when the phase it is registered for is posted.
type Listener func(ctx context.Context) error

// Bus dispatches lifecycle phases to the registered listeners.
type Bus struct {
	log logger.Logger

	lock      sync.Mutex
	listeners map[Phase][]Listener
}

// NewBus returns an empty Bus logging on log.
func NewBus(log logger.Logger) *Bus {
	return &Bus{
		log:       log,
		listeners: make(map[Phase][]Listener),
	}
}

// AddListener registers listener for phase.
func (b *Bus) AddListener(phase Phase, listener Listener) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.listeners[phase] = append(b.listeners[phase], listener)
}

// Post runs the listeners of phase in registration order, stopping at the first error.
func (b *Bus) Post(ctx context.Context, phase Phase) error {
	b.lock.Lock()
	listeners := append([]Listener(nil), b.listeners[phase]...)
	b.lock.Unlock()

	b.log.Trace("posting phase", "phase", phase.String(), "listeners", len(listeners))
	for _, listener := range listeners {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := listener(ctx); err != nil {
			return err
		}
	}

	return nil
}
