package graph

import (
	"sync/atomic"
	"time"
)

// FlashInterval is the toggle period of the active highlight
var FlashInterval = 200 * time.Millisecond

const flashToggles = 3

type flash struct {
	active     atomic.Bool
	toggles    atomic.Int32
	done       chan struct{}
	stopped    chan struct{}
	connectors []*Connector
}

func (f *flash) run(interval time.Duration) {
	defer close(f.stopped)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-f.done:
			f.clear()
			return
		case <-ticker.C:
			f.active.Store(!f.active.Load())
			if f.toggles.Add(1) >= flashToggles {
				f.clear()
				return
			}
		}
	}
}

func (f *flash) clear() {
	f.active.Store(false)
	for _, connector := range f.connectors {
		connector.SetActive(false)
	}
}

func (f *flash) running() bool {
	select {
	case <-f.stopped:
		return false
	default:
		return true
	}
}

// stop cancels the timer and waits until it no longer fires
func (f *flash) stop() {
	select {
	case <-f.done:
	default:
		close(f.done)
	}
	<-f.stopped
}

// MarkActive starts the active flash: the highlight toggles three times, then clears.
// Calling it while flashing restarts the toggle count.
func (b *Block) MarkActive() {
	if b.flash != nil && b.flash.running() {
		b.flash.toggles.Store(0)
		return
	}
	f := &flash{done: make(chan struct{}), stopped: make(chan struct{})}
	for _, port := range b.inputs {
		f.connectors = append(f.connectors, port.connectors...)
	}
	f.active.Store(true)
	b.flash = f
	go f.run(FlashInterval)
}

// MarkInactive stops the active flash and clears the incoming connectors' active flags
func (b *Block) MarkInactive() {
	if b.flash != nil {
		b.flash.stop()
		b.flash = nil
	}
	for _, port := range b.inputs {
		for _, connector := range port.connectors {
			connector.SetActive(false)
		}
	}
}

// IsFlashing returns true while the flash timer runs
func (b *Block) IsFlashing() bool {
	return b.flash != nil && b.flash.running()
}

// IsActive returns the current highlight state
func (b *Block) IsActive() bool {
	return b.flash != nil && b.flash.active.Load()
}

// Destroy releases block resources; the flash timer never fires afterwards
func (b *Block) Destroy() {
	b.MarkInactive()
}
