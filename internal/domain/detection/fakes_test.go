package detection

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/oshokin/home-hub/internal/device"
)

// trace records device interactions in order.
type trace struct {
	mu     sync.Mutex
	events []string
}

func (t *trace) add(event string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.events = append(t.events, event)
}

func (t *trace) list() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.events)
}

func (t *trace) count(event string) int {
	n := 0

	for _, e := range t.list() {
		if e == event {
			n++
		}
	}

	return n
}

// recordingAlarm is an idempotent alarm that records effective transitions.
type recordingAlarm struct {
	trace *trace
	// onRing runs after the alarm starts sounding.
	onRing func()

	mu        sync.Mutex
	ringing   bool
	stopCalls int
}

func (a *recordingAlarm) Ring() {
	a.mu.Lock()
	started := !a.ringing
	a.ringing = true
	a.mu.Unlock()

	if started {
		a.trace.add("ring")
	}

	if a.onRing != nil {
		a.onRing()
	}
}

func (a *recordingAlarm) Stop() {
	a.mu.Lock()
	stopped := a.ringing
	a.ringing = false
	a.stopCalls++
	a.mu.Unlock()

	if stopped {
		a.trace.add("stop")
	}
}

func (a *recordingAlarm) calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.stopCalls
}

// recordingLight wraps a simulated light and records every blink.
type recordingLight struct {
	*device.SmartLight

	id    int
	trace *trace
	// onBlink runs after every blink.
	onBlink func()
}

func (l *recordingLight) BlinkLight() {
	l.SmartLight.BlinkLight()
	l.trace.add(fmt.Sprintf("blink-%d", l.id))

	if l.onBlink != nil {
		l.onBlink()
	}
}

// newLights creates n recording lights sharing one trace.
func newLights(tr *trace, n int) ([]*recordingLight, *device.LightGroup) {
	lights := make([]*recordingLight, 0, n)
	group := device.NewLightGroup()

	for i := 1; i <= n; i++ {
		l := &recordingLight{
			SmartLight: device.NewPhilipsHueLight(zap.NewNop().Sugar()),
			id:         i,
			trace:      tr,
		}
		lights = append(lights, l)
		group.Add(l)
	}

	return lights, group
}

// recordingLine records emergency calls.
type recordingLine struct {
	trace *trace
}

func (l recordingLine) Call(_ context.Context, service device.Service) {
	l.trace.add("call:" + string(service))
}

// hookObserver runs callbacks around steps.
type hookObserver struct {
	onStart func(step string)

	mu       sync.Mutex
	started  []string
	finished []string
}

func (o *hookObserver) StepStarted(_ context.Context, step string) {
	o.mu.Lock()
	o.started = append(o.started, step)
	o.mu.Unlock()

	if o.onStart != nil {
		o.onStart(step)
	}
}

func (o *hookObserver) StepFinished(_ context.Context, step string, proceed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.finished = append(o.finished, fmt.Sprintf("%s:%t", step, proceed))
}
