package gpio

// FakeFlexLine is a test double that records electrical transitions.
type FakeFlexLine struct {
	// Ops records every transition in order: "float", "high", "low".
	Ops []string
}

// Float records a transition to input mode.
func (f *FakeFlexLine) Float() { f.Ops = append(f.Ops, "float") }

// DriveHigh records a transition to output high.
func (f *FakeFlexLine) DriveHigh() { f.Ops = append(f.Ops, "high") }

// DriveLow records a transition to output low.
func (f *FakeFlexLine) DriveLow() { f.Ops = append(f.Ops, "low") }

// Last returns the most recent transition, or "" if none occurred.
func (f *FakeFlexLine) Last() string {
	if len(f.Ops) == 0 {
		return ""
	}
	return f.Ops[len(f.Ops)-1]
}

// FakeEdgeWaiter simulates latched falling edges without blocking. Edges
// counts edges the hardware has latched but the caller has not consumed;
// tests model a bouncing contact by adding to Edges from inside an
// injected sleep, placing the bounce within the debounce window.
type FakeEdgeWaiter struct {
	// Edges is the number of latched, unconsumed falling edges.
	Edges int

	// Waits counts calls to WaitForFallingEdge.
	Waits int

	// Flushed counts edges discarded by Flush.
	Flushed int
}

// WaitForFallingEdge consumes one latched edge if present. With no edge
// latched it returns immediately, standing in for an edge arriving while
// blocked; tests needing true blocking use LatchingEdgeWaiter.
func (f *FakeEdgeWaiter) WaitForFallingEdge() {
	f.Waits++
	if f.Edges > 0 {
		f.Edges--
	}
}

// Flush discards all latched edges.
func (f *FakeEdgeWaiter) Flush() {
	f.Flushed += f.Edges
	f.Edges = 0
}

// LatchingEdgeWaiter mirrors the real line's kernel latch: edges queue in
// a buffered channel and WaitForFallingEdge blocks until one arrives.
type LatchingEdgeWaiter struct {
	edges chan struct{}
}

// NewLatchingEdgeWaiter returns an empty latch.
func NewLatchingEdgeWaiter() *LatchingEdgeWaiter {
	return &LatchingEdgeWaiter{edges: make(chan struct{}, 16)}
}

// Press latches one falling edge, whether or not anyone is waiting.
func (l *LatchingEdgeWaiter) Press() {
	select {
	case l.edges <- struct{}{}:
	default:
	}
}

// WaitForFallingEdge blocks until an edge is latched.
func (l *LatchingEdgeWaiter) WaitForFallingEdge() {
	<-l.edges
}

// Flush discards all latched edges.
func (l *LatchingEdgeWaiter) Flush() {
	for {
		select {
		case <-l.edges:
		default:
			return
		}
	}
}

// FakeOutputLine records every level written to an output.
type FakeOutputLine struct {
	// Level is the current level.
	Level bool

	// Sets records every call to Set in order.
	Sets []bool
}

// Set records and applies the level.
func (f *FakeOutputLine) Set(on bool) {
	f.Level = on
	f.Sets = append(f.Sets, on)
}

// Pulses returns the number of completed on/off pulses recorded.
func (f *FakeOutputLine) Pulses() int {
	n := 0
	on := false
	for _, s := range f.Sets {
		if on && !s {
			n++
		}
		on = s
	}
	return n
}
