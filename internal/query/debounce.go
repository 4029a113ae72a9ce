package query

import (
	"sync"
	"time"
)

// DefaultDebounce is how long search text must stay unchanged before it is
// applied.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer coalesces bursts of search text. Only the last value of a burst
// reaches apply, once no new value has arrived for the interval. Values are
// never reordered, and a pending value is flushed by Stop.
type Debouncer struct {
	interval time.Duration
	apply    func(string)
	input    chan string
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewDebouncer creates a Debouncer. Call Start before Submit.
func NewDebouncer(interval time.Duration, apply func(string)) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Debouncer{
		interval: interval,
		apply:    apply,
		input:    make(chan string, 64),
	}
}

// Start runs the coalescing loop in its own goroutine.
func (d *Debouncer) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run()
	}()
}

// Submit records a new search value. It must not be called after Stop.
func (d *Debouncer) Submit(v string) {
	d.input <- v
}

// Stop flushes any pending value and waits for the loop to exit.
func (d *Debouncer) Stop() {
	d.stopOnce.Do(func() {
		close(d.input)
		d.wg.Wait()
	})
}

func (d *Debouncer) run() {
	var (
		pending string
		waiting bool
		timer   *time.Timer
		fire    <-chan time.Time
	)

	for {
		select {
		case v, ok := <-d.input:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				if waiting {
					d.apply(pending)
				}
				return
			}
			pending, waiting = v, true
			if timer == nil {
				timer = time.NewTimer(d.interval)
			} else {
				timer.Reset(d.interval)
			}
			fire = timer.C
		case <-fire:
			d.apply(pending)
			waiting = false
			fire = nil
		}
	}
}
