package codeinput

// Handle is the imperative capability a host uses to drive an input without
// synthesizing key events. Handle calls never fire OnChange or OnComplete and
// work while the input is disabled.
type Handle interface {
	Value() string
	SetValue(v string)
	Clear()
	Focus()
}

var (
	_ Handle = (*CellEngine)(nil)
	_ Handle = (*MaskEngine)(nil)
)

// Scheduler runs work after the host has committed the next frame
type Scheduler interface {
	AfterRender(fn func())
}

// SchedulerFunc adapts a function to Scheduler
type SchedulerFunc func(fn func())

// AfterRender calls f(fn)
func (f SchedulerFunc) AfterRender(fn func()) {
	f(fn)
}

// Immediate runs callbacks synchronously, for headless use where no frame exists
var Immediate Scheduler = SchedulerFunc(func(fn func()) { fn() })

// Deferred queues callbacks until the host calls Flush after drawing.
// Not safe for concurrent use; engines and hosts share one UI goroutine.
type Deferred struct {
	queue []func()
}

// AfterRender queues fn for the next Flush
func (d *Deferred) AfterRender(fn func()) {
	if fn != nil {
		d.queue = append(d.queue, fn)
	}
}

// Pending returns the number of queued callbacks
func (d *Deferred) Pending() int {
	return len(d.queue)
}

// Flush runs queued callbacks in order and returns how many ran.
// Callbacks queued while flushing wait for the following Flush.
func (d *Deferred) Flush() int {
	q := d.queue
	d.queue = nil
	for _, fn := range q {
		fn()
	}
	return len(q)
}

// options collects engine wiring shared by both engines
type options struct {
	onChange   func(string)
	onComplete func(string)
	onFocus    func(int)
	scheduler  Scheduler
}

// Option configures an engine at construction
type Option func(*options)

// WithOnChange registers fn for every committed mutation
func WithOnChange(fn func(value string)) Option {
	return func(o *options) { o.onChange = fn }
}

// WithOnComplete registers fn for each transition into StateComplete
func WithOnComplete(fn func(value string)) Option {
	return func(o *options) { o.onComplete = fn }
}

// WithFocusHook registers fn invoked whenever the engine moves UI focus.
// Cell engines pass the target cell, mask engines pass 0.
func WithFocusHook(fn func(index int)) Option {
	return func(o *options) { o.onFocus = fn }
}

// WithScheduler sets where post-render work is queued, default Immediate
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

func buildOptions(opts []Option) options {
	o := options{scheduler: Immediate}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = Immediate
	}
	return o
}

func (o *options) change(v string) {
	if o.onChange != nil {
		o.onChange(v)
	}
}

func (o *options) complete(v string) {
	if o.onComplete != nil {
		o.onComplete(v)
	}
}

func (o *options) focus(i int) {
	if o.onFocus != nil {
		o.onFocus(i)
	}
}
