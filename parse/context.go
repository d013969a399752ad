package parse

import "sync"

// Context owns the shared parsing engine. Engine construction is
// expensive (grammar compilation, lexicon loading), so the engine is
// built once, on first use, and shared by every checker goroutine
// afterwards. All state transitions happen under an explicit lock; no
// package-level singleton is involved, and independent Contexts never
// share anything.
type Context struct {
	mu    sync.Mutex
	build func() (Engine, error)
	eng   Engine
	err   error
	done  bool
}

// NewContext returns a context that will construct its engine via
// build on the first call to Get.
func NewContext(build func() (Engine, error)) *Context {
	return &Context{build: build}
}

// Get returns the shared engine, constructing it on first call.
// Construction happens at most once between invalidations; a
// construction error is sticky and returned to every caller until
// Invalidate is called.
func (c *Context) Get() (Engine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.done {
		c.eng, c.err = c.build()
		c.done = true
	}
	return c.eng, c.err
}

// Invalidate discards the current engine (and any sticky construction
// error) so the next Get rebuilds it. Used after grammar or
// configuration changes.
func (c *Context) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng = nil
	c.err = nil
	c.done = false
}
