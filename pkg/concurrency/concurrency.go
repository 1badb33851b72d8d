package concurrency

import "sync"

// DefaultMax default max
const DefaultMax = 8

// GoLimit runs at most max goroutines at a time
type GoLimit struct {
	ch chan struct{}
	wg sync.WaitGroup
}

// NewGoLimit new go limit, max <= 0 means DefaultMax
func NewGoLimit(max int) *GoLimit {
	if max <= 0 {
		max = DefaultMax
	}

	return &GoLimit{
		ch: make(chan struct{}, max),
	}
}

// Go blocks until a slot is free, then runs fn in a new goroutine
func (g *GoLimit) Go(fn func()) {
	g.ch <- struct{}{}
	g.wg.Add(1)

	go func() {
		defer func() {
			<-g.ch
			g.wg.Done()
		}()

		fn()
	}()
}

// Wait waits for every started fn to return
func (g *GoLimit) Wait() {
	g.wg.Wait()
}
