package syncs

import "context"

type Semaphore chan bool

func NewSemaphore(n int) Semaphore {
	return make(chan bool, n)
}

func (s Semaphore) Acquire() {
	s <- true
}

// AcquireContext waits for a slot or for ctx to be done.
func (s Semaphore) AcquireContext(ctx context.Context) error {
	select {
	case s <- true:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}
