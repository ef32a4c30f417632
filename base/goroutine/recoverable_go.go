package goroutine

import (
	"runtime/debug"
	"sync"

	"github.com/x-xyz/gallery/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(p interface{}, stack []byte)
}

type Option func(*options)

func WithBeforeStart(f func()) Option {
	return func(o *options) {
		o.beforeStart = f
	}
}

// WithAfterEnded runs f once the task returned or panicked, before recovery hooks
func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(p interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f on a new goroutine. A panic is logged and delivered on
// the returned channel, a normal return closes it.
func RecoverableGo(f func(), fns ...Option) <-chan *PanicEvent {
	opts := options{}
	for _, fn := range fns {
		fn(&opts)
	}

	panicChan := make(chan *PanicEvent, 1)
	go func() {
		defer func() {
			if opts.afterEnded != nil {
				opts.afterEnded()
			}

			p := recover()
			if p == nil {
				close(panicChan)
				return
			}
			stack := debug.Stack()
			log.Log().WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("panic")
			if opts.afterRecovered != nil {
				opts.afterRecovered(p, stack)
			}
			panicChan <- &PanicEvent{p, stack}
		}()

		if opts.beforeStart != nil {
			opts.beforeStart()
		}
		f()
	}()

	return panicChan
}

// Fan runs each task on its own recoverable goroutine and waits for all of
// them. The result holds the recovered panic of each task by position, nil
// when the task returned.
func Fan(tasks ...func()) []*PanicEvent {
	res := make([]*PanicEvent, len(tasks))
	wg := sync.WaitGroup{}
	wg.Add(len(tasks))
	for i, task := range tasks {
		i := i
		ch := RecoverableGo(task)
		go func() {
			defer wg.Done()
			res[i] = <-ch
		}()
	}
	wg.Wait()
	return res
}
