package worker

import (
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/oerror"
	"github.com/zeebo/xxh3"
)

// PanicHandler is called with the key of a job that panicked and the recovered value.
type PanicHandler func(key string, recovered any)

// Pool is a fixed set of workers. Jobs submitted with the same key always run on the same
// worker, in the order they were submitted.
type Pool struct {
	queues []chan job

	mu     sync.RWMutex
	closed bool

	pending sync.WaitGroup
	workers sync.WaitGroup

	onPanic PanicHandler
}

// queueSize is the amount of jobs a worker can have queued before Submit blocks.
const queueSize = 64

type job struct {
	key string
	f   func()
}

// NewPool starts a pool of n workers. If n is not positive, one worker per CPU is started.
func NewPool(n int, onPanic PanicHandler) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queues: make([]chan job, n), onPanic: onPanic}
	for i := range p.queues {
		p.queues[i] = make(chan job, queueSize)
		p.workers.Add(1)
		go p.work(p.queues[i])
	}
	return p
}

// Size returns the amount of workers in the pool.
func (p *Pool) Size() int {
	return len(p.queues)
}

// Shard returns the index of the worker jobs with the given key run on.
func (p *Pool) Shard(key string) int {
	return int(xxh3.HashString(key) % uint64(len(p.queues)))
}

// Submit queues f on the worker owning key. It blocks while that worker's queue is full, so
// a job must not submit to its own key: once the queue fills up it waits on itself until the
// pool is closed.
func (p *Pool) Submit(key string, f func()) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return oerror.New(game.ErrorPoolClosed)
	}
	p.pending.Add(1)
	queue := p.queues[p.Shard(key)]
	p.mu.RUnlock()

	return p.send(queue, job{key: key, f: f})
}

// send queues j. Close may close the queue while send is blocked on it, in which case the
// job is dropped.
func (p *Pool) send(queue chan<- job, j job) (err error) {
	defer func() {
		if recover() != nil {
			p.pending.Done()
			err = oerror.New(game.ErrorPoolClosed)
		}
	}()
	queue <- j
	return nil
}

// Wait blocks until every submitted job has finished.
func (p *Pool) Wait() {
	p.pending.Wait()
}

// Close waits for queued jobs to finish and stops the workers. Submitting to a closed pool
// returns an error, as do submissions blocked on a full queue while closing.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for _, q := range p.queues {
		close(q)
	}
	p.mu.Unlock()

	p.workers.Wait()
}

func (p *Pool) work(queue <-chan job) {
	defer p.workers.Done()
	for j := range queue {
		p.run(j)
	}
}

func (p *Pool) run(j job) {
	defer p.pending.Done()
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("job", j.key)
			})
			hub.Recover(oerror.New("job %s panicked: %v", j.key, err))
			hub.Flush(time.Second * 5)

			if p.onPanic != nil {
				p.onPanic(j.key, err)
			}
		}
	}()

	j.f()
}
