package app

import (
	"sort"
	"time"
)

// Scheduler runs engine steps after a delay. Implementations must run tasks
// on the goroutine that owns the engine.
type Scheduler interface {
	Schedule(delay time.Duration, task func())
}

type scheduledTask struct {
	due  time.Duration
	seq  int
	task func()
}

// QueueScheduler is a manual clock. Hosts advance it from their own loop
// (match ticks, a session ticker); tests and the simulator drain it.
type QueueScheduler struct {
	now   time.Duration
	seq   int
	tasks []scheduledTask
}

// NewQueueScheduler returns an empty queue at time zero.
func NewQueueScheduler() *QueueScheduler {
	return &QueueScheduler{}
}

// Schedule queues task to run delay after the current clock.
func (q *QueueScheduler) Schedule(delay time.Duration, task func()) {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	q.tasks = append(q.tasks, scheduledTask{due: q.now + delay, seq: q.seq, task: task})
	sort.SliceStable(q.tasks, func(i, j int) bool {
		if q.tasks[i].due != q.tasks[j].due {
			return q.tasks[i].due < q.tasks[j].due
		}
		return q.tasks[i].seq < q.tasks[j].seq
	})
}

// Advance moves the clock to now, running every task due by then in order.
// Tasks queued while running are honoured if they fall due in the window.
// It returns the number of tasks run.
func (q *QueueScheduler) Advance(now time.Duration) int {
	ran := 0
	for len(q.tasks) > 0 && q.tasks[0].due <= now {
		next := q.pop()
		if next.due > q.now {
			q.now = next.due
		}
		next.task()
		ran++
	}
	if now > q.now {
		q.now = now
	}
	return ran
}

// Drain runs every queued task, jumping the clock forward as needed.
func (q *QueueScheduler) Drain() int {
	ran := 0
	for len(q.tasks) > 0 {
		next := q.pop()
		if next.due > q.now {
			q.now = next.due
		}
		next.task()
		ran++
	}
	return ran
}

// Step runs only the earliest task. It reports false when the queue is empty.
func (q *QueueScheduler) Step() bool {
	if len(q.tasks) == 0 {
		return false
	}
	next := q.pop()
	if next.due > q.now {
		q.now = next.due
	}
	next.task()
	return true
}

// Pending returns the number of queued tasks.
func (q *QueueScheduler) Pending() int {
	return len(q.tasks)
}

// Now returns the scheduler clock.
func (q *QueueScheduler) Now() time.Duration {
	return q.now
}

func (q *QueueScheduler) pop() scheduledTask {
	next := q.tasks[0]
	q.tasks = q.tasks[1:]
	return next
}
