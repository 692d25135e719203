// Package deferred 提供可取消的延遲任務，用於發佈後延遲導頁。
package deferred

import (
	"sync"
	"time"
)

// Task 一個延遲執行一次的函式
type Task struct {
	timer *time.Timer
	done  chan struct{}

	mu       sync.Mutex
	finished bool
	fired    bool
}

// Schedule 在 delay 之後於獨立 goroutine 執行 fn；fn 最多執行一次
func Schedule(delay time.Duration, fn func()) *Task {
	t := &Task{done: make(chan struct{})}
	t.timer = time.AfterFunc(delay, func() {
		if !t.finish(true) {
			return
		}
		fn()
	})
	return t
}

// Cancel 取消尚未執行的任務；任務已執行或已取消時回傳 false
func (t *Task) Cancel() bool {
	if !t.finish(false) {
		return false
	}
	t.timer.Stop()
	return true
}

// Pending 任務仍在等待中
func (t *Task) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.finished
}

// Fired 任務是否已執行
func (t *Task) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// Done 任務執行或取消後關閉
func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) finish(fired bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		return false
	}
	t.finished = true
	t.fired = fired
	close(t.done)
	return true
}
