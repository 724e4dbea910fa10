// Package scheduler runs background maintenance work for the language
// server, such as include graph refreshes, without blocking request
// handling.
package scheduler

import (
	"log"
	"sync"
	"time"
)

type Task struct {
	Name    string
	Execute func() error
}

type Scheduler struct {
	taskQueue       chan Task
	lowPriorityLock sync.Mutex
	stopChan        chan struct{}
	stopped         bool
	wg              sync.WaitGroup
}

// NewScheduler creates a new Scheduler with the specified queue size
func NewScheduler(queueSize int) *Scheduler {
	return &Scheduler{
		taskQueue: make(chan Task, queueSize),
		stopChan:  make(chan struct{}),
	}
}

// Run starts the scheduler loop
func (s *Scheduler) Run() {
	go func() {
		for {
			select {
			case task, ok := <-s.taskQueue:
				if !ok {
					return
				}
				s.runTask(task)
			case <-s.stopChan:
				// Drain the queue before exiting
				for task := range s.taskQueue {
					s.runTask(task)
				}
				return
			}
		}
	}()
}

func (s *Scheduler) runTask(task Task) {
	defer s.wg.Done()
	if err := task.Execute(); err != nil {
		log.Printf("task %s failed: %v", task.Name, err)
	}
}

// RunPeriodic schedules lowTask on an interval, skipping a tick when the
// queue is full. It blocks until the scheduler is stopped.
func (s *Scheduler) RunPeriodic(interval time.Duration, lowTask Task) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run the task once on startup
	s.Schedule(lowTask)

	for {
		select {
		case <-ticker.C:
			s.lowPriorityLock.Lock()
			if s.stopped {
				s.lowPriorityLock.Unlock()
				return
			}
			// Add before the send so the worker's Done can never
			// observe a zero counter.
			s.wg.Add(1)
			select {
			case s.taskQueue <- lowTask:
			default:
				s.wg.Done()
				log.Printf("skipped scheduling %s, queue full", lowTask.Name)
			}
			s.lowPriorityLock.Unlock()
		case <-s.stopChan:
			return
		}
	}
}

// Schedule enqueues a task to run as soon as possible
func (s *Scheduler) Schedule(task Task) {
	s.wg.Add(1)
	s.taskQueue <- task
}

// Stop waits for all queued tasks to complete and stops the scheduler
func (s *Scheduler) Stop() {
	s.lowPriorityLock.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.stopChan)
		close(s.taskQueue)
	}
	s.lowPriorityLock.Unlock()
	s.wg.Wait()
}
