// Package jobs runs deferred, best-effort work outside the request path.
package jobs

import (
	"log/slog"
	"sync"
)

// EmailSender delivers one email synchronously. *service.EmailService
// satisfies it.
type EmailSender interface {
	SendGoalEmail(email, name, message string) error
	SendWelcomeEmail(email, name string) error
}

type emailKind int

const (
	emailGoal emailKind = iota
	emailWelcome
)

type emailJob struct {
	kind    emailKind
	email   string
	name    string
	message string
}

// EmailDispatcher drains a buffered queue with a single worker goroutine.
// Scheduling never blocks a request: when the buffer is full the job is
// dropped with a warning. Delivery is at-most-once with no retry; a
// failed send is logged and the triggering request never hears about it.
type EmailDispatcher struct {
	sender EmailSender
	queue  chan emailJob
	done   chan struct{}
	once   sync.Once
}

func NewEmailDispatcher(sender EmailSender, buffer int) *EmailDispatcher {
	if buffer <= 0 {
		buffer = 64
	}

	d := &EmailDispatcher{
		sender: sender,
		queue:  make(chan emailJob, buffer),
		done:   make(chan struct{}),
	}

	go d.run()

	return d
}

func (d *EmailDispatcher) run() {
	defer close(d.done)

	for job := range d.queue {
		var err error
		switch job.kind {
		case emailGoal:
			err = d.sender.SendGoalEmail(job.email, job.name, job.message)
		case emailWelcome:
			err = d.sender.SendWelcomeEmail(job.email, job.name)
		}
		if err != nil {
			slog.Warn("deferred email failed", "error", err, "to", job.email)
		}
	}
}

func (d *EmailDispatcher) enqueue(job emailJob) {
	select {
	case d.queue <- job:
	default:
		slog.Warn("email queue full, dropping job", "to", job.email)
	}
}

func (d *EmailDispatcher) ScheduleGoalEmail(email, name, message string) {
	d.enqueue(emailJob{kind: emailGoal, email: email, name: name, message: message})
}

func (d *EmailDispatcher) ScheduleWelcomeEmail(email, name string) {
	d.enqueue(emailJob{kind: emailWelcome, email: email, name: name})
}

// Close stops accepting jobs and waits for the worker to drain the queue.
func (d *EmailDispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}
