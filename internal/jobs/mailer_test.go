package jobs

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu       sync.Mutex
	goals    []string
	welcomes []string
	fail     bool
}

func (r *recordingSender) SendGoalEmail(email, name, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("smtp down")
	}
	r.goals = append(r.goals, message)
	return nil
}

func (r *recordingSender) SendWelcomeEmail(email, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.welcomes = append(r.welcomes, email)
	return nil
}

func TestEmailDispatcher_DeliversAndDrainsOnClose(t *testing.T) {
	sender := &recordingSender{}
	dispatcher := NewEmailDispatcher(sender, 8)

	dispatcher.ScheduleGoalEmail("jane@example.com", "Jane", "You've reached your calorie goal for today!")
	dispatcher.ScheduleWelcomeEmail("jane@example.com", "Jane")

	// Close waits for the worker to finish the queue.
	dispatcher.Close()

	require.Len(t, sender.goals, 1)
	assert.Equal(t, "You've reached your calorie goal for today!", sender.goals[0])
	require.Len(t, sender.welcomes, 1)
	assert.Equal(t, "jane@example.com", sender.welcomes[0])
}

func TestEmailDispatcher_SendFailureDoesNotStopWorker(t *testing.T) {
	sender := &recordingSender{fail: true}
	dispatcher := NewEmailDispatcher(sender, 8)

	dispatcher.ScheduleGoalEmail("jane@example.com", "Jane", "message")
	dispatcher.ScheduleWelcomeEmail("jane@example.com", "Jane")
	dispatcher.Close()

	// The failed goal email is dropped; the welcome still goes out.
	assert.Empty(t, sender.goals)
	assert.Len(t, sender.welcomes, 1)
}

func TestEmailDispatcher_CloseIsIdempotent(t *testing.T) {
	dispatcher := NewEmailDispatcher(&recordingSender{}, 8)

	dispatcher.Close()
	dispatcher.Close()
}
