package session

import (
	"time"

	sess "github.com/abhisek/stave/internal/session"
)

// timerTickMsg is sent every second to update the clock and poll the tutor.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the learner dismisses the feedback view.
type feedbackDoneMsg struct{}

// sessionInitMsg is sent when plan building is complete.
type sessionInitMsg struct {
	State *sess.SessionState
	Err   error
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}

// bankedMsg reports the outcome of saving a question to the bank.
type bankedMsg struct {
	ID  string
	Err error
}
