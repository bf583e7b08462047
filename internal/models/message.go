package models

import "time"

// Sender labels a turn in the transcript
type Sender string

const (
	SenderYou Sender = "You"
	SenderBot Sender = "Bot"
)

// Style is the presentation class of a turn
type Style string

const (
	StyleUser    Style = "text-blue-600"
	StyleError   Style = "text-red-500"
	StyleDefault Style = "text-gray-700"
)

// Turn is one rendered message attributed to You or Bot
type Turn struct {
	Sender  Sender
	Body    string
	IsError bool
	Time    time.Time
}

// NewTurn creates a turn stamped with the current time
func NewTurn(sender Sender, body string, isError bool) Turn {
	return Turn{
		Sender:  sender,
		Body:    body,
		IsError: isError,
		Time:    time.Now(),
	}
}

// StyleFor picks the presentation class for a sender and error flag.
// You always gets the user class, whatever the flag says.
func StyleFor(sender Sender, isError bool) Style {
	switch {
	case sender == SenderYou:
		return StyleUser
	case isError:
		return StyleError
	default:
		return StyleDefault
	}
}

// Style returns the presentation class of the turn
func (t Turn) Style() Style {
	return StyleFor(t.Sender, t.IsError)
}

// String renders the turn as "Sender: body"
func (t Turn) String() string {
	return string(t.Sender) + ": " + t.Body
}
