package dashboard

import (
	"sync"
	"time"
)

type MessageKind string

const (
	MessageError   MessageKind = "error-message"
	MessageSuccess MessageKind = "success-message"
)

type Message struct {
	ID   uint64
	Kind MessageKind
	Text string
}

type MessageView interface {
	ShowMessage(message Message)
	ClearMessages()
}

// MessageBoard shows one banner at a time and dismisses it after its TTL.
type MessageBoard struct {
	view       MessageView
	clock      Clock
	errorTTL   time.Duration
	successTTL time.Duration

	mu      sync.Mutex
	current *Message
	timer   Timer
	lastID  uint64
}

func NewMessageBoard(view MessageView, clock Clock, errorTTL time.Duration, successTTL time.Duration) *MessageBoard {
	return &MessageBoard{
		view:       view,
		clock:      clock,
		errorTTL:   errorTTL,
		successTTL: successTTL,
	}
}

func (mb *MessageBoard) ShowError(text string) {
	mb.show(MessageError, text, mb.errorTTL)
}

func (mb *MessageBoard) ShowSuccess(text string) {
	mb.show(MessageSuccess, text, mb.successTTL)
}

func (mb *MessageBoard) Clear() {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.clearLocked()
}

// Current returns the banner on screen.
func (mb *MessageBoard) Current() (Message, bool) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.current == nil {
		return Message{}, false
	}
	return *mb.current, true
}

func (mb *MessageBoard) show(kind MessageKind, text string, ttl time.Duration) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	mb.clearLocked()
	mb.lastID++
	message := Message{ID: mb.lastID, Kind: kind, Text: text}
	mb.current = &message
	mb.view.ShowMessage(message)
	mb.timer = mb.clock.AfterFunc(ttl, func() {
		mb.dismiss(message.ID)
	})
}

// dismiss only removes the banner it was scheduled for.
func (mb *MessageBoard) dismiss(id uint64) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if mb.current == nil || mb.current.ID != id {
		return
	}
	mb.timer = nil
	mb.current = nil
	mb.view.ClearMessages()
}

func (mb *MessageBoard) clearLocked() {
	if mb.timer != nil {
		mb.timer.Stop()
		mb.timer = nil
	}
	mb.current = nil
	mb.view.ClearMessages()
}
