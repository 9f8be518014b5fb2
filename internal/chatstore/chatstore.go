// Package chatstore owns the conversation threads of the chat UI: an
// ordered, most-recent-first list of named sessions plus an ephemeral
// "temporary" buffer that never touches the named list.
package chatstore

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is immutable once stored. ID and Timestamp are stamped by
// the store at append time.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`
	Intent    string    `json:"intent,omitempty"`
	Source    string    `json:"source,omitempty"`
	// IsError marks locally substituted fallback replies shown when
	// the backend was unreachable.
	IsError bool `json:"is_error,omitempty"`
}

type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultTitle is the title of a session before its first user
// message names it.
const DefaultTitle = "New conversation"

const (
	titleMaxRunes = 30
	titleEllipsis = "..."
)

var ErrSessionNotFound = errors.New("chatstore: session not found")

// Store manages the session list. All methods are safe for concurrent
// use; subscriber callbacks run outside the lock, after the mutation
// is committed.
//
// While temporary mode is on, callers are expected to route messages
// through AddTemporaryMessage; the store does not police that.
type Store struct {
	mu            sync.Mutex
	sessions      []*Session
	currentID     string
	temporaryMode bool
	temporary     []Message
	nextSubID     int
	subs          map[int]func()
}

// New returns a store holding one fresh empty session, so the named
// list is never empty outside temporary mode.
func New() *Store {
	s := &Store{subs: make(map[int]func())}
	s.sessions = []*Session{newSession()}
	s.currentID = s.sessions[0].ID
	return s
}

func newSession() *Session {
	now := time.Now()
	return &Session{
		ID:        ulid.Make().String(),
		Title:     DefaultTitle,
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateSession prepends a new empty session, makes it current, and
// leaves temporary mode if it was active. The id is returned so the
// caller can append messages immediately.
func (s *Store) CreateSession() string {
	s.mu.Lock()
	sess := newSession()
	s.sessions = append([]*Session{sess}, s.sessions...)
	s.currentID = sess.ID
	s.temporaryMode = false
	s.temporary = nil
	s.mu.Unlock()

	s.notify()
	return sess.ID
}

// AddMessage stamps partial with an id and timestamp and appends it to
// the named session. The first user message of a session also derives
// the session title; later messages never touch it.
func (s *Store) AddMessage(sessionID string, partial Message) (Message, error) {
	msg := stamp(partial)

	s.mu.Lock()
	sess := s.find(sessionID)
	if sess == nil {
		s.mu.Unlock()
		return Message{}, ErrSessionNotFound
	}

	if len(sess.Messages) == 0 && msg.Role == RoleUser {
		sess.Title = deriveTitle(msg.Content)
	}
	sess.Messages = append(sess.Messages, msg)
	sess.UpdatedAt = msg.Timestamp
	if !sess.UpdatedAt.After(sess.CreatedAt) {
		// Clock granularity can make the stamp equal CreatedAt; keep
		// UpdatedAt strictly increasing past it.
		sess.UpdatedAt = sess.CreatedAt.Add(time.Nanosecond)
	}
	s.mu.Unlock()

	s.notify()
	return msg, nil
}

// SetCurrentSession switches the active session and leaves temporary
// mode. An empty id clears the selection.
func (s *Store) SetCurrentSession(sessionID string) error {
	s.mu.Lock()
	if sessionID != "" && s.find(sessionID) == nil {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	s.currentID = sessionID
	s.temporaryMode = false
	s.temporary = nil
	s.mu.Unlock()

	s.notify()
	return nil
}

// DeleteSession removes the session. If it was current, the new head
// of the list becomes current. Deleting the last session outside
// temporary mode immediately creates a fresh empty replacement.
func (s *Store) DeleteSession(sessionID string) error {
	s.mu.Lock()
	idx := -1
	for i, sess := range s.sessions {
		if sess.ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrSessionNotFound
	}

	s.sessions = append(s.sessions[:idx:idx], s.sessions[idx+1:]...)

	if len(s.sessions) == 0 && !s.temporaryMode {
		fresh := newSession()
		s.sessions = []*Session{fresh}
		s.currentID = fresh.ID
	} else if s.currentID == sessionID {
		if len(s.sessions) > 0 {
			s.currentID = s.sessions[0].ID
		} else {
			s.currentID = ""
		}
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// RenameSession sets an explicit title; title derivation never
// overwrites an explicit rename because derivation only fires on the
// first message.
func (s *Store) RenameSession(sessionID, title string) error {
	s.mu.Lock()
	sess := s.find(sessionID)
	if sess == nil {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	sess.Title = title
	s.mu.Unlock()

	s.notify()
	return nil
}

// SetTemporaryMode toggles the ephemeral conversation buffer. Entering
// clears any previous buffer and the current-session selection;
// leaving discards the buffer unconditionally. Named sessions are
// never touched either way.
func (s *Store) SetTemporaryMode(enabled bool) {
	s.mu.Lock()
	if enabled {
		s.temporaryMode = true
		s.temporary = nil
		s.currentID = ""
	} else {
		s.temporaryMode = false
		s.temporary = nil
		if len(s.sessions) == 0 {
			fresh := newSession()
			s.sessions = []*Session{fresh}
			s.currentID = fresh.ID
		}
	}
	s.mu.Unlock()

	s.notify()
}

// AddTemporaryMessage stamps and appends to the temporary buffer.
func (s *Store) AddTemporaryMessage(partial Message) Message {
	msg := stamp(partial)

	s.mu.Lock()
	s.temporary = append(s.temporary, msg)
	s.mu.Unlock()

	s.notify()
	return msg
}

func (s *Store) ClearTemporaryMessages() {
	s.mu.Lock()
	s.temporary = nil
	s.mu.Unlock()

	s.notify()
}

// Sessions returns a deep copy of the session list, newest first.
func (s *Store) Sessions() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, copySession(sess))
	}
	return out
}

// Session returns a copy of one session by id.
func (s *Store) Session(sessionID string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.find(sessionID)
	if sess == nil {
		return Session{}, false
	}
	return copySession(sess), true
}

// CurrentSession returns a copy of the active session, if any.
func (s *Store) CurrentSession() (Session, bool) {
	s.mu.Lock()
	id := s.currentID
	s.mu.Unlock()
	if id == "" {
		return Session{}, false
	}
	return s.Session(id)
}

func (s *Store) CurrentSessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

func (s *Store) TemporaryMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.temporaryMode
}

// TemporaryMessages returns a copy of the ephemeral buffer.
func (s *Store) TemporaryMessages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.temporary...)
}

// Subscribe registers fn to run after every mutation and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (s *Store) find(sessionID string) *Session {
	for _, sess := range s.sessions {
		if sess.ID == sessionID {
			return sess
		}
	}
	return nil
}

func stamp(partial Message) Message {
	partial.ID = uuid.NewString()
	partial.Timestamp = time.Now()
	return partial
}

func deriveTitle(content string) string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) == 0 {
		return DefaultTitle
	}
	if len(runes) <= titleMaxRunes {
		return string(runes)
	}
	return string(runes[:titleMaxRunes]) + titleEllipsis
}

func copySession(sess *Session) Session {
	out := *sess
	out.Messages = append([]Message(nil), sess.Messages...)
	return out
}
