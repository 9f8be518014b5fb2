// Package convo is the placeholder server's in-memory conversation
// history. It holds at most maxConversations conversations and evicts
// the first-inserted one when full.
package convo

import (
	"sync"
	"time"

	"github.com/amal-dz/amal/internal/common"
)

type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type Store struct {
	mu        sync.Mutex
	max       int
	order     []string
	histories map[string][]Message
}

func New(maxConversations int) *Store {
	if maxConversations <= 0 {
		maxConversations = 100
	}
	return &Store{
		max:       maxConversations,
		histories: make(map[string][]Message),
	}
}

// NewID returns a fresh conversation id.
func NewID() (string, error) {
	id, err := common.NewULID()
	if err != nil {
		return "", err
	}
	return "conv_" + id, nil
}

// Append adds msg to the conversation, creating it if needed, and
// returns the history length after the append. Creating a conversation
// past capacity evicts the oldest-inserted one still present.
func (s *Store) Append(conversationID string, msg Message) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.histories[conversationID]; !ok {
		s.histories[conversationID] = nil
		s.order = append(s.order, conversationID)
		if len(s.order) > s.max {
			evicted := s.order[0]
			s.order = s.order[1:]
			delete(s.histories, evicted)
		}
	}

	s.histories[conversationID] = append(s.histories[conversationID], msg)
	return len(s.histories[conversationID])
}

// History returns a copy of the conversation, or false if it is
// unknown (never created, or evicted).
func (s *Store) History(conversationID string) ([]Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.histories[conversationID]
	if !ok {
		return nil, false
	}
	return append([]Message(nil), h...), true
}

// Len reports the number of live conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.histories)
}
