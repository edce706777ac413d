package store

import (
	"context"
	"sort"

	"github.com/alumniconnect/portal-api/internal/models"
)

// CreateMessage assigns the next message id and stores the record.
func (s *Store) CreateMessage(_ context.Context, message models.Message) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	message.ID = s.nextID(kindMessage)
	if message.SentAt.IsZero() {
		message.SentAt = s.now()
	}
	message.IsRead = false
	s.messages[message.ID] = message

	return message
}

// GetMessage returns the message with the given id or ErrNotFound.
func (s *Store) GetMessage(_ context.Context, id int) (models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message, ok := s.messages[id]
	if !ok {
		return models.Message{}, ErrNotFound
	}
	return message, nil
}

// GetConversation returns every message exchanged between the two users in
// either direction, sorted ascending by send time with ids breaking ties, so
// the result is identical regardless of argument order.
func (s *Store) GetConversation(_ context.Context, userA, userB int) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conversation := make([]models.Message, 0)
	for _, message := range s.messages {
		betweenPair := (message.SenderID == userA && message.ReceiverID == userB) ||
			(message.SenderID == userB && message.ReceiverID == userA)
		if betweenPair {
			conversation = append(conversation, message)
		}
	}
	sort.Slice(conversation, func(i, j int) bool {
		if conversation[i].SentAt.Equal(conversation[j].SentAt) {
			return conversation[i].ID < conversation[j].ID
		}
		return conversation[i].SentAt.Before(conversation[j].SentAt)
	})

	return conversation
}

// GetMessagesByUser returns the union of messages sent and received by the
// user, ordered by id.
func (s *Store) GetMessagesByUser(_ context.Context, userID int) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]models.Message, 0)
	for _, message := range s.messages {
		if message.SenderID == userID || message.ReceiverID == userID {
			messages = append(messages, message)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })

	return messages
}

// MarkMessageAsRead flips the message's read flag.
func (s *Store) MarkMessageAsRead(_ context.Context, id int) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.messages[id]
	if !ok {
		return models.Message{}, ErrNotFound
	}

	message.IsRead = true
	s.messages[id] = message

	return message, nil
}

// DeleteMessage removes the message and reports whether it existed.
func (s *Store) DeleteMessage(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[id]; !ok {
		return false
	}
	delete(s.messages, id)

	return true
}
