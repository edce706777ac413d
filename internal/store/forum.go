package store

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// DiscussionUpdate is a shallow partial of a discussion record.
type DiscussionUpdate struct {
	Title    *string
	Content  *string
	IsLocked *bool
}

// CreateDiscussion stores the discussion, seeds its participant list with the
// creator and inserts the creator's participant row.
func (s *Store) CreateDiscussion(_ context.Context, discussion models.Discussion) models.Discussion {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	discussion.ID = s.nextID(kindDiscussion)
	if discussion.CreatedAt.IsZero() {
		discussion.CreatedAt = now
	}
	discussion.LastActivityAt = discussion.CreatedAt
	discussion.ParticipantIDs = []string{strconv.Itoa(discussion.CreatedBy)}
	s.discussions[discussion.ID] = discussion

	s.upsertParticipant(discussion.ID, discussion.CreatedBy, discussion.CreatedAt)

	return cloneDiscussion(discussion)
}

// GetDiscussion returns the discussion with the given id or ErrNotFound.
func (s *Store) GetDiscussion(_ context.Context, id int) (models.Discussion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	discussion, ok := s.discussions[id]
	if !ok {
		return models.Discussion{}, ErrNotFound
	}
	return cloneDiscussion(discussion), nil
}

// ListDiscussions returns every discussion ordered by last activity descending.
func (s *Store) ListDiscussions(_ context.Context) []models.Discussion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	discussions := make([]models.Discussion, 0, len(s.discussions))
	for _, discussion := range s.discussions {
		discussions = append(discussions, cloneDiscussion(discussion))
	}
	sort.Slice(discussions, func(i, j int) bool {
		if discussions[i].LastActivityAt.Equal(discussions[j].LastActivityAt) {
			return discussions[i].ID > discussions[j].ID
		}
		return discussions[i].LastActivityAt.After(discussions[j].LastActivityAt)
	})

	return discussions
}

// UpdateDiscussion shallow-merges the partial into the stored record.
func (s *Store) UpdateDiscussion(_ context.Context, id int, partial DiscussionUpdate) (models.Discussion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	discussion, ok := s.discussions[id]
	if !ok {
		return models.Discussion{}, ErrNotFound
	}

	if partial.Title != nil {
		discussion.Title = *partial.Title
	}
	if partial.Content != nil {
		discussion.Content = *partial.Content
	}
	if partial.IsLocked != nil {
		discussion.IsLocked = *partial.IsLocked
	}

	s.discussions[id] = discussion

	return cloneDiscussion(discussion), nil
}

// DeleteDiscussion removes the discussion and reports whether it existed.
// Replies, participants and read receipts are the caller's cleanup to sequence.
func (s *Store) DeleteDiscussion(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.discussions[id]; !ok {
		return false
	}
	delete(s.discussions, id)

	return true
}

// ListDiscussionParticipants returns the participant rows of a discussion
// ordered by join time.
func (s *Store) ListDiscussionParticipants(_ context.Context, discussionID int) []models.DiscussionParticipant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	participants := make([]models.DiscussionParticipant, 0)
	for _, participant := range s.participants {
		if participant.DiscussionID == discussionID {
			participants = append(participants, participant)
		}
	}
	sort.Slice(participants, func(i, j int) bool { return participants[i].ID < participants[j].ID })

	return participants
}

// upsertParticipant refreshes the LastSeenAt of an existing (discussion, user)
// row or inserts a new one. Caller must hold the write lock.
func (s *Store) upsertParticipant(discussionID, userID int, seenAt time.Time) models.DiscussionParticipant {
	for id, participant := range s.participants {
		if participant.DiscussionID == discussionID && participant.UserID == userID {
			participant.LastSeenAt = seenAt
			s.participants[id] = participant
			return participant
		}
	}

	participant := models.DiscussionParticipant{
		ID:           s.nextID(kindParticipant),
		DiscussionID: discussionID,
		UserID:       userID,
		JoinedAt:     seenAt,
		LastSeenAt:   seenAt,
	}
	s.participants[participant.ID] = participant

	return participant
}

// CreateReply appends the reply, bumps the parent discussion's LastActivityAt
// and upserts the replier's participant row.
func (s *Store) CreateReply(_ context.Context, reply models.Reply) (models.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	discussion, ok := s.discussions[reply.DiscussionID]
	if !ok {
		return models.Reply{}, ErrNotFound
	}

	now := s.now()
	reply.ID = s.nextID(kindReply)
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = now
	}
	reply.IsRead = false
	reply.Reactions = map[string][]int{}
	s.replies[reply.ID] = reply

	discussion.LastActivityAt = now
	replierID := strconv.Itoa(reply.CreatedBy)
	known := false
	for _, participantID := range discussion.ParticipantIDs {
		if participantID == replierID {
			known = true
			break
		}
	}
	if !known {
		discussion.ParticipantIDs = append(discussion.ParticipantIDs, replierID)
	}
	s.discussions[discussion.ID] = discussion

	s.upsertParticipant(reply.DiscussionID, reply.CreatedBy, now)

	return cloneReply(reply), nil
}

// GetReply returns the reply with the given id or ErrNotFound.
func (s *Store) GetReply(_ context.Context, id int) (models.Reply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reply, ok := s.replies[id]
	if !ok {
		return models.Reply{}, ErrNotFound
	}
	return cloneReply(reply), nil
}

// ListReplies returns all replies of a discussion in creation order.
func (s *Store) ListReplies(_ context.Context, discussionID int) []models.Reply {
	s.mu.RLock()
	defer s.mu.RUnlock()

	replies := make([]models.Reply, 0)
	for _, reply := range s.replies {
		if reply.DiscussionID == discussionID {
			replies = append(replies, cloneReply(reply))
		}
	}
	sort.Slice(replies, func(i, j int) bool { return replies[i].ID < replies[j].ID })

	return replies
}

// DeleteReply removes the reply and reports whether it existed.
func (s *Store) DeleteReply(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.replies[id]; !ok {
		return false
	}
	delete(s.replies, id)

	return true
}

// AddReaction appends the user to the reply's reaction list for the label.
// Idempotent: a user already on the list is not added again.
func (s *Store) AddReaction(_ context.Context, replyID, userID int, label string) (models.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, ok := s.replies[replyID]
	if !ok {
		return models.Reply{}, ErrNotFound
	}

	reply = cloneReply(reply)
	for _, id := range reply.Reactions[label] {
		if id == userID {
			return cloneReply(reply), nil
		}
	}
	reply.Reactions[label] = append(reply.Reactions[label], userID)
	s.replies[replyID] = reply

	return cloneReply(reply), nil
}

// RemoveReaction removes the user from the reply's reaction list for the
// label, pruning the label entirely once its list is empty.
func (s *Store) RemoveReaction(_ context.Context, replyID, userID int, label string) (models.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, ok := s.replies[replyID]
	if !ok {
		return models.Reply{}, ErrNotFound
	}

	reply = cloneReply(reply)
	userIDs := reply.Reactions[label]
	filtered := userIDs[:0]
	for _, id := range userIDs {
		if id != userID {
			filtered = append(filtered, id)
		}
	}
	if len(filtered) == 0 {
		delete(reply.Reactions, label)
	} else {
		reply.Reactions[label] = filtered
	}
	s.replies[replyID] = reply

	return cloneReply(reply), nil
}

// GetUnreadRepliesCount counts the replies of a discussion that were not
// authored by the user and have no read receipt for the user.
func (s *Store) GetUnreadRepliesCount(_ context.Context, discussionID, userID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, reply := range s.replies {
		if reply.DiscussionID != discussionID || reply.CreatedBy == userID {
			continue
		}

		read := false
		for _, status := range s.readStatuses {
			if status.ReplyID == reply.ID && status.UserID == userID {
				read = true
				break
			}
		}
		if !read {
			count++
		}
	}

	return count
}

// MarkReplyAsRead records a read receipt for (reply, user). Idempotent: an
// existing receipt is returned unchanged. The first receipt for a reply by
// anyone also flips the reply's global IsRead flag.
func (s *Store) MarkReplyAsRead(_ context.Context, replyID, userID int) (models.ReplyReadStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, ok := s.replies[replyID]
	if !ok {
		return models.ReplyReadStatus{}, ErrNotFound
	}

	for _, status := range s.readStatuses {
		if status.ReplyID == replyID && status.UserID == userID {
			return status, nil
		}
	}

	status := models.ReplyReadStatus{
		ID:      s.nextID(kindReadStatus),
		ReplyID: replyID,
		UserID:  userID,
		ReadAt:  s.now(),
	}
	s.readStatuses[status.ID] = status

	reply.IsRead = true
	s.replies[replyID] = reply

	return status, nil
}
