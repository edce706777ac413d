package store_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/portal-api/internal/models"
	"github.com/alumniconnect/portal-api/internal/store"
)

func strPtr(s string) *string { return &s }

func TestUserCreateGetRoundTrip(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	created := s.CreateUser(ctx, models.User{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Name:      "Jane Doe",
		FirstName: strPtr("Jane"),
		LastName:  strPtr("Doe"),
	})
	require.Equal(t, 1, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestIDsAreMonotonicAndNeverReused(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	first := s.CreateEvent(ctx, models.Event{Title: "Reunion"})
	second := s.CreateEvent(ctx, models.Event{Title: "Homecoming"})
	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)

	require.True(t, s.DeleteEvent(ctx, second.ID))

	third := s.CreateEvent(ctx, models.Event{Title: "Gala"})
	require.Equal(t, 3, third.ID)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	created := s.CreateJob(ctx, models.Job{
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: "Remote",
	})

	updated, err := s.UpdateJob(ctx, created.ID, store.JobUpdate{Location: strPtr("Berlin")})
	require.NoError(t, err)
	require.Equal(t, "Berlin", updated.Location)
	require.Equal(t, "Backend Engineer", updated.Title)
	require.Equal(t, "Acme", updated.Company)
	require.Equal(t, created.PostedAt, updated.PostedAt)

	_, err = s.UpdateJob(ctx, 999, store.JobUpdate{Title: strPtr("x")})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteSemantics(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	gallery := s.CreateGallery(ctx, models.Gallery{Title: "Class of 2010"})

	require.True(t, s.DeleteGallery(ctx, gallery.ID))
	_, err := s.GetGallery(ctx, gallery.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.False(t, s.DeleteGallery(ctx, gallery.ID))
}

func TestGetUnknownIDReturnsErrNotFound(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	_, err := s.GetUser(ctx, 42)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetDiscussion(ctx, 42)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetMessage(ctx, 42)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDiscussionCreationSeedsCreatorParticipant(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	discussion := s.CreateDiscussion(ctx, models.Discussion{
		Title:     "Welcome",
		Content:   "Say hi",
		CreatedBy: 7,
	})

	require.Equal(t, []string{"7"}, discussion.ParticipantIDs)
	require.Equal(t, discussion.CreatedAt, discussion.LastActivityAt)

	participants := s.ListDiscussionParticipants(ctx, discussion.ID)
	require.Len(t, participants, 1)
	require.Equal(t, 7, participants[0].UserID)
}

func TestReplyBumpsActivityAndUpsertsParticipant(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	discussion := s.CreateDiscussion(ctx, models.Discussion{Title: "Hi", CreatedBy: 1})

	reply, err := s.CreateReply(ctx, models.Reply{DiscussionID: discussion.ID, Content: "hello", CreatedBy: 2})
	require.NoError(t, err)
	require.False(t, reply.IsRead)
	require.Empty(t, reply.Reactions)

	refreshed, err := s.GetDiscussion(ctx, discussion.ID)
	require.NoError(t, err)
	require.False(t, refreshed.LastActivityAt.Before(reply.CreatedAt))
	require.Equal(t, []string{"1", "2"}, refreshed.ParticipantIDs)

	participants := s.ListDiscussionParticipants(ctx, discussion.ID)
	require.Len(t, participants, 2)

	// A second reply by the same user must refresh, not duplicate.
	_, err = s.CreateReply(ctx, models.Reply{DiscussionID: discussion.ID, Content: "again", CreatedBy: 2})
	require.NoError(t, err)

	participants = s.ListDiscussionParticipants(ctx, discussion.ID)
	require.Len(t, participants, 2)
	require.Equal(t, []string{"1", "2"}, mustGetDiscussion(t, s, discussion.ID).ParticipantIDs)
}

func TestReplyToUnknownDiscussionFails(t *testing.T) {
	s := store.New()

	_, err := s.CreateReply(context.Background(), models.Reply{DiscussionID: 5, Content: "x", CreatedBy: 1})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddReactionIsIdempotent(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	discussion := s.CreateDiscussion(ctx, models.Discussion{Title: "Hi", CreatedBy: 1})
	reply, err := s.CreateReply(ctx, models.Reply{DiscussionID: discussion.ID, Content: "hello", CreatedBy: 2})
	require.NoError(t, err)

	once, err := s.AddReaction(ctx, reply.ID, 3, "like")
	require.NoError(t, err)
	twice, err := s.AddReaction(ctx, reply.ID, 3, "like")
	require.NoError(t, err)
	require.Equal(t, once.Reactions, twice.Reactions)
	require.Equal(t, []int{3}, twice.Reactions["like"])

	withSecond, err := s.AddReaction(ctx, reply.ID, 4, "like")
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, withSecond.Reactions["like"])
}

func TestRemoveReactionPrunesEmptyLabel(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	discussion := s.CreateDiscussion(ctx, models.Discussion{Title: "Hi", CreatedBy: 1})
	reply, err := s.CreateReply(ctx, models.Reply{DiscussionID: discussion.ID, Content: "hello", CreatedBy: 2})
	require.NoError(t, err)

	_, err = s.AddReaction(ctx, reply.ID, 3, "like")
	require.NoError(t, err)
	_, err = s.AddReaction(ctx, reply.ID, 4, "like")
	require.NoError(t, err)

	after, err := s.RemoveReaction(ctx, reply.ID, 3, "like")
	require.NoError(t, err)
	require.Equal(t, []int{4}, after.Reactions["like"])

	after, err = s.RemoveReaction(ctx, reply.ID, 4, "like")
	require.NoError(t, err)
	require.NotContains(t, after.Reactions, "like")
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	discussion := s.CreateDiscussion(ctx, models.Discussion{Title: "Hi", CreatedBy: 1})

	reply, err := s.CreateReply(ctx, models.Reply{DiscussionID: discussion.ID, Content: "hello", CreatedBy: 2})
	require.NoError(t, err)
	own, err := s.CreateReply(ctx, models.Reply{DiscussionID: discussion.ID, Content: "mine", CreatedBy: 1})
	require.NoError(t, err)

	// Own replies never count as unread.
	require.Equal(t, 1, s.GetUnreadRepliesCount(ctx, discussion.ID, 1))
	require.Equal(t, 1, s.GetUnreadRepliesCount(ctx, discussion.ID, 2))

	status, err := s.MarkReplyAsRead(ctx, reply.ID, 1)
	require.NoError(t, err)
	require.Equal(t, reply.ID, status.ReplyID)
	require.Equal(t, 1, status.UserID)

	require.Equal(t, 0, s.GetUnreadRepliesCount(ctx, discussion.ID, 1))
	// User 2 still has the creator's reply unread.
	require.Equal(t, 1, s.GetUnreadRepliesCount(ctx, discussion.ID, 2))

	// Idempotent: the existing receipt comes back unchanged.
	again, err := s.MarkReplyAsRead(ctx, reply.ID, 1)
	require.NoError(t, err)
	require.Equal(t, status, again)

	// The global flag flips once someone has read the reply; the unmarked
	// reply stays unread.
	marked, err := s.GetReply(ctx, reply.ID)
	require.NoError(t, err)
	require.True(t, marked.IsRead)
	unmarked, err := s.GetReply(ctx, own.ID)
	require.NoError(t, err)
	require.False(t, unmarked.IsRead)
}

func TestConversationSymmetryAndOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s := store.New().WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})
	ctx := context.Background()

	s.CreateMessage(ctx, models.Message{SenderID: 1, ReceiverID: 2, Content: "hey"})
	s.CreateMessage(ctx, models.Message{SenderID: 2, ReceiverID: 1, Content: "hi"})
	s.CreateMessage(ctx, models.Message{SenderID: 1, ReceiverID: 3, Content: "other thread"})
	s.CreateMessage(ctx, models.Message{SenderID: 1, ReceiverID: 2, Content: "how are you"})

	forward := s.GetConversation(ctx, 1, 2)
	backward := s.GetConversation(ctx, 2, 1)
	require.Equal(t, forward, backward)
	require.Len(t, forward, 3)

	for i := 1; i < len(forward); i++ {
		require.False(t, forward[i].SentAt.Before(forward[i-1].SentAt))
	}
	require.Equal(t, "hey", forward[0].Content)
	require.Equal(t, "hi", forward[1].Content)
	require.Equal(t, "how are you", forward[2].Content)
}

func TestMessagesByUserIsUnionOfSentAndReceived(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	s.CreateMessage(ctx, models.Message{SenderID: 1, ReceiverID: 2, Content: "a"})
	s.CreateMessage(ctx, models.Message{SenderID: 3, ReceiverID: 1, Content: "b"})
	s.CreateMessage(ctx, models.Message{SenderID: 2, ReceiverID: 3, Content: "c"})

	messages := s.GetMessagesByUser(ctx, 1)
	require.Len(t, messages, 2)

	marked, err := s.MarkMessageAsRead(ctx, messages[0].ID)
	require.NoError(t, err)
	require.True(t, marked.IsRead)
}

func TestSearchUsersByName(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	s.CreateUser(ctx, models.User{Username: "a", FirstName: strPtr("Maria"), LastName: strPtr("Garcia")})
	s.CreateUser(ctx, models.User{Username: "b", FirstName: strPtr("Mark"), LastName: strPtr("Jones")})
	s.CreateUser(ctx, models.User{Username: "c", FirstName: strPtr("Alice"), LastName: strPtr("Smith")})

	require.Len(t, s.SearchUsersByName(ctx, "mar"), 2)
	require.Len(t, s.SearchUsersByName(ctx, "GARCIA"), 1)

	// Matches the "first last" concatenation across the name boundary.
	require.Len(t, s.SearchUsersByName(ctx, "maria g"), 1)
	require.Empty(t, s.SearchUsersByName(ctx, "zzz"))
}

func TestDeleteUserLeavesReferencesDangling(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	user := s.CreateUser(ctx, models.User{Username: "creator"})
	event := s.CreateEvent(ctx, models.Event{Title: "Meetup", CreatedBy: user.ID})
	discussion := s.CreateDiscussion(ctx, models.Discussion{Title: "Hi", CreatedBy: user.ID})

	require.True(t, s.DeleteUser(ctx, user.ID))

	survivingEvent, err := s.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, survivingEvent.CreatedBy)

	survivingDiscussion, err := s.GetDiscussion(ctx, discussion.ID)
	require.NoError(t, err)
	require.Equal(t, []string{strconv.Itoa(user.ID)}, survivingDiscussion.ParticipantIDs)
}

func TestUpcomingAndActiveFilters(t *testing.T) {
	s := store.New()
	ctx := context.Background()
	now := time.Now()

	s.CreateEvent(ctx, models.Event{Title: "Past", Date: now.Add(-time.Hour)})
	s.CreateEvent(ctx, models.Event{Title: "Future", Date: now.Add(time.Hour)})

	upcoming := s.ListUpcomingEvents(ctx)
	require.Len(t, upcoming, 1)
	require.Equal(t, "Future", upcoming[0].Title)

	expired := now.Add(-time.Minute)
	s.CreateJob(ctx, models.Job{Title: "Expired", ExpiresAt: &expired})
	s.CreateJob(ctx, models.Job{Title: "Open-ended"})

	active := s.ListActiveJobs(ctx)
	require.Len(t, active, 1)
	require.Equal(t, "Open-ended", active[0].Title)
}

func TestUniversityInfoSingleton(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	info := s.GetUniversityInfo(ctx)
	require.Equal(t, 1, info.ID)

	updated := s.UpdateUniversityInfo(ctx, store.UniversityUpdate{
		Name:   strPtr("State University"),
		Vision: strPtr("Excellence"),
	}, 9)
	require.Equal(t, "State University", updated.Name)
	require.Equal(t, "Excellence", updated.Vision)
	require.Equal(t, 9, updated.UpdatedBy)

	require.Equal(t, updated, s.GetUniversityInfo(ctx))
}

func TestEventRegistrationLookup(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	event := s.CreateEvent(ctx, models.Event{Title: "Meetup"})
	registration := s.CreateEventRegistration(ctx, models.EventRegistration{EventID: event.ID, UserID: 4})

	found, err := s.GetEventRegistration(ctx, event.ID, 4)
	require.NoError(t, err)
	require.Equal(t, registration.ID, found.ID)

	_, err = s.GetEventRegistration(ctx, event.ID, 5)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.Len(t, s.ListEventRegistrations(ctx, event.ID), 1)
	require.True(t, s.DeleteEventRegistration(ctx, registration.ID))
	require.Empty(t, s.ListEventRegistrations(ctx, event.ID))
}

func mustGetDiscussion(t *testing.T, s *store.Store, id int) models.Discussion {
	t.Helper()
	discussion, err := s.GetDiscussion(context.Background(), id)
	require.NoError(t, err)
	return discussion
}
