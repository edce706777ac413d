package store

import (
	"errors"
	"sync"
	"time"

	"github.com/alumniconnect/portal-api/internal/models"
)

// ErrNotFound is returned when an operation addresses a nonexistent record.
var ErrNotFound = errors.New("record not found")

// Store is the process-lifetime in-memory data store. Every entity family
// lives in its own map keyed by an auto-incrementing integer id; ids start at
// 1 and are never reused, even after deletion. A single mutex serializes
// access, matching the single-writer semantics the API layer assumes.
//
// The store never enforces referential integrity: deleting a parent record
// does not cascade to records referencing it.
type Store struct {
	mu sync.RWMutex

	users         map[int]models.User
	events        map[int]models.Event
	registrations map[int]models.EventRegistration
	jobs          map[int]models.Job
	galleries     map[int]models.Gallery
	galleryImages map[int]models.GalleryImage
	discussions   map[int]models.Discussion
	participants  map[int]models.DiscussionParticipant
	replies       map[int]models.Reply
	readStatuses  map[int]models.ReplyReadStatus
	documents     map[int]models.Document
	messages      map[int]models.Message
	university    models.UniversityInfo

	seq map[string]int
	now func() time.Time
}

// Collection names used for id sequencing.
const (
	kindUser          = "users"
	kindEvent         = "events"
	kindRegistration  = "event_registrations"
	kindJob           = "jobs"
	kindGallery       = "galleries"
	kindGalleryImage  = "gallery_images"
	kindDiscussion    = "discussions"
	kindParticipant   = "discussion_participants"
	kindReply         = "replies"
	kindReadStatus    = "reply_read_statuses"
	kindDocument      = "documents"
	kindMessage       = "messages"
)

// New constructs an empty store and seeds the singleton university record.
func New() *Store {
	s := &Store{
		users:         make(map[int]models.User),
		events:        make(map[int]models.Event),
		registrations: make(map[int]models.EventRegistration),
		jobs:          make(map[int]models.Job),
		galleries:     make(map[int]models.Gallery),
		galleryImages: make(map[int]models.GalleryImage),
		discussions:   make(map[int]models.Discussion),
		participants:  make(map[int]models.DiscussionParticipant),
		replies:       make(map[int]models.Reply),
		readStatuses:  make(map[int]models.ReplyReadStatus),
		documents:     make(map[int]models.Document),
		messages:      make(map[int]models.Message),
		seq:           make(map[string]int),
		now:           time.Now,
	}

	s.university = models.UniversityInfo{
		ID:        1,
		Name:      "University",
		UpdatedAt: s.now(),
	}

	return s
}

// WithClock overrides the store's clock; intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// nextID hands out the next id for a collection. The counter is monotonic and
// never rewound, so deleted ids are never reissued.
func (s *Store) nextID(kind string) int {
	s.seq[kind]++
	return s.seq[kind]
}

func cloneDiscussion(d models.Discussion) models.Discussion {
	d.ParticipantIDs = append([]string(nil), d.ParticipantIDs...)
	return d
}

func cloneReply(r models.Reply) models.Reply {
	if r.Reactions == nil {
		r.Reactions = map[string][]int{}
		return r
	}
	reactions := make(map[string][]int, len(r.Reactions))
	for label, userIDs := range r.Reactions {
		reactions[label] = append([]int(nil), userIDs...)
	}
	r.Reactions = reactions
	return r
}
