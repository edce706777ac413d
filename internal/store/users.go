package store

import (
	"context"
	"sort"
	"strings"

	"github.com/alumniconnect/portal-api/internal/models"
)

// UserUpdate is a shallow partial of a user record; nil fields are left
// untouched by UpdateUser.
type UserUpdate struct {
	Username *string
	Password *string
	Email    *string
	Name     *string
	IsAdmin  *bool

	FirstName          *string
	LastName           *string
	Phone              *string
	Bio                *string
	ProfileImageURL    *string
	CoverImageURL      *string
	Gender             *string
	Address            *string
	City               *string
	State              *string
	Country            *string
	PostalCode         *string
	GraduationYear     *int
	Degree             *string
	Major              *string
	StudentID          *string
	CurrentPosition    *string
	Company            *string
	Industry           *string
	YearsOfExperience  *int
	Skills             *string
	Interests          *string
	Achievements       *string
	LinkedinURL        *string
	TwitterURL         *string
	FacebookURL        *string
	InstagramURL       *string
	WebsiteURL         *string
	MentorshipOffered  *bool
	OpenToOpportunity  *bool
	PreferredContactBy *string
}

// CreateUser assigns the next user id and stores the record.
func (s *Store) CreateUser(_ context.Context, user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID(kindUser)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	s.users[user.ID] = user

	return user
}

// GetUser returns the user with the given id or ErrNotFound.
func (s *Store) GetUser(_ context.Context, id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

// GetUserByUsername returns the user with the given username or ErrNotFound.
func (s *Store) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

// GetUserByEmail returns the user with the given email or ErrNotFound.
func (s *Store) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

// ListUsers returns every user ordered by id.
func (s *Store) ListUsers(_ context.Context) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users
}

// UpdateUser shallow-merges the partial into the stored record and returns the
// merged record, or ErrNotFound if the id is unknown.
func (s *Store) UpdateUser(_ context.Context, id int, partial UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}

	if partial.Username != nil {
		user.Username = *partial.Username
	}
	if partial.Password != nil {
		user.Password = *partial.Password
	}
	if partial.Email != nil {
		user.Email = *partial.Email
	}
	if partial.Name != nil {
		user.Name = *partial.Name
	}
	if partial.IsAdmin != nil {
		user.IsAdmin = *partial.IsAdmin
	}
	if partial.FirstName != nil {
		user.FirstName = partial.FirstName
	}
	if partial.LastName != nil {
		user.LastName = partial.LastName
	}
	if partial.Phone != nil {
		user.Phone = partial.Phone
	}
	if partial.Bio != nil {
		user.Bio = partial.Bio
	}
	if partial.ProfileImageURL != nil {
		user.ProfileImageURL = partial.ProfileImageURL
	}
	if partial.CoverImageURL != nil {
		user.CoverImageURL = partial.CoverImageURL
	}
	if partial.Gender != nil {
		user.Gender = partial.Gender
	}
	if partial.Address != nil {
		user.Address = partial.Address
	}
	if partial.City != nil {
		user.City = partial.City
	}
	if partial.State != nil {
		user.State = partial.State
	}
	if partial.Country != nil {
		user.Country = partial.Country
	}
	if partial.PostalCode != nil {
		user.PostalCode = partial.PostalCode
	}
	if partial.GraduationYear != nil {
		user.GraduationYear = partial.GraduationYear
	}
	if partial.Degree != nil {
		user.Degree = partial.Degree
	}
	if partial.Major != nil {
		user.Major = partial.Major
	}
	if partial.StudentID != nil {
		user.StudentID = partial.StudentID
	}
	if partial.CurrentPosition != nil {
		user.CurrentPosition = partial.CurrentPosition
	}
	if partial.Company != nil {
		user.Company = partial.Company
	}
	if partial.Industry != nil {
		user.Industry = partial.Industry
	}
	if partial.YearsOfExperience != nil {
		user.YearsOfExperience = partial.YearsOfExperience
	}
	if partial.Skills != nil {
		user.Skills = partial.Skills
	}
	if partial.Interests != nil {
		user.Interests = partial.Interests
	}
	if partial.Achievements != nil {
		user.Achievements = partial.Achievements
	}
	if partial.LinkedinURL != nil {
		user.LinkedinURL = partial.LinkedinURL
	}
	if partial.TwitterURL != nil {
		user.TwitterURL = partial.TwitterURL
	}
	if partial.FacebookURL != nil {
		user.FacebookURL = partial.FacebookURL
	}
	if partial.InstagramURL != nil {
		user.InstagramURL = partial.InstagramURL
	}
	if partial.WebsiteURL != nil {
		user.WebsiteURL = partial.WebsiteURL
	}
	if partial.MentorshipOffered != nil {
		user.MentorshipOffered = partial.MentorshipOffered
	}
	if partial.OpenToOpportunity != nil {
		user.OpenToOpportunity = partial.OpenToOpportunity
	}
	if partial.PreferredContactBy != nil {
		user.PreferredContactBy = partial.PreferredContactBy
	}

	s.users[id] = user

	return user, nil
}

// DeleteUser removes the user and reports whether it existed. Records created
// by the user are left in place with dangling references.
func (s *Store) DeleteUser(_ context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)

	return true
}

// SearchUsersByName matches the term case-insensitively against the first
// name, last name and "first last" concatenation of every user.
func (s *Store) SearchUsersByName(_ context.Context, term string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(term))
	matches := make([]models.User, 0)
	if needle == "" {
		return matches
	}

	for _, user := range s.users {
		first, last := "", ""
		if user.FirstName != nil {
			first = strings.ToLower(*user.FirstName)
		}
		if user.LastName != nil {
			last = strings.ToLower(*user.LastName)
		}
		full := strings.TrimSpace(first + " " + last)

		if strings.Contains(first, needle) || strings.Contains(last, needle) || strings.Contains(full, needle) {
			matches = append(matches, user)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })

	return matches
}
