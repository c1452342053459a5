package store

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/lexiroad/internal/entity"
)

// CurrentUser returns the signed in user, if any.
func (s *Store) CurrentUser() (entity.User, bool) {
	st := s.Snapshot()
	if st.CurrentUser == nil {
		return entity.User{}, false
	}
	return *st.CurrentUser, true
}

// SetCurrentUser replaces the active user. nil clears the session.
func (s *Store) SetCurrentUser(user *entity.User) {
	_, _ = s.update("set_current_user", func(next *State, _ time.Time) error {
		if user == nil {
			next.CurrentUser = nil
			return nil
		}
		u := user.Clone()
		u.Normalize()
		next.CurrentUser = &u
		return nil
	})
}

// SignOut clears the session.
func (s *Store) SignOut() {
	s.SetCurrentUser(nil)
}

// SignIn is the simulated login: it signs in the user registered under email.
func (s *Store) SignIn(email string) (entity.User, error) {
	var signedIn entity.User
	_, err := s.update("sign_in", func(next *State, _ time.Time) error {
		u, ok := lo.Find(next.Users, func(u entity.User) bool {
			return strings.EqualFold(u.Email, strings.TrimSpace(email))
		})
		if !ok {
			return entity.ErrUserNotFound
		}
		signedIn = u.Clone()
		next.CurrentUser = &signedIn
		return nil
	})
	return signedIn, err
}

// Register creates a user with empty favorites and signs it in.
func (s *Store) Register(name, email string) (entity.User, error) {
	var created entity.User
	_, err := s.update("register", func(next *State, _ time.Time) error {
		u := entity.User{Name: name, Email: email}
		u.Normalize()
		if err := u.Validate(); err != nil {
			return err
		}
		if emailTaken(next.Users, u.Email, "") {
			return entity.ErrUserAlreadyExists
		}
		u.ID = s.newID("user")
		next.Users = appendTo(next.Users, u)
		created = u.Clone()
		next.CurrentUser = &created
		return nil
	})
	return created, err
}

// UpdateProfile changes the signed in user's name and email, in the session and in the user list.
func (s *Store) UpdateProfile(name, email string) (entity.User, error) {
	var updated entity.User
	_, err := s.update("update_profile", func(next *State, _ time.Time) error {
		if next.CurrentUser == nil {
			return entity.ErrNotAuthenticated
		}
		u := next.CurrentUser.Clone()
		u.Name = name
		u.Email = email
		u.Normalize()
		if err := u.Validate(); err != nil {
			return err
		}
		if emailTaken(next.Users, u.Email, u.ID) {
			return entity.ErrUserAlreadyExists
		}
		if i := next.userIndex(u.ID); i >= 0 {
			listed := next.Users[i].Clone()
			listed.Name, listed.Email = u.Name, u.Email
			next.Users = replaceAt(next.Users, i, listed)
		}
		updated = u
		next.CurrentUser = &updated
		return nil
	})
	return updated, err
}

// SearchUsers is a pure read over the committed user list.
func (s *Store) SearchUsers(query string) []entity.User {
	return s.Snapshot().SearchUsers(query)
}

func emailTaken(users []entity.User, email, exceptID string) bool {
	return lo.ContainsBy(users, func(u entity.User) bool {
		return u.ID != exceptID && strings.EqualFold(u.Email, email)
	})
}
