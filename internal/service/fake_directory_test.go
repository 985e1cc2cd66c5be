// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/MKhiriev/go-username-changer/internal/store"
	"github.com/MKhiriev/go-username-changer/models"
)

// fakeDirectory is an in-memory user directory implementing the store
// repositories. Login uniqueness is enforced in ApplyRename like the SQL
// constraint does.
type fakeDirectory struct {
	mu sync.Mutex

	users  map[int64]models.User
	admins map[string]bool
	caps   map[int64]map[string]bool
	terms  map[string]map[int64]bool

	reattributeErr map[int64]error
	removeTermErr  error

	// beforeApply runs inside ApplyRename before uniqueness is checked.
	beforeApply func(d *fakeDirectory)
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		users:          map[int64]models.User{},
		admins:         map[string]bool{},
		caps:           map[int64]map[string]bool{},
		terms:          map[string]map[int64]bool{},
		reattributeErr: map[int64]error{},
	}
}

func (d *fakeDirectory) addUser(id int64, login, displayName string) models.User {
	u := models.User{
		UserID:      id,
		Login:       login,
		Slug:        login,
		DisplayName: displayName,
		Email:       login + "@example.com",
	}
	d.users[id] = u
	return u
}

func (d *fakeDirectory) grant(userID int64, capability string) {
	if d.caps[userID] == nil {
		d.caps[userID] = map[string]bool{}
	}
	d.caps[userID][capability] = true
}

func (d *fakeDirectory) attribute(login string, items ...int64) {
	if d.terms[login] == nil {
		d.terms[login] = map[int64]bool{}
	}
	for _, item := range items {
		d.terms[login][item] = true
	}
}

func (d *fakeDirectory) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Login == login {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (d *fakeDirectory) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return u, nil
}

func (d *fakeDirectory) ListUsers(_ context.Context) ([]models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	users := make([]models.User, 0, len(d.users))
	for _, u := range d.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Login < users[j].Login })
	return users, nil
}

func (d *fakeDirectory) ApplyRename(_ context.Context, plan models.RenamePlan) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.beforeApply != nil {
		d.beforeApply(d)
	}

	u, ok := d.users[plan.UserID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	if plan.Fields.Login != nil {
		for id, other := range d.users {
			if id != plan.UserID && other.Login == *plan.Fields.Login {
				return models.User{}, store.ErrLoginAlreadyExists
			}
		}
		u.Login = *plan.Fields.Login
	}
	if plan.Fields.Slug != nil {
		u.Slug = *plan.Fields.Slug
	}
	if plan.Fields.DisplayName != nil {
		u.DisplayName = *plan.Fields.DisplayName
	}
	d.users[plan.UserID] = u

	if plan.ReaffirmNetworkPrivilege && u.Login != plan.CurrentLogin {
		d.admins[u.Login] = true
		delete(d.admins, plan.CurrentLogin)
	}

	return u, nil
}

func (d *fakeDirectory) HasNetworkPrivilege(_ context.Context, login string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.admins[login], nil
}

func (d *fakeDirectory) ListNetworkAdmins(_ context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	logins := make([]string, 0, len(d.admins))
	for login := range d.admins {
		logins = append(logins, login)
	}
	sort.Strings(logins)
	return logins, nil
}

func (d *fakeDirectory) HasCapability(_ context.Context, userID int64, capability string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.caps[userID][capability], nil
}

func (d *fakeDirectory) FindAttributedItems(_ context.Context, login string) ([]int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	items := make([]int64, 0, len(d.terms[login]))
	for item := range d.terms[login] {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items, nil
}

func (d *fakeDirectory) Reattribute(_ context.Context, itemID int64, login string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.reattributeErr[itemID]; err != nil {
		return err
	}
	if d.terms[login] == nil {
		d.terms[login] = map[int64]bool{}
	}
	d.terms[login][itemID] = true
	return nil
}

func (d *fakeDirectory) RemoveAttributionTerm(_ context.Context, login string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.removeTermErr != nil {
		return d.removeTermErr
	}
	delete(d.terms, login)
	return nil
}

var errFake = errors.New("fake storage failure")
