package fakeuserrepo

import (
	"sort"
	"sync"

	"github.com/jrsteele09/go-social-client/users"
)

var _ users.UserRepo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	users      map[string]*users.User
	emailNames map[string]string // email to profile name
	lock       sync.RWMutex
}

func NewFakeUserRepo() users.UserRepo {
	return &FakeUserRepo{
		users:      make(map[string]*users.User),
		emailNames: make(map[string]string),
	}
}

func (ur *FakeUserRepo) Upsert(user *users.User) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	ur.users[user.Name] = user
	ur.emailNames[users.NormalizeEmail(user.Email)] = user.Name
	return nil
}

func (ur *FakeUserRepo) GetByEmail(email string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	name, ok := ur.emailNames[users.NormalizeEmail(email)]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return ur.users[name], nil
}

func (ur *FakeUserRepo) GetByName(name string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	user, ok := ur.users[name]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

func (ur *FakeUserRepo) List() ([]*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	userList := make([]*users.User, 0, len(ur.users))
	for _, v := range ur.users {
		userList = append(userList, v)
	}

	sort.Slice(userList, func(i, j int) bool {
		return userList[i].Name < userList[j].Name
	})
	return userList, nil
}
