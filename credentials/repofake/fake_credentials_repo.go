package fakecredentialsrepo

import (
	"sync"

	"github.com/jrsteele09/go-social-client/credentials"
)

var _ credentials.Repo = (*FakeCredentialsRepo)(nil)

type FakeCredentialsRepo struct {
	values map[string]string
	lock   sync.RWMutex
}

func NewFakeCredentialsRepo() *FakeCredentialsRepo {
	return &FakeCredentialsRepo{
		values: make(map[string]string),
	}
}

func (cr *FakeCredentialsRepo) Get(key string) (*string, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	value, ok := cr.values[key]
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func (cr *FakeCredentialsRepo) Set(key, value string) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	cr.values[key] = value
	return nil
}

func (cr *FakeCredentialsRepo) Delete(keys ...string) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	for _, key := range keys {
		delete(cr.values, key)
	}
	return nil
}

// Len returns the number of stored entries
func (cr *FakeCredentialsRepo) Len() int {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	return len(cr.values)
}
