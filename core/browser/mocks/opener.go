package mocks

import "github.com/stretchr/testify/mock"

// Opener is a mock implementation of browser.Opener
type Opener struct {
	mock.Mock
}

func (m *Opener) Open(url string) error {
	args := m.Called(url)
	return args.Error(0)
}
