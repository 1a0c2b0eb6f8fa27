package browser_test

import (
	"testing"
	"time"

	"serve-web/core/browser"
	"serve-web/core/browser/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLaunch(t *testing.T) {
	t.Run("FailureIgnored", func(t *testing.T) {
		done := make(chan struct{})
		opener := new(mocks.Opener)
		opener.On("Open", "http://localhost:8000/index.html").
			Return(assert.AnError).
			Run(func(mock.Arguments) { close(done) })

		browser.Launch(opener, "http://localhost:8000/index.html")

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("opener was not called")
		}
		opener.AssertExpectations(t)
	})

	t.Run("DoesNotBlock", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		opener := new(mocks.Opener)
		opener.On("Open", mock.Anything).
			Return(nil).
			Run(func(mock.Arguments) { <-release })

		returned := make(chan struct{})
		go func() {
			browser.Launch(opener, "http://localhost:1/")
			close(returned)
		}()

		select {
		case <-returned:
		case <-time.After(2 * time.Second):
			t.Fatal("Launch blocked on the opener")
		}
	})
}

func TestNewSystem(t *testing.T) {
	var o browser.Opener = browser.NewSystem()
	assert.NotNil(t, o)
}
