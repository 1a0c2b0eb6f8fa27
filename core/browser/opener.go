package browser

import (
	"io"

	sysbrowser "github.com/pkg/browser"
)

// Opener opens a URL in a browser.
type Opener interface {
	Open(url string) error
}

// System opens URLs with the platform's default browser.
type System struct{}

// NewSystem returns an Opener backed by the default system browser.
// Output of the launcher process is discarded.
func NewSystem() *System {
	sysbrowser.Stdout = io.Discard
	sysbrowser.Stderr = io.Discard
	return &System{}
}

// Open implements Opener.
func (System) Open(url string) error {
	return sysbrowser.OpenURL(url)
}

// Launch opens url with o in the background. The result is ignored.
func Launch(o Opener, url string) {
	go func() {
		_ = o.Open(url)
	}()
}
