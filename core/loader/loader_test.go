package loader_test

import (
	"testing"

	"serve-web/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockFeature struct {
	mock.Mock
}

func (m *mockFeature) Name() string {
	return m.Called().String(0)
}

func (m *mockFeature) IsEnabled() bool {
	return m.Called().Bool(0)
}

func (m *mockFeature) Load(app fiber.Router) error {
	return m.Called(app).Error(0)
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		enabled := new(mockFeature)
		enabled.On("Name").Return("enabled")
		enabled.On("IsEnabled").Return(true)
		enabled.On("Load", mock.Anything).Return(nil)

		disabled := new(mockFeature)
		disabled.On("Name").Return("disabled")
		disabled.On("IsEnabled").Return(false)

		mgr := loader.NewManager(zap.NewNop())
		mgr.Register(enabled)
		mgr.Register(disabled)

		assert.NoError(t, mgr.LoadAll(fiber.New()))
		assert.Len(t, mgr.Features(), 2)
		enabled.AssertCalled(t, "Load", mock.Anything)
		disabled.AssertNotCalled(t, "Load", mock.Anything)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		broken := new(mockFeature)
		broken.On("Name").Return("broken")
		broken.On("IsEnabled").Return(true)
		broken.On("Load", mock.Anything).Return(assert.AnError)

		next := new(mockFeature)

		mgr := loader.NewManager(zap.NewNop())
		mgr.Register(broken)
		mgr.Register(next)

		err := mgr.LoadAll(fiber.New())
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "broken")
		next.AssertNotCalled(t, "Load", mock.Anything)
	})
}
