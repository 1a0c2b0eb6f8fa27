package static

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements loader.Feature for static file serving.
type Feature struct {
	handler *Handler
}

// NewFeature creates the static feature for root.
func NewFeature(root string, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(root, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled reports whether the feature is enabled. It always is.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the static routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
