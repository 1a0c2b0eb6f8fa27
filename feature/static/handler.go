package static

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// IndexFile is served for "/" and for directories that contain it.
const IndexFile = "index.html"

// Handler serves files below a root directory.
type Handler struct {
	root   string
	logger *zap.Logger
}

// NewHandler creates a handler for root.
func NewHandler(root string, logger *zap.Logger) *Handler {
	return &Handler{root: root, logger: logger}
}

// RegisterRoutes mounts the root directory at "/".
// Files are opened on every request, so edits on disk show up immediately.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	h.logger.Debug("Mounting static root", zap.String("root", h.root))
	app.Use(filesystem.New(filesystem.Config{
		Root:   http.Dir(h.root),
		Browse: true,
		Index:  IndexFile,
	}))
}
