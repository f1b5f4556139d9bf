package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// Register mounts the embedded dashboard at the application root.
func Register(app *fiber.App) {
	app.Use("/", filesystem.New(filesystem.Config{
		Root:  FS(),
		Index: "index.html",
	}))
}
