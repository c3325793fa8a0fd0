package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/template/html/v2"

	"physiocare_backend/internals/configs"
	database "physiocare_backend/internals/databases"
	middlewares "physiocare_backend/internals/middlewares"
	routes "physiocare_backend/internals/route"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		Views:                 newViewEngine(cfg.ViewsDir),
		ErrorHandler:          errorHandler,
	})

	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)
	app.Static("/public", "./public")

	// 🔌 DB connect + pool
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	database.TunePool(db)

	// ✅ Routes
	routes.SetupRoutes(app, db, cfg)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newViewEngine menyiapkan renderer + filter tanggal ala nunjucks:
// date → YYYY-MM-DD, alldate → YYYY-MM-DD HH:MM.
func newViewEngine(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFunc("date", func(v any) string {
		return formatTime(v, "2006-01-02")
	})
	engine.AddFunc("alldate", func(v any) string {
		return formatTime(v, "2006-01-02 15:04")
	})
	return engine
}

func formatTime(v any, layout string) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(layout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format(layout)
	default:
		return ""
	}
}

// errorHandler: batas terakhir — apapun yang lolos dari controller
// dikonversi ke envelope JSON (route API) atau view error (route HTML).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Error interno del servidor."

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("[ERROR] unhandled: %v", err)
	}

	if wantsJSON(c) {
		return c.Status(code).JSON(fiber.Map{
			"error":  message,
			"result": nil,
		})
	}
	return c.Status(code).Render("error", fiber.Map{"message": message})
}

func wantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/auth") {
		return true
	}
	accept := c.Get(fiber.HeaderAccept)
	return strings.Contains(accept, fiber.MIMEApplicationJSON) &&
		!strings.Contains(accept, fiber.MIMETextHTML)
}
