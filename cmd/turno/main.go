package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/valegre/turno/internal/api"
	"github.com/valegre/turno/internal/cli"
	"github.com/valegre/turno/internal/db"
)

func main() {
	_ = godotenv.Load()

	location := mustLoadLocation(getEnv("TZ", "Europe/Madrid"))
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "turno.db"))

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "useradd":
			runUserAdd(dbPath, os.Args[2:])
			return
		case "seed":
			runSeed(dbPath, location, os.Args[2:])
			return
		}
	}

	serve(dbPath, location)
}

func serve(dbPath string, location *time.Location) {
	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler, err := api.NewHandler(database, secretKey, filepath.Join("internal", "templates"), location, cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Turno",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "turno_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}))

	app.Static("/static", filepath.Join("web", "static"))
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Turno listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runUserAdd(dbPath string, args []string) {
	flags := flag.NewFlagSet("useradd", flag.ExitOnError)
	name := flags.String("name", "", "display name")
	email := flags.String("email", "", "login email")
	nonRotating := flags.Bool("non-rotating", false, "exclude from compensatory rotation")
	_ = flags.Parse(args)

	if err := cli.RunAddUserCommand(dbPath, *name, *email, *nonRotating); err != nil {
		log.Fatalf("useradd failed: %v", err)
	}
}

func runSeed(dbPath string, location *time.Location, args []string) {
	flags := flag.NewFlagSet("seed", flag.ExitOnError)
	from := flags.String("from", "", "first date (YYYY-MM-DD)")
	to := flags.String("to", "", "last date (YYYY-MM-DD)")
	_ = flags.Parse(args)

	if err := cli.RunSeedScheduleCommand(dbPath, *from, *to, location); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
