package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"commboard/app/repositories"
	"commboard/app/routes"
	"commboard/app/sessions"
	"commboard/app/uploads"
)

const cliVersion = "1.0.0"

const sessionTTL = 24 * time.Hour

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("commboard version %s\n", cliVersion)
	case "serve":
		serve(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: commboard <command> [options]
Commands:
  help               Display this help message.
  version            Show version information.
  serve [options]    Run the community board API server.

Serve options:
  -addr string       Listen address (default ":8080", PORT env overrides the port)
  -db string         SQLite database file (default "data/board.db")
  -sessions string   Badger session store directory (default "data/sessions")
  -uploads string    Upload directory (default "uploads")
  -origin string     Allowed CORS origin (default "http://localhost:3000")
  -secure-cookies    Mark session cookies Secure (serve behind TLS)
`
	fmt.Println(helpText)
}

func serve(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "listen address")
	dbPath := fs.String("db", "data/board.db", "sqlite database file")
	sessionsPath := fs.String("sessions", "data/sessions", "session store directory")
	uploadsDir := fs.String("uploads", "uploads", "upload directory")
	origin := fs.String("origin", "http://localhost:3000", "allowed CORS origin")
	secureCookies := fs.Bool("secure-cookies", false, "mark session cookies Secure")
	fs.Parse(args)

	if port := os.Getenv("PORT"); port != "" {
		*addr = ":" + port
	}

	if dir := filepath.Dir(*dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}

	db, err := repositories.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	store, err := sessions.NewStore(*sessionsPath, sessionTTL)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer store.Close()

	saver, err := uploads.NewSaver(*uploadsDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	router := routes.Setup(db, store, saver, routes.Options{
		AllowOrigin:   *origin,
		SecureCookies: *secureCookies,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting community board API on %s", *addr)
	if err := routes.StartServer(ctx, *addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
