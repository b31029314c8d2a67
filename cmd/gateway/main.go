package main

import (
	"context"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/BourneJH/exam-application/internal/api/http"
	"github.com/BourneJH/exam-application/internal/bank"
	"github.com/BourneJH/exam-application/internal/config"
	"github.com/BourneJH/exam-application/internal/db"
	"github.com/BourneJH/exam-application/internal/session"
	"github.com/BourneJH/exam-application/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}
	cfg := config.FromEnv()

	// --- Question bank store ---
	var store bank.Store
	if cfg.DBDriver == "memory" {
		store = bank.NewInMemoryStore()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = bank.NewSQLStore(dbh)
	}

	// --- Media blobs ---
	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// --- Sessions (memory-only by design) ---
	repo := session.NewMemoryRepo()
	builder := session.NewBuilder(nil)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	// Operator: import documents, preview the bank, attach media.
	r.Post("/bank/upload", api.UploadBankHandler(store))
	r.Get("/questions", api.ListQuestionsHandler(store))
	r.Post("/questions/{questionID}/media", api.UploadMediaHandler(store, bs))
	r.Get("/media/{questionID}/{slot}", api.ServeMediaHandler(store, bs))

	// Taker: run a timed session.
	r.Post("/sessions", api.StartSessionHandler(store, repo, builder, cfg.SessionCountMax))
	r.Get("/sessions/{sessionID}/questions/{position}", api.GetQuestionHandler(repo))
	r.Post("/sessions/{sessionID}/answers", api.AnswerHandler(repo))
	r.Post("/sessions/{sessionID}/navigate", api.NavigateHandler(repo))
	r.Post("/sessions/{sessionID}/finish", api.FinishSessionHandler(repo))
	r.Delete("/sessions/{sessionID}", api.DeleteSessionHandler(repo))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	if cfg.OpenBrowser {
		go openBrowser("http://" + cfg.HTTPAddr + "/")
	}

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func openBrowser(url string) {
	time.Sleep(time.Second) // let the listener come up first
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("open browser: %v", err)
	}
}
