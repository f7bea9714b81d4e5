package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"lostfound/auth"
	"lostfound/config"
	"lostfound/db"
	"lostfound/handlers"
	"lostfound/i18n"

	"github.com/gorilla/csrf"
)

func main() {
	if err := config.LoadConfig("config.json"); err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if err := i18n.LoadTranslations("i18n"); err != nil {
		log.Fatalf("Error loading translations: %v", err)
	}

	registry, err := auth.NewRegistry(config.AppConfig.AuthPolicy, config.AppConfig.Users)
	if err != nil {
		log.Fatalf("Error building credential registry: %v", err)
	}
	if config.AppConfig.AuthPolicy == auth.PolicyPlaintext {
		log.Println("WARNING: plaintext credential policy is enabled. Use it for testing only.")
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, 0o755); err != nil {
		log.Fatalf("Error creating upload directory: %v", err)
	}

	db.InitDB(config.AppConfig.DBPath)
	defer db.DB.Close()

	auth.InitStore()

	mux := http.NewServeMux()

	// Static files and stored uploads
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.AppConfig.UploadDir))))

	// Register application handlers
	handlers.RegisterHandlers(mux, registry)

	addr := fmt.Sprintf("%s:%d", config.AppConfig.ListenIP, config.AppConfig.ListenPort)
	log.Printf("Server starting on %s (%s)", addr, config.AppConfig.AppName)

	// CSRF Protection
	csrfMiddleware := csrf.Protect(
		[]byte(config.AppConfig.SessionKey),
		csrf.Secure(false), // Set to true in production with HTTPS
		csrf.Path("/"),
	)

	handler := handlers.SecurityHeadersMiddleware(csrfMiddleware(mux))
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
