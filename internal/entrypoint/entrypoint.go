package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	"github.com/bookcase-app/bookcase/internal/config"
	"github.com/bookcase-app/bookcase/internal/database"
	"github.com/bookcase-app/bookcase/internal/database/authors"
	"github.com/bookcase-app/bookcase/internal/database/books"
	http_controllers "github.com/bookcase-app/bookcase/internal/http"
	"github.com/bookcase-app/bookcase/internal/search"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests within the
	// configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookcase v%s", version)

	// The store credentials are the one hard startup requirement. Missing
	// credentials are a fatal configuration error, reported all at once.
	if !cfg.Firebase.HasCredentials() {
		log.Fatalf("Firestore credentials are not configured. Missing: %s",
			strings.Join(cfg.Firebase.MissingCredentials(), ", "))
	}

	ctx := context.Background()
	store, err := newStore(ctx, cfg.Firebase)
	if err != nil {
		log.Fatalf("Failed to connect to the document store: %v", err)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Authors: authors.NewRepository(store),
		Books:   books.NewRepository(store),
		Search:  search.NewService(store),
		Store:   store,
		Version: version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if err := store.Close(); err != nil {
			log.Printf("Error closing the store client: %v", err)
		}
	})
}

// newStore builds the single per-process Firestore client, preferring a
// credentials file over inline service-account fields.
func newStore(ctx context.Context, fb config.Firebase) (*database.Firestore, error) {
	if fb.CredentialsFile != "" {
		return database.NewFirestore(ctx, fb.ProjectID, option.WithCredentialsFile(fb.CredentialsFile))
	}

	credentials, err := database.ServiceAccount{
		ProjectID:   fb.ProjectID,
		ClientEmail: fb.ClientEmail,
		PrivateKey:  fb.PrivateKey,
	}.CredentialsJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to assemble service account credentials: %w", err)
	}
	return database.NewFirestore(ctx, fb.ProjectID, option.WithCredentialsJSON(credentials))
}
