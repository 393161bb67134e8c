package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rgopal/chitfund/internal/auth"
	"github.com/rgopal/chitfund/internal/handlers"
	"github.com/rgopal/chitfund/internal/remote"
	"github.com/rgopal/chitfund/internal/routes"
	"github.com/rgopal/chitfund/internal/store"
	"github.com/rgopal/chitfund/internal/storage/sqlite"
	"github.com/rgopal/chitfund/pkg/logging"
)

const syncDebounce = 2 * time.Second

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/chitfund.db")
	blobPath := getEnv("BLOB_PATH", "./data/chitfund_blob.json")
	syncURL := os.Getenv("SYNC_URL") // empty means local-only
	jwtSecret := getEnv("JWT_SECRET", "chitfund-dev-secret")
	tokenKey := getEnv("TOKEN_SECRET", "chitfund-default-salt")
	adminUser := getEnv("ADMIN_USERNAME", "admin")
	adminPass := getEnv("ADMIN_PASSWORD", "changeme123")
	port := getEnv("PORT", "8080")

	local, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize local storage", "error", err)
		os.Exit(1)
	}
	defer local.Close()
	slog.Info("Local storage initialized", "database", dbPath)

	var cloud *remote.Client
	if syncURL != "" {
		cloud = remote.New(syncURL)
		slog.Info("Remote sync enabled", "url", syncURL)
	} else {
		slog.Info("Remote sync disabled, running local-only")
	}

	st := store.New(local, cloud, syncDebounce)
	st.SetDirtyListener(func(dirty bool) {
		slog.Debug("Store dirty state changed", "dirty", dirty)
	})
	st.Load(context.Background())

	hash, err := auth.HashPassword(adminPass)
	if err != nil {
		slog.Error("Failed to hash bootstrap admin password", "error", err)
		os.Exit(1)
	}
	st.EnsureAdminUser("Admin User", adminUser, hash)

	jwtManager := auth.NewJWTManager(jwtSecret, 24*time.Hour)
	handler := handlers.New(st, jwtManager, tokenKey)
	blob := handlers.NewSnapshotBlob(blobPath)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, handler, jwtManager, blob)

	// h2c allows HTTP/2 without TLS behind a plain reverse proxy.
	h2cHandler := h2c.NewHandler(router, &http2.Server{})

	addr := fmt.Sprintf(":%s", port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
