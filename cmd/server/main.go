package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/uid0/openmakersuite/internal/api"
	"github.com/uid0/openmakersuite/internal/cards"
	"github.com/uid0/openmakersuite/internal/config"
	imagepkg "github.com/uid0/openmakersuite/internal/image"
	"github.com/uid0/openmakersuite/internal/inventory"
	"github.com/uid0/openmakersuite/internal/render"
	"github.com/uid0/openmakersuite/internal/storage"
)

func main() {
	config.LoadEnv()
	cfg := config.FromEnv()

	// Load inventory seed at startup (best-effort)
	repo := inventory.NewMemoryRepo()
	if err := repo.LoadFile(cfg.SeedFile); err != nil {
		log.WithError(err).Warn("failed to load inventory seed")
	}

	svc := render.NewService(
		imagepkg.NewQRProvider(),
		imagepkg.NewPhotoLoader(),
		storage.NewBlobStore(cfg.MediaRoot, cfg.MediaURL),
		cfg.FrontendURL,
		cards.ByName(cfg.Template),
	)

	r := gin.Default()
	api.RegisterRoutes(r, &api.Handlers{
		Svc:  svc,
		Repo: repo,
		QR:   imagepkg.NewQRProvider(),
	})
	r.Static(cfg.MediaURL, cfg.MediaRoot)

	log.Infof("starting server on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
