// Package router assembles the HTTP API: the owner-scoped management routes
// under /api, the rate limited public routes and the static rendition files.
package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"photofolio/internal/http-server/handlers/photo/bulkDelete"
	"photofolio/internal/http-server/handlers/photo/bulkGallery"
	"photofolio/internal/http-server/handlers/photo/deletePhoto"
	"photofolio/internal/http-server/handlers/photo/getPhoto"
	"photofolio/internal/http-server/handlers/photo/savePhoto"
	"photofolio/internal/http-server/handlers/photo/showPhoto"
	"photofolio/internal/http-server/handlers/photo/updatePhoto"
	"photofolio/internal/http-server/handlers/size/addSize"
	"photofolio/internal/http-server/handlers/size/deleteSize"
	"photofolio/internal/http-server/handlers/size/listSizes"
	"photofolio/internal/http-server/handlers/usage"
	"photofolio/internal/http-server/middleware/mwlogger"
	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/http-server/middleware/ratelimit"
)

type PhotoService interface {
	savePhoto.PhotoUploader
	showPhoto.PhotoGetter
	updatePhoto.PhotoUpdater
	deletePhoto.PhotoDeleter
	bulkDelete.BulkDeleter
	bulkGallery.GalleryLinker
	getPhoto.PublicPhotoGetter
}

type SizeService interface {
	listSizes.SizeLister
	addSize.SizeAdder
	deleteSize.SizeDeleter
}

type Config struct {
	OwnerHeader    string
	MaxUploadBytes int64
	// FilesRoot is served under FilesPrefix.
	FilesRoot   string
	FilesPrefix string
	// Limiter guards /public; nil disables limiting.
	Limiter *ratelimit.Limiter
}

func New(
	log *slog.Logger,
	cfg Config,
	photoSvc PhotoService,
	sizeSvc SizeService,
	usageSvc usage.UsageSummarizer,
) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/api", func(r chi.Router) {
		r.Use(owner.New(log, cfg.OwnerHeader))

		r.Post("/photos", savePhoto.New(log, photoSvc, cfg.MaxUploadBytes))
		r.Post("/photos/bulk-delete", bulkDelete.New(log, photoSvc))
		r.Post("/photos/bulk-gallery", bulkGallery.New(log, photoSvc))
		r.Get("/photos/{id}", showPhoto.New(log, photoSvc))
		r.Patch("/photos/{id}", updatePhoto.New(log, photoSvc))
		r.Delete("/photos/{id}", deletePhoto.New(log, photoSvc))

		r.Get("/sizes", listSizes.New(log, sizeSvc))
		r.Post("/sizes", addSize.New(log, sizeSvc))
		r.Delete("/sizes/{name}", deleteSize.New(log, sizeSvc))

		r.Get("/usage", usage.New(log, usageSvc))
	})

	router.Route("/public", func(r chi.Router) {
		if cfg.Limiter != nil {
			r.Use(ratelimit.New(log, cfg.Limiter))
		}

		r.Get("/photos/{imageId}", getPhoto.New(log, photoSvc))
	})

	if cfg.FilesRoot != "" {
		prefix := "/" + strings.Trim(cfg.FilesPrefix, "/") + "/"
		router.Handle(prefix+"*", http.StripPrefix(prefix, fileServer(cfg.FilesRoot)))
	}

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return router
}

// fileServer serves rendition files only. Directories answer 404 so the
// image ids in the tree cannot be enumerated.
func fileServer(root string) http.Handler {
	dir := http.Dir(root)
	files := http.FileServer(dir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Path
		if name == "" || strings.HasSuffix(name, "/") {
			http.NotFound(w, r)
			return
		}

		f, err := dir.Open(name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		info, err := f.Stat()
		_ = f.Close()
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		files.ServeHTTP(w, r)
	})
}
