package bulkGallery

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/api/response"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/photos"
)

type Request struct {
	IDs       []int64 `json:"ids" validate:"required,min=1,max=500"`
	GalleryID int64   `json:"gallery_id" validate:"required,gt=0"`
}

type Response struct {
	response.Response
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GalleryLinker
type GalleryLinker interface {
	BulkAddToGallery(ctx context.Context, ownerID string, ids []int64, galleryID int64) (*photos.GalleryResult, error)
}

// New appends photos to a gallery, skipping the ones already in it.
// @Summary      Adds photos to a gallery
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID  header  string               true  "Owner ID"
// @Param        request     body    bulkGallery.Request  true  "Photo IDs and gallery"
// @Success      200  {object}  bulkGallery.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/photos/bulk-gallery [post]
func New(log *slog.Logger, linker GalleryLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.bulkGallery.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		res, err := linker.BulkAddToGallery(r.Context(), owner.ID(r.Context()), req.IDs, req.GalleryID)
		if err != nil {
			log.Error("failed to add photos to gallery", slog.Int64("gallery_id", req.GalleryID), sl.Err(err))
			render.Status(r, response.HTTPStatus(err))
			render.JSON(w, r, response.Error(apperr.Message(err, "failed to add photos to gallery")))
			return
		}

		log.Info("photos added to gallery", slog.Int64("gallery_id", req.GalleryID), slog.Int("added", res.Added))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Added:    res.Added,
			Skipped:  res.Skipped,
		})
	}
}
