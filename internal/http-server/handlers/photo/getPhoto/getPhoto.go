package getPhoto

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"photofolio/internal/lib/api/response"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/photos"
)

type Response struct {
	response.Response
	Photo *photos.PublicPhoto `json:"photo,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PublicPhotoGetter
type PublicPhotoGetter interface {
	GetPublic(ctx context.Context, imageID uuid.UUID) (*photos.PublicPhoto, error)
}

// New serves the public view of a photo.
// @Summary      Gets a public photo
// @Description  Returns metadata and rendition URLs for the front-end site
// @Tags         public
// @Produce      json
// @Param        imageId  path  string  true  "Image ID"
// @Success      200  {object}  getPhoto.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /public/photos/{imageId} [get]
func New(log *slog.Logger, getter PublicPhotoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.getPhoto.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		imageID, err := uuid.Parse(chi.URLParam(r, "imageId"))
		if err != nil {
			log.Error("failed to parse image ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid image ID"))
			return
		}

		photo, err := getter.GetPublic(r.Context(), imageID)
		if err != nil {
			log.Warn("failed to get photo", slog.String("image_id", imageID.String()), sl.Err(err))
			render.Status(r, response.HTTPStatus(err))
			render.JSON(w, r, response.Error(apperr.Message(err, "failed to get photo")))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Photo:    photo,
		})
	}
}
