package showPhoto

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/api/response"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/models"
)

type Response struct {
	response.Response
	Photo *models.Photo `json:"photo,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoGetter
type PhotoGetter interface {
	Get(ctx context.Context, ownerID string, id int64) (*models.Photo, error)
}

// New returns one of the owner's photo records.
// @Summary      Gets a photo
// @Tags         photos
// @Produce      json
// @Param        X-Owner-ID  header  string  true  "Owner ID"
// @Param        id          path    int     true  "Photo ID"
// @Success      200  {object}  showPhoto.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/photos/{id} [get]
func New(log *slog.Logger, getter PhotoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.showPhoto.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("failed to parse photo ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid photo ID"))
			return
		}

		photo, err := getter.Get(r.Context(), owner.ID(r.Context()), id)
		if err != nil {
			log.Warn("failed to get photo", slog.Int64("id", id), sl.Err(err))
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
