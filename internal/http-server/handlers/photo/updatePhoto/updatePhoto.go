package updatePhoto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/api/response"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/models"
	"photofolio/internal/photos"
)

type Request struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"max=50"`
}

type Response struct {
	response.Response
	Photo *models.Photo `json:"photo,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoUpdater
type PhotoUpdater interface {
	Update(ctx context.Context, ownerID string, id int64, in photos.UpdateInput) (*models.Photo, error)
}

// New updates the metadata of a photo.
// @Summary      Updates a photo
// @Description  Replaces title, description and tags; renditions are untouched
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID  header  string                 true  "Owner ID"
// @Param        id          path    int                    true  "Photo ID"
// @Param        request     body    updatePhoto.Request    true  "New metadata"
// @Success      200  {object}  updatePhoto.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/photos/{id} [patch]
func New(log *slog.Logger, updater PhotoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.updatePhoto.New"

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

		var req Request
		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		photo, err := updater.Update(r.Context(), owner.ID(r.Context()), id, photos.UpdateInput{
			Title:       req.Title,
			Description: req.Description,
			Tags:        req.Tags,
		})
		if err != nil {
			log.Error("failed to update photo", slog.Int64("id", id), sl.Err(err))
			render.Status(r, response.HTTPStatus(err))
			render.JSON(w, r, response.Error(apperr.Message(err, "failed to update photo")))
			return
		}

		log.Info("photo updated", slog.Int64("id", id))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Photo:    photo,
		})
	}
}
