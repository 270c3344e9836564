package bulkDelete

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
	IDs []int64 `json:"ids" validate:"required,min=1,max=500"`
}

type Response struct {
	response.Response
	Total   int                  `json:"total"`
	Deleted []int64              `json:"deleted"`
	Failed  []photos.BulkFailure `json:"failed"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BulkDeleter
type BulkDeleter interface {
	BulkDelete(ctx context.Context, ownerID string, ids []int64) (*photos.BulkDeleteResult, error)
}

// New deletes several photos; per photo failures are reported, not raised.
// @Summary      Deletes photos in bulk
// @Description  Every id must exist; afterwards each photo is deleted independently. total is the number of ids sent.
// @Tags         photos
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID  header  string              true  "Owner ID"
// @Param        request     body    bulkDelete.Request  true  "Photo IDs"
// @Success      200  {object}  bulkDelete.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/photos/bulk-delete [post]
func New(log *slog.Logger, deleter BulkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.bulkDelete.New"

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

		res, err := deleter.BulkDelete(r.Context(), owner.ID(r.Context()), req.IDs)
		if err != nil {
			log.Error("bulk delete failed", sl.Err(err))
			render.Status(r, response.HTTPStatus(err))
			render.JSON(w, r, response.Error(apperr.Message(err, "failed to delete photos")))
			return
		}

		log.Info("bulk delete done", slog.Int("deleted", len(res.Deleted)), slog.Int("failed", len(res.Failed)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Total:    res.Total,
			Deleted:  res.Deleted,
			Failed:   res.Failed,
		})
	}
}
