package addSize

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"photofolio/internal/customsizes"
	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/api/response"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/sizes"
)

type Request struct {
	Name            string `json:"name" validate:"required"`
	Width           int    `json:"width" validate:"required"`
	Height          int    `json:"height" validate:"required"`
	Quality         int    `json:"quality" validate:"required"`
	ProcessExisting bool   `json:"process_existing"`
}

type Response struct {
	response.Response
	Size      sizes.Spec `json:"size"`
	Processed int        `json:"processed"`
	Failed    int        `json:"failed"`
	Errors    []string   `json:"errors"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SizeAdder
type SizeAdder interface {
	AddSize(ctx context.Context, ownerID string, in customsizes.AddSizeInput) (*customsizes.AddSizeResult, error)
}

// New adds a custom size, optionally generating it for existing photos.
// @Summary      Adds a custom rendition size
// @Description  Width and height are 1..4000, quality 1..100. With process_existing the size is derived for every photo from its largest rendition.
// @Tags         sizes
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID  header  string           true  "Owner ID"
// @Param        request     body    addSize.Request  true  "Size"
// @Success      200  {object}  addSize.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/sizes [post]
func New(log *slog.Logger, adder SizeAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.size.addSize.New"

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

		res, err := adder.AddSize(r.Context(), owner.ID(r.Context()), customsizes.AddSizeInput{
			Name:            req.Name,
			Width:           req.Width,
			Height:          req.Height,
			Quality:         req.Quality,
			ProcessExisting: req.ProcessExisting,
		})
		if err != nil {
			log.Error("failed to add size", slog.String("name", req.Name), sl.Err(err))
			render.Status(r, response.HTTPStatus(err))
			render.JSON(w, r, response.Error(apperr.Message(err, "failed to add size")))
			return
		}

		log.Info("size added", slog.String("name", req.Name), slog.Int("processed", res.Processed), slog.Int("failed", res.Failed))

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Size:      res.Size,
			Processed: res.Processed,
			Failed:    res.Failed,
			Errors:    res.Errors,
		})
	}
}
