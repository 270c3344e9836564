package listSizes

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/api/response"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/sizes"
)

type Response struct {
	response.Response
	Sizes []sizes.Spec `json:"sizes"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SizeLister
type SizeLister interface {
	Sizes(ctx context.Context, ownerID string) ([]sizes.Spec, error)
}

// New lists the built-in and custom rendition sizes of the owner.
// @Summary      Lists rendition sizes
// @Tags         sizes
// @Produce      json
// @Param        X-Owner-ID  header  string  true  "Owner ID"
// @Success      200  {object}  listSizes.Response
// @Failure      500  {object}  response.Response
// @Router       /api/sizes [get]
func New(log *slog.Logger, lister SizeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.size.listSizes.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		list, err := lister.Sizes(r.Context(), owner.ID(r.Context()))
		if err != nil {
			log.Error("failed to list sizes", sl.Err(err))
			render.Status(r, response.HTTPStatus(err))
			render.JSON(w, r, response.Error(apperr.Message(err, "failed to list sizes")))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Sizes:    list,
		})
	}
}
