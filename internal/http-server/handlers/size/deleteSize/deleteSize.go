package deleteSize

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"photofolio/internal/customsizes"
	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/api/response"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
)

type Response struct {
	response.Response
	Deleted int      `json:"deleted"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SizeDeleter
type SizeDeleter interface {
	DeleteSize(ctx context.Context, ownerID, name string, deleteFiles bool) (*customsizes.DeleteSizeResult, error)
}

// New deletes a custom size.
// @Summary      Deletes a custom rendition size
// @Tags         sizes
// @Produce      json
// @Param        X-Owner-ID    header  string  true   "Owner ID"
// @Param        name          path    string  true   "Size name"
// @Param        delete_files  query   bool    false  "Also delete the renditions of this size"
// @Success      200  {object}  deleteSize.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/sizes/{name} [delete]
func New(log *slog.Logger, deleter SizeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.size.deleteSize.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		name := chi.URLParam(r, "name")
		if name == "" {
			log.Error("size name is empty")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid size name"))
			return
		}

		deleteFiles := false
		if raw := r.URL.Query().Get("delete_files"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				log.Error("invalid delete_files", slog.String("delete_files", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid delete_files"))
				return
			}
			deleteFiles = v
		}

		res, err := deleter.DeleteSize(r.Context(), owner.ID(r.Context()), name, deleteFiles)
		if err != nil {
			log.Error("failed to delete size", slog.String("name", name), sl.Err(err))
			render.Status(r, response.HTTPStatus(err))
			render.JSON(w, r, response.Error(apperr.Message(err, "failed to delete size")))
			return
		}

		log.Info("size deleted", slog.String("name", name), slog.Int("deleted", res.Deleted), slog.Int("failed", res.Failed))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Deleted:  res.Deleted,
			Failed:   res.Failed,
			Errors:   res.Errors,
		})
	}
}
