package usage

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"photofolio/internal/footprint"
	"photofolio/internal/lib/api/response"
)

type Response struct {
	response.Response
	footprint.Usage
	Used  string `json:"used"`
	Limit string `json:"limit"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsageSummarizer
type UsageSummarizer interface {
	UsageSummary(ctx context.Context) footprint.Usage
}

// New reports the disk space used by renditions against the quota.
// @Summary      Storage usage
// @Tags         usage
// @Produce      json
// @Param        X-Owner-ID  header  string  true  "Owner ID"
// @Success      200  {object}  usage.Response
// @Router       /api/usage [get]
func New(log *slog.Logger, summarizer UsageSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.usage.New"

		u := summarizer.UsageSummary(r.Context())

		log.Debug("usage computed", slog.String("op", op), slog.Int64("used_bytes", u.UsedBytes))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Usage:    u,
			Used:     footprint.FormatBytes(u.UsedBytes),
			Limit:    footprint.FormatBytes(u.LimitBytes),
		})
	}
}
