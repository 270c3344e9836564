package savePhoto

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"photofolio/internal/http-server/middleware/owner"
	"photofolio/internal/lib/api/response"
	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/lib/sanitize"
	"photofolio/internal/models"
	"photofolio/internal/photos"
)

// formOverhead is the room left for the text fields next to the file.
const formOverhead = 1 << 20

type Response struct {
	response.Response
	Photo *models.Photo `json:"photo,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PhotoUploader
type PhotoUploader interface {
	Upload(ctx context.Context, ownerID string, in photos.UploadInput) (*models.Photo, error)
}

// New uploads a photo and generates all of its renditions.
// @Summary      Uploads a photo
// @Description  Stores the image in every rendition size of the owner and returns the photo record
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-Owner-ID   header    string  true   "Owner ID"
// @Param        image        formData  file    true   "Image file (jpeg, png or webp)"
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Param        tags         formData  string  false  "Comma separated tags"
// @Param        gallery_id   formData  int     false  "Gallery to add the photo to"
// @Success      200  {object}  savePhoto.Response
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/photos [post]
func New(log *slog.Logger, uploader PhotoUploader, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.photo.savePhoto.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+formOverhead)

		file, header, err := r.FormFile("image")
		if err != nil {
			log.Error("failed to get file from request", sl.Err(err))

			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("file is too large"))
				return
			}

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to get file from request"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
		if err != nil {
			log.Error("failed to read file", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read file"))
			return
		}

		in := photos.UploadInput{
			File:     data,
			Filename: header.Filename,
			Title:    r.FormValue("title"),
		}

		if desc := r.FormValue("description"); desc != "" {
			in.Description = &desc
		}

		in.Tags = sanitize.SplitTags(r.FormValue("tags"))

		if raw := r.FormValue("gallery_id"); raw != "" {
			galleryID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				log.Error("invalid gallery id", slog.String("gallery_id", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid gallery_id"))
				return
			}
			in.GalleryID = &galleryID
		}

		photo, err := uploader.Upload(r.Context(), owner.ID(r.Context()), in)
		if err != nil {
			log.Error("failed to upload photo", sl.Err(err))
			render.Status(r, response.HTTPStatus(err))
			render.JSON(w, r, response.Error(apperr.Message(err, "failed to upload photo")))
			return
		}

		log.Info("photo uploaded", slog.Int64("id", photo.ID), slog.String("image_id", photo.ImageID.String()))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Photo:    photo,
		})
	}
}
