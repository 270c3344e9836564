package router_test

import (
	"bytes"
	"image/color"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/require"

	"photofolio/internal/customsizes"
	"photofolio/internal/footprint"
	"photofolio/internal/http-server/middleware/ratelimit"
	"photofolio/internal/http-server/router"
	"photofolio/internal/lib/keylock"
	"photofolio/internal/lib/logger/handlers/slogdiscard"
	"photofolio/internal/photos"
	"photofolio/internal/renditions"
	"photofolio/internal/sizes"
	"photofolio/internal/storage/memory"
	"photofolio/internal/transcoder"
)

const ownerHeader = "X-Owner-ID"

func newServer(t *testing.T, limiter *ratelimit.Limiter) *httptest.Server {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()
	root := filepath.Join(t.TempDir(), "photos")

	store, err := renditions.New(log, renditions.Config{
		Root:        root,
		URLPrefix:   "/photos",
		Ext:         "jpg",
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)

	repo := memory.New()
	registry := sizes.NewRegistry(log, repo)
	tc := transcoder.New(transcoder.JPEGEncoder{})
	acct := footprint.New(log, store, nil, 0)
	locks := &keylock.Locker{}

	manager := photos.New(log, repo, registry, tc, store, acct, photos.Config{}, photos.WithLocker(locks))
	maintainer := customsizes.New(log, repo, repo, registry, tc, store, acct, customsizes.WithLocker(locks))

	srv := httptest.NewServer(router.New(log, router.Config{
		OwnerHeader:    ownerHeader,
		MaxUploadBytes: photos.DefaultMaxUploadBytes,
		FilesRoot:      root,
		FilesPrefix:    "/photos",
		Limiter:        limiter,
	}, manager, maintainer, acct))
	t.Cleanup(srv.Close)

	return srv
}

func jpegFixture(t *testing.T) []byte {
	t.Helper()

	img := imaging.New(1600, 1200, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))

	return buf.Bytes()
}

func TestPhotoLifecycle(t *testing.T) {
	srv := newServer(t, nil)
	e := httpexpect.Default(t, srv.URL)

	e.POST("/api/photos").
		Expect().
		Status(http.StatusUnauthorized).
		JSON().Object().
		Value("error").String().IsEqual("unauthorized")

	photo := e.POST("/api/photos").
		WithHeader(ownerHeader, "alice").
		WithMultipart().
		WithFile("image", "sunset.jpg", bytes.NewReader(jpegFixture(t))).
		WithFormField("title", "Sunset").
		WithFormField("tags", "sky, sea, sky").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("photo").Object()

	photo.Value("title").String().IsEqual("Sunset")
	photo.Value("tags").Array().ConsistsOf("sky", "sea")
	photo.Value("asset_footprint").Number().Gt(0)

	id := int64(photo.Value("id").Number().Raw())
	imageID := photo.Value("image_id").String().Raw()

	e.GET("/api/photos/{id}", id).
		WithHeader(ownerHeader, "alice").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("photo").Object().
		Value("image_id").String().IsEqual(imageID)

	e.GET("/api/photos/{id}", id).
		WithHeader(ownerHeader, "bob").
		Expect().
		Status(http.StatusNotFound)

	public := e.GET("/public/photos/{imageId}", imageID).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("photo").Object()

	renditionURLs := public.Value("renditions").Object()
	renditionURLs.Keys().Length().IsEqual(6)

	thumbnail := renditionURLs.Value("thumbnail").String().Raw()
	require.Equal(t, "/photos/"+imageID+"/thumbnail.jpg", thumbnail)

	e.GET(thumbnail).
		Expect().
		Status(http.StatusOK).
		ContentType("image/jpeg")

	for _, dir := range []string{"/photos/", "/photos/" + imageID + "/", "/photos/" + imageID} {
		e.GET(dir).
			Expect().
			Status(http.StatusNotFound)
	}

	e.PATCH("/api/photos/{id}", id).
		WithHeader(ownerHeader, "alice").
		WithJSON(map[string]any{"title": "Golden hour", "tags": []string{"sun"}}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("photo").Object().
		Value("title").String().IsEqual("Golden hour")

	e.POST("/api/sizes").
		WithHeader(ownerHeader, "alice").
		WithJSON(map[string]any{"name": "banner", "width": 1000, "height": 300, "quality": 80, "process_existing": true}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("processed").Number().IsEqual(1)

	e.GET("/photos/" + imageID + "/banner.jpg").
		Expect().
		Status(http.StatusOK)

	e.GET("/api/sizes").
		WithHeader(ownerHeader, "alice").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("sizes").Array().Length().IsEqual(7)

	e.POST("/api/sizes").
		WithHeader(ownerHeader, "alice").
		WithJSON(map[string]any{"name": "thumbnail", "width": 10, "height": 10, "quality": 10}).
		Expect().
		Status(http.StatusConflict)

	e.GET("/api/usage").
		WithHeader(ownerHeader, "alice").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("used_bytes").Number().Gt(0)

	e.DELETE("/api/sizes/banner").
		WithHeader(ownerHeader, "alice").
		WithQuery("delete_files", "true").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("deleted").Number().IsEqual(1)

	e.GET("/photos/" + imageID + "/banner.jpg").
		Expect().
		Status(http.StatusNotFound)

	e.POST("/api/photos/bulk-gallery").
		WithHeader(ownerHeader, "alice").
		WithJSON(map[string]any{"ids": []int64{id}, "gallery_id": 7}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("added").Number().IsEqual(1)

	e.POST("/api/photos/bulk-delete").
		WithHeader(ownerHeader, "alice").
		WithJSON(map[string]any{"ids": []int64{id, 999}}).
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().
		Value("error").String().Contains("999")

	e.DELETE("/api/photos/{id}", id).
		WithHeader(ownerHeader, "alice").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("status").String().IsEqual("OK")

	e.GET("/api/photos/{id}", id).
		WithHeader(ownerHeader, "alice").
		Expect().
		Status(http.StatusNotFound)

	e.GET("/public/photos/{imageId}", imageID).
		Expect().
		Status(http.StatusNotFound)

	e.GET(thumbnail).
		Expect().
		Status(http.StatusNotFound)
}

func TestInvalidUpload(t *testing.T) {
	srv := newServer(t, nil)
	e := httpexpect.Default(t, srv.URL)

	e.POST("/api/photos").
		WithHeader(ownerHeader, "alice").
		WithMultipart().
		WithFile("image", "notes.txt", bytes.NewReader([]byte("just some text"))).
		WithFormField("title", "Notes").
		Expect().
		Status(http.StatusBadRequest)

	e.POST("/api/photos").
		WithHeader(ownerHeader, "alice").
		WithMultipart().
		WithFormField("title", "No file").
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().
		Value("error").String().Contains("file from request")
}

func TestPublicRateLimit(t *testing.T) {
	srv := newServer(t, ratelimit.NewLimiter(0.001, 1))
	e := httpexpect.Default(t, srv.URL)

	unknown := "00000000-0000-0000-0000-000000000000"

	e.GET("/public/photos/{imageId}", unknown).
		Expect().
		Status(http.StatusNotFound)

	e.GET("/public/photos/{imageId}", unknown).
		Expect().
		Status(http.StatusTooManyRequests).
		Header("Retry-After").IsEqual("1")
}
