package facades

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloudinaryFacade_SearchImages(t *testing.T) {
	var gotBody searchRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1_1/demo/resources/search", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(searchResponse{
			TotalCount: 2,
			Resources: []Resource{
				{PublicID: "gallery/photo-2", Width: 1920, Height: 1080, Format: "jpg", DisplayName: "photo-2"},
				{PublicID: "gallery/photo-1", Width: 800, Height: 600, Format: "png", DisplayName: "photo-1"},
			},
		})
	}))
	defer srv.Close()

	f := NewCloudinaryFacade("demo", "key", "secret", "gallery",
		WithCloudinaryAPIBaseURL(srv.URL))

	resources, err := f.SearchImages(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resources, 2)
	assert.Equal(t, "gallery/photo-2", resources[0].PublicID)

	assert.Equal(t, "folder:gallery/*", gotBody.Expression)
	assert.Equal(t, []map[string]string{{"public_id": "desc"}}, gotBody.SortBy)
	assert.Equal(t, 400, gotBody.MaxResults)
}

func TestCloudinaryFacade_SearchImages_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{TotalCount: 0, Resources: []Resource{}})
	}))
	defer srv.Close()

	f := NewCloudinaryFacade("demo", "key", "secret", "gallery",
		WithCloudinaryAPIBaseURL(srv.URL))

	resources, err := f.SearchImages(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, resources)
}

func TestCloudinaryFacade_SearchImages_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	f := NewCloudinaryFacade("demo", "key", "wrong", "gallery",
		WithCloudinaryAPIBaseURL(srv.URL))

	_, err := f.SearchImages(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCloudinaryFacade_FetchBlurPlaceholder(t *testing.T) {
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/upload/w_16,q_1,f_jpg,e_blur:1000/gallery/photo-1.jpg", r.URL.Path)
		w.Write(jpeg)
	}))
	defer srv.Close()

	f := NewCloudinaryFacade("demo", "key", "secret", "gallery",
		WithCloudinaryResBaseURL(srv.URL))

	dataURL, err := f.FetchBlurPlaceholder(context.Background(), "gallery/photo-1", "jpg")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/jpeg;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/jpeg;base64,"))
	assert.NoError(t, err)
	assert.Equal(t, jpeg, decoded)
}

func TestCloudinaryFacade_FetchBlurPlaceholder_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewCloudinaryFacade("demo", "key", "secret", "gallery",
		WithCloudinaryResBaseURL(srv.URL))

	_, err := f.FetchBlurPlaceholder(context.Background(), "gallery/missing", "jpg")
	assert.Error(t, err)
}

func TestCloudinaryFacade_ImageURL(t *testing.T) {
	f := NewCloudinaryFacade("demo", "key", "secret", "gallery")

	url := f.ImageURL("gallery/photo-1", "jpg")
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/c_scale,w_720/gallery/photo-1.jpg", url)
}
