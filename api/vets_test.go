package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/binayakjoshi/furever-sub000/external/overpass"
	"github.com/binayakjoshi/furever-sub000/schema"
	"github.com/binayakjoshi/furever-sub000/vets"
	"github.com/binayakjoshi/furever-sub000/vets/mocks"
)

func performNearbyRequest(t *testing.T, finder vets.Finder, body interface{}) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	server := NewServer(nil, finder, nil, false)

	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/vets/nearby", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	server.setupRouter().ServeHTTP(w, req)

	return w
}

func TestNearbyVetsMissingParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mocks.NewMockFinder(ctrl)

	w := performNearbyRequest(t, finder, map[string]interface{}{"lat": 27.7})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestNearbyVetsInvalidRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mocks.NewMockFinder(ctrl)
	finder.EXPECT().
		FindNearbyVets(schema.Location{Latitude: 27.7, Longitude: 85.3}, 50, vets.SortByDistance).
		Return(nil, vets.ErrInvalidRadius)

	w := performNearbyRequest(t, finder, map[string]interface{}{
		"lat": 27.7, "lng": 85.3, "radius": 50,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNearbyVetsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	facilities := []schema.Facility{
		{
			ID:           "node/42",
			Name:         "Valley Vet",
			Location:     schema.Location{Latitude: 27.71, Longitude: 85.32},
			DistanceKm:   1.23,
			DistanceText: "1.2 km",
			FacilityType: schema.FacilityTypeVeterinaryClinic,
			Specialties:  []string{},
		},
	}

	finder := mocks.NewMockFinder(ctrl)
	finder.EXPECT().
		FindNearbyVets(schema.Location{Latitude: 27.7, Longitude: 85.3}, 5000, vets.SortByName).
		Return(facilities, nil)

	w := performNearbyRequest(t, finder, map[string]interface{}{
		"lat": 27.7, "lng": 85.3, "radius": 5000, "sortBy": "name",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success      bool              `json:"success"`
		Message      string            `json:"message"`
		Data         []schema.Facility `json:"data"`
		SearchParams struct {
			Lat    float64 `json:"lat"`
			Lng    float64 `json:"lng"`
			Radius int     `json:"radius"`
			SortBy string  `json:"sortBy"`
		} `json:"searchParams"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, facilities, resp.Data)
	assert.Equal(t, 27.7, resp.SearchParams.Lat)
	assert.Equal(t, 85.3, resp.SearchParams.Lng)
	assert.Equal(t, 5000, resp.SearchParams.Radius)
	assert.Equal(t, "name", resp.SearchParams.SortBy)
}

func TestNearbyVetsUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mocks.NewMockFinder(ctrl)
	finder.EXPECT().
		FindNearbyVets(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &overpass.StatusError{StatusCode: http.StatusGatewayTimeout})

	w := performNearbyRequest(t, finder, map[string]interface{}{
		"lat": 27.7, "lng": 85.3, "radius": 5000,
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, errorMessageUpstream, resp.Message)
}
