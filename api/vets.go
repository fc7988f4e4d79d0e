package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binayakjoshi/furever-sub000/external/overpass"
	"github.com/binayakjoshi/furever-sub000/schema"
	"github.com/binayakjoshi/furever-sub000/vets"
)

type nearbyVetsParams struct {
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
	Radius *int     `json:"radius"`
	SortBy string   `json:"sortBy"`
}

// nearbyVets is the API to discover veterinary facilities around a coordinate
func (s *Server) nearbyVets(c *gin.Context) {
	var params nearbyVetsParams
	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorMessageInvalidParameters, err)
		return
	}

	if params.Lat == nil || params.Lng == nil || params.Radius == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorMessageInvalidParameters,
			fmt.Errorf("lat, lng and radius are required"))
		return
	}

	sortBy := vets.SortByDistance
	if params.SortBy != "" {
		sortBy = vets.SortMode(params.SortBy)
	}

	center := schema.Location{
		Latitude:  *params.Lat,
		Longitude: *params.Lng,
	}

	facilities, err := s.finder.FindNearbyVets(center, *params.Radius, sortBy)
	if err != nil {
		switch {
		case errors.Is(err, vets.ErrInvalidLocation), errors.Is(err, vets.ErrInvalidRadius):
			abortWithEncoding(c, http.StatusBadRequest, err.Error())
		default:
			var statusErr *overpass.StatusError
			if errors.As(err, &statusErr) {
				abortWithEncoding(c, http.StatusInternalServerError, errorMessageUpstream, err)
			} else {
				abortWithEncoding(c, http.StatusInternalServerError, errorMessageInternalServer, err)
			}
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("found %d veterinary facilities nearby", len(facilities)),
		"data":    facilities,
		"searchParams": gin.H{
			"lat":    *params.Lat,
			"lng":    *params.Lng,
			"radius": *params.Radius,
			"sortBy": sortBy,
		},
	})
}
