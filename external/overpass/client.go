package overpass

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
)

// Center carries the representative point Overpass returns for ways and
// relations when the query asks for `out center`.
type Center struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *Center           `json:"center"`
	Tags   map[string]string `json:"tags"`
}

// Coordinate resolves the element point, falling back to the center point
// for non-node geometries. ok is false when neither is present.
func (e Element) Coordinate() (lat, lon float64, ok bool) {
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}
	if e.Center != nil {
		return e.Center.Latitude, e.Center.Longitude, true
	}
	return 0, 0, false
}

// StatusError is returned when the Overpass endpoint answers with a
// non-success HTTP status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("overpass responded with status %d", e.StatusCode)
}

type OverpassClient struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string) *OverpassClient {
	return &OverpassClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Query posts one Overpass QL statement and decodes the returned elements.
func (o *OverpassClient) Query(query string) ([]Element, error) {
	log.WithField("prefix", "overpass").WithField("query", query).Debug("request to overpass")

	resp, err := o.client.PostForm(o.endpoint, url.Values{
		"data": []string{query},
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		dumpBytes, err := httputil.DumpResponse(resp, true)
		if err != nil {
			log.WithField("prefix", "overpass").WithError(err).Error("fail to dump response")
		}
		log.WithField("prefix", "overpass").WithField("resp", string(dumpBytes)).Error("error response from overpass")
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var result struct {
		Elements []Element `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.Elements, nil
}
