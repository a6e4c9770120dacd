package data

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/contactkeval/digital-pricer/internal/logger"
)

// polygonDataProvider implements Provider using the Polygon.io aggs API.
type polygonDataProvider struct {
	apiKey    string
	client    *http.Client
	secondary Provider
}

// NewPolygonDataProvider constructs a Polygon-backed provider. A non-nil
// secondary is consulted when the aggs request fails or returns no bars.
func NewPolygonDataProvider(apiKey string, secondary Provider) Provider {
	logger.Infof("initializing Polygon data provider")
	return &polygonDataProvider{
		apiKey:    apiKey,
		client:    &http.Client{Timeout: 30 * time.Second},
		secondary: secondary,
	}
}

func (polygonDataProv *polygonDataProvider) Secondary() Provider {
	return polygonDataProv.secondary
}

func (polygonDataProv *polygonDataProvider) GetDailyBars(underlying string, fromDate, toDate time.Time) ([]Bar, error) {
	bars, err := polygonDataProv.fetchDailyBars(underlying, fromDate, toDate)
	if (err != nil || len(bars) == 0) && polygonDataProv.secondary != nil {
		logger.Warnf("polygon bars for %s unavailable (%v) - falling back to secondary provider", underlying, err)
		return polygonDataProv.secondary.GetDailyBars(underlying, fromDate, toDate)
	}
	return bars, err
}

func (polygonDataProv *polygonDataProvider) fetchDailyBars(underlying string, fromDate, toDate time.Time) ([]Bar, error) {
	base := "https://api.polygon.io"
	url := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s?adjusted=true&sort=asc&limit=50000&apiKey=%s",
		base, underlying, fromDate.Format("2006-01-02"), toDate.Format("2006-01-02"), polygonDataProv.apiKey)
	logger.Debugf("fetching daily bars for %s [%s .. %s]",
		underlying, fromDate.Format("2006-01-02"), toDate.Format("2006-01-02"))

	req, _ := http.NewRequest("GET", url, nil)
	resp, err := polygonDataProv.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("polygon aggs status %d", resp.StatusCode)
	}

	var body struct {
		Results []struct {
			Time  int64   `json:"t"`
			Open  float64 `json:"o"`
			High  float64 `json:"h"`
			Low   float64 `json:"l"`
			Close float64 `json:"c"`
			Vol   float64 `json:"v"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	out := make([]Bar, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, Bar{Date: time.UnixMilli(r.Time).UTC(), Open: r.Open, High: r.High, Low: r.Low, Close: r.Close, Vol: r.Vol})
	}
	logger.Debugf("got %d bars for %s", len(out), underlying)
	return out, nil
}
