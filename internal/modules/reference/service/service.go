package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ummahconnect/backend/pkg/apperror"
)

// ReferenceService proxies the read-only Islamic reference endpoints to the
// AlAdhan API. There is no internal logic here; upstream payloads pass
// through as-is and upstream failures surface as 502s with the error
// summarized.
type ReferenceService interface {
	PrayerTimes(ctx context.Context, city, country string) (json.RawMessage, error)
	Qibla(ctx context.Context, latitude, longitude string) (json.RawMessage, error)
	AsmaUlHusna(ctx context.Context) (json.RawMessage, error)
}

type referenceService struct {
	baseURL string
	client  *http.Client
}

func NewReferenceService(baseURL string, timeout time.Duration) ReferenceService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &referenceService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *referenceService) PrayerTimes(ctx context.Context, city, country string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/timingsByCity?city=%s&country=%s",
		s.baseURL, url.QueryEscape(city), url.QueryEscape(country))
	return s.get(ctx, endpoint)
}

func (s *referenceService) Qibla(ctx context.Context, latitude, longitude string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/qibla/%s/%s",
		s.baseURL, url.PathEscape(latitude), url.PathEscape(longitude))
	return s.get(ctx, endpoint)
}

func (s *referenceService) AsmaUlHusna(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx, s.baseURL+"/asmaAlHusna")
}

func (s *referenceService) get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperror.New(0, fmt.Sprintf("reference service unreachable: %v", err), apperror.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.New(0, fmt.Sprintf("reference service returned status %d", resp.StatusCode), apperror.ErrUpstream)
	}

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperror.New(0, "reference service returned malformed payload", apperror.ErrUpstream)
	}
	return payload, nil
}
