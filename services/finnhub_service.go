package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fenilmodi00/ipo-monitor/config"
	"github.com/fenilmodi00/ipo-monitor/models"
	"github.com/fenilmodi00/ipo-monitor/shared"
	"github.com/sirupsen/logrus"
)

const finnhubBaseURL = "https://finnhub.io/api/v1"

// FetchResult carries the calendar events alongside an explicit failure, so
// the job can tell "empty day" and "fetch failed" apart even though it treats
// both as zero IPOs for the rest of the pipeline.
type FetchResult struct {
	Events []models.IPOEvent
	Err    *shared.ServiceError
}

// FinnhubService fetches the IPO calendar from the Finnhub REST API
type FinnhubService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewFinnhubService creates a new Finnhub service instance
func NewFinnhubService(cfg *config.Config, client *http.Client) *FinnhubService {
	if client == nil {
		client = shared.NewHTTPClient(cfg.HTTPTimeout)
	}

	return &FinnhubService{
		apiKey:     cfg.FinnhubAPIKey,
		baseURL:    finnhubBaseURL,
		httpClient: client,
	}
}

// FetchTodaysIPOs issues one GET for the calendar scoped to today
// (from == to == local date). Single attempt, no retry. Failures are logged
// and returned in the result; the events slice is empty in that case.
func (s *FinnhubService) FetchTodaysIPOs(ctx context.Context) FetchResult {
	today := time.Now().Format("2006-01-02")

	requestURL := fmt.Sprintf("%s/calendar/ipo?from=%s&to=%s&token=%s",
		s.baseURL, today, today, url.QueryEscape(s.apiKey))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return FetchResult{Err: shared.WrapError(err, shared.ErrorCategoryNetwork,
			"REQUEST_BUILD_FAILED", "Finnhub_Service", "fetch_ipo_calendar", false)}
	}
	request.Header.Set("Accept", "application/json")

	response, err := s.httpClient.Do(request)
	if err != nil {
		logrus.Errorf("Error fetching IPO data: %v", err)
		return FetchResult{Err: shared.WrapError(err, shared.ErrorCategoryNetwork,
			"FETCH_FAILED", "Finnhub_Service", "fetch_ipo_calendar", true)}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		logrus.Errorf("Error fetching IPO data: %d", response.StatusCode)
		return FetchResult{Err: shared.NewServiceError(shared.ErrorCategoryNetwork,
			"UNEXPECTED_STATUS",
			fmt.Sprintf("calendar endpoint returned HTTP %d", response.StatusCode),
			"Finnhub_Service", "fetch_ipo_calendar", true, nil)}
	}

	var calendar models.IPOCalendarResponse
	if err := json.NewDecoder(response.Body).Decode(&calendar); err != nil {
		logrus.Errorf("Error decoding IPO calendar response: %v", err)
		return FetchResult{Err: shared.WrapError(err, shared.ErrorCategoryValidation,
			"DECODE_FAILED", "Finnhub_Service", "fetch_ipo_calendar", false)}
	}

	// Missing ipoCalendar key decodes to nil; treat as an empty day.
	if calendar.IPOCalendar == nil {
		return FetchResult{Events: []models.IPOEvent{}}
	}

	return FetchResult{Events: calendar.IPOCalendar}
}
