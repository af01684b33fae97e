package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"gitlab.com/aoterocom/ROEAnalyzer/helpers"
	"gitlab.com/aoterocom/ROEAnalyzer/interfaces"
	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const analyzePath = "/analyze"

// BackendService asks the remote analysis backend for rankings.
type BackendService struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.AnalysisProvider = (*BackendService)(nil)

// NewBackendService builds a client for baseURL. A zero timeout leaves the
// transport defaults in place.
func NewBackendService(baseURL string, timeout time.Duration) *BackendService {
	return &BackendService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (bs *BackendService) BaseURL() string {
	return bs.baseURL
}

// Analyze posts the request and decodes the envelope whatever the status code,
// since the backend reports failures in-band.
func (bs *BackendService) Analyze(ctx context.Context, request models.AnalysisRequest) (models.AnalysisResponse, error) {
	var response models.AnalysisResponse

	payload, err := json.Marshal(request)
	if err != nil {
		return response, fmt.Errorf("marshal request failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, bs.baseURL+analyzePath, bytes.NewReader(payload))
	if err != nil {
		return response, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if requestID := helpers.RequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set("X-Request-ID", requestID)
	}

	helpers.Logger.Traceln(fmt.Sprintf("backend: POST %s %s", httpReq.URL, string(payload)))
	res, err := bs.client.Do(httpReq)
	if err != nil {
		return response, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return response, fmt.Errorf("read body failed: %w", err)
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, fmt.Errorf("unmarshal response failed (status %d): %w", res.StatusCode, err)
	}
	if res.StatusCode != http.StatusOK {
		helpers.Logger.Warnln(fmt.Sprintf("backend: analyze answered with status %d", res.StatusCode))
	}

	return response, nil
}
