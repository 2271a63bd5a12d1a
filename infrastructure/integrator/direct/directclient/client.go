package directclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	directdomain "github.com/grifun/direct-optimizer-api/infrastructure/integrator/direct/domain"
	"github.com/grifun/direct-optimizer-api/internal/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrEmptyResult    = errors.New("direct: response without result")
	ErrReportNotReady = errors.New("direct: report is being generated offline, try again later")
)

type Client interface {
	GetCampaigns(ctx context.Context, ids []int64) ([]directdomain.Campaign, error)
	AddCampaign(ctx context.Context, item directdomain.CampaignAddItem) (int64, error)
	UpdateCampaign(ctx context.Context, item directdomain.CampaignUpdateItem) error
	GetAdGroups(ctx context.Context, campaignID int64) ([]directdomain.AdGroup, error)
	UpdateAdGroup(ctx context.Context, item directdomain.AdGroupUpdateItem) error
	GetKeywords(ctx context.Context, campaignID int64) ([]directdomain.Keyword, error)
	AddKeywords(ctx context.Context, items []directdomain.KeywordAddItem) ([]int64, error)
	GetAds(ctx context.Context, campaignID int64) ([]directdomain.Ad, error)
	AddAd(ctx context.Context, item directdomain.AdAddItem) (int64, error)
	ModerateAds(ctx context.Context, ids []int64) error
	GetCampaignPerformanceReport(ctx context.Context, campaignIDs []int64, dateFrom, dateTo string) (string, error)
}

type DirectClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &DirectClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Direct.Timeout},
	}
}

func (c *DirectClient) endpoint(service string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.Cfg.Direct.URL, "/"), service)
}

func (c *DirectClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.Cfg.Direct.AccessToken)
	req.Header.Set("Client-Login", c.Cfg.Direct.Login)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if c.Cfg.Direct.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", c.Cfg.Direct.AcceptLanguage)
	}
}

func (c *DirectClient) post(ctx context.Context, service string, payload any, extraHeaders map[string]string) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, errors.Wrap(err, "direct: failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(service), bytes.NewReader(body))
	if err != nil {
		return 0, nil, errors.Wrap(err, "direct: failed to build request")
	}
	c.setHeaders(req)
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "direct: request to %s failed", service)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "direct: failed to read response")
	}

	return resp.StatusCode, data, nil
}

// call envia {"method","params"} para o serviço e decodifica o campo result em T
func call[T any](ctx context.Context, c *DirectClient, service, method string, params any) (*T, error) {
	logrus.WithFields(logrus.Fields{
		"service": service,
		"method":  method,
	}).Debug("direct: calling api")

	status, data, err := c.post(ctx, service, directdomain.Request{Method: method, Params: params}, nil)
	if err != nil {
		return nil, err
	}

	var response directdomain.Response[T]
	decodeErr := json.Unmarshal(data, &response)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		if decodeErr == nil && response.Error != nil {
			return nil, errors.WithStack(response.Error)
		}
		return nil, errors.Errorf("direct: %s.%s returned status %d: %s", service, method, status, truncate(string(data), 300))
	}

	if decodeErr != nil {
		return nil, errors.Wrapf(decodeErr, "direct: failed to decode %s.%s response", service, method)
	}

	if response.Error != nil {
		logrus.WithFields(logrus.Fields{
			"service":    service,
			"method":     method,
			"error_code": response.Error.ErrorCode,
			"request_id": response.Error.RequestID,
		}).Warn("direct: api returned error")
		return nil, errors.WithStack(response.Error)
	}

	if response.Result == nil {
		return nil, errors.Wrapf(ErrEmptyResult, "%s.%s", service, method)
	}

	return response.Result, nil
}

// firstID extrai o Id do primeiro resultado de uma operação add
func firstID(results []directdomain.ActionResult) (int64, error) {
	if err := directdomain.CollectErrors(results); err != nil {
		return 0, err
	}
	if len(results) == 0 || results[0].ID == 0 {
		return 0, errors.New("direct: no id returned")
	}
	return results[0].ID, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
