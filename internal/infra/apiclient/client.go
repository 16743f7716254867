package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"evcontrol/internal/domain/reservation"
	"evcontrol/internal/infra"
	"evcontrol/internal/pkg/config"
)

// Client talks to the reservation REST API. Failures are returned as
// infra.RequestError without retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (c *Client) List(ctx context.Context) ([]reservation.Reservation, error) {
	var bodies []reservaBody
	if err := c.do(ctx, "list", http.MethodGet, c.baseURL, nil, &bodies); err != nil {
		return nil, err
	}

	list := make([]reservation.Reservation, 0, len(bodies))
	for _, b := range bodies {
		r, err := b.toDomain()
		if err != nil {
			return nil, infra.WrapRequestErr(c.logger, infra.KindBadResponse, "list", 0, "invalid reservation amount", err)
		}
		list = append(list, r)
	}
	return list, nil
}

// Create posts r without its ID. When the backend answers without a body the
// submitted reservation is returned as is.
func (c *Client) Create(ctx context.Context, r reservation.Reservation) (reservation.Reservation, error) {
	body := toBody(r)
	body.ID = nil
	return c.write(ctx, "create", http.MethodPost, c.baseURL, body, r)
}

func (c *Client) Update(ctx context.Context, id int64, r reservation.Reservation) (reservation.Reservation, error) {
	return c.write(ctx, "update", http.MethodPut, c.itemURL(id), toBody(r), r)
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id int64) string {
	return c.baseURL + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) write(ctx context.Context, op, method, url string, body reservaBody, submitted reservation.Reservation) (reservation.Reservation, error) {
	var out *reservaBody
	if err := c.do(ctx, op, method, url, body, &out); err != nil {
		return reservation.Reservation{}, err
	}
	if out == nil {
		return submitted, nil
	}

	r, err := out.toDomain()
	if err != nil {
		return reservation.Reservation{}, infra.WrapRequestErr(c.logger, infra.KindBadResponse, op, 0, "invalid reservation amount", err)
	}
	return r, nil
}

// do sends one request; target may be nil when the response body is ignored
func (c *Client) do(ctx context.Context, op, method, url string, payload any, target any) error {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return infra.WrapRequestErr(c.logger, infra.KindEncode, op, 0, "failed to encode request body", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return infra.WrapRequestErr(c.logger, infra.KindTransport, op, 0, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapRequestErr(c.logger, infra.KindTransport, op, 0, "request failed", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close backend response body", "op", op, "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapRequestErr(c.logger, infra.KindTransport, op, resp.StatusCode, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return infra.WrapRequestErr(c.logger, infra.KindStatus, op, resp.StatusCode,
			fmt.Sprintf("%s %s returned %d", method, url, resp.StatusCode), nil)
	}

	if target == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return infra.WrapRequestErr(c.logger, infra.KindDecode, op, resp.StatusCode, "failed to decode response body", err)
	}
	return nil
}
