package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophfood/internal/client/metrics"
	"github.com/dmitrijs2005/gophfood/internal/client/models"
	"github.com/dmitrijs2005/gophfood/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const RequestIDHeader = "X-Request-ID"

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithRateLimit throttles outgoing requests to rps with the given burst.
// A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(h *HTTPClient) {
		if rps <= 0 {
			h.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "gateway")
	return c, nil
}

func (c *HTTPClient) Register(ctx context.Context) (*models.Registration, error) {
	var reg models.Registration
	if err := c.do(ctx, "user_register", http.MethodPost, "/user", nil, nil, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, sid string, uid int) (*models.UserInfo, error) {
	var info models.UserInfo
	q := url.Values{"sid": {sid}}
	if err := c.do(ctx, "user_get", http.MethodGet, "/user/"+strconv.Itoa(uid), q, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, uid int, update models.ProfileUpdate) error {
	return c.do(ctx, "user_update", http.MethodPut, "/user/"+strconv.Itoa(uid), nil, update, nil)
}

func (c *HTTPClient) ListMenus(ctx context.Context, sid string, loc models.Location) ([]models.MenuSummary, error) {
	var menus []models.MenuSummary
	if err := c.do(ctx, "menu_list", http.MethodGet, "/menu", locationQuery(sid, loc), nil, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (c *HTTPClient) GetMenu(ctx context.Context, sid string, mid int, loc models.Location) (*models.MenuDetail, error) {
	var detail models.MenuDetail
	path := "/menu/" + strconv.Itoa(mid)
	if err := c.do(ctx, "menu_get", http.MethodGet, path, locationQuery(sid, loc), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *HTTPClient) GetMenuImage(ctx context.Context, sid string, mid int) (string, error) {
	var img struct {
		Base64 string `json:"base64"`
	}
	path := "/menu/" + strconv.Itoa(mid) + "/image"
	if err := c.do(ctx, "menu_image", http.MethodGet, path, url.Values{"sid": {sid}}, nil, &img); err != nil {
		return "", err
	}
	return img.Base64, nil
}

func (c *HTTPClient) BuyMenu(ctx context.Context, mid int, req models.OrderRequest) (*models.Order, error) {
	var order models.Order
	path := "/menu/" + strconv.Itoa(mid) + "/buy"
	if err := c.do(ctx, "menu_buy", http.MethodPost, path, nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HTTPClient) GetOrder(ctx context.Context, sid string, oid int) (*models.Order, error) {
	var order models.Order
	q := url.Values{"sid": {sid}}
	if err := c.do(ctx, "order_get", http.MethodGet, "/order/"+strconv.Itoa(oid), q, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func locationQuery(sid string, loc models.Location) url.Values {
	return url.Values{
		"lat": {strconv.FormatFloat(loc.Lat, 'f', -1, 64)},
		"lng": {strconv.FormatFloat(loc.Lng, 'f', -1, 64)},
		"sid": {sid},
	}
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	c.log.Debug(ctx, "request", "op", op, "method", method, "path", u.Path, "request_id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveGatewayRequest(op, 0, time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", op, ctxErr)
		}
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()
	metrics.ObserveGatewayRequest(op, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Op: op, Code: resp.StatusCode, Message: readErrorMessage(resp.Body)}
		c.log.Debug(ctx, "request failed", "op", op, "status", resp.StatusCode, "request_id", requestID)
		return se
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// readErrorMessage extracts {"message": "..."} from an error body.
func readErrorMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(b) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &body); err != nil || body.Message == "" {
		return ""
	}
	return body.Message
}

var _ Client = (*HTTPClient)(nil)

// IsUnavailable reports whether err is a transport-level failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
