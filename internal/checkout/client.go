package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/shopori/cart-service/pkg/config"
	pkgerrors "github.com/shopori/cart-service/pkg/errors"
	"github.com/shopori/cart-service/pkg/logger"
)

var (
	errBaseURLRequired = errors.New("checkout base url is required")
	errLoggerRequired  = errors.New("checkout logger is required")
)

// Client talks to the remote storefront's checkout endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logger.Logger
}

// NewClient builds a checkout client against the configured backend. The
// configured timeout bounds the order submission call; a timeout is reported
// as an ordinary failure.
func NewClient(cfg config.BackendConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errBaseURLRequired
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logg,
	}, nil
}

// CreateOrder submits the order payload once. There is no retry; any failure
// is returned to the caller with the cart left as it was.
func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) (*OrderReceipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode order payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout", bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build order request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submit order")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.readFailure(ctx, resp, "order submission")
	}

	var receipt OrderReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode order receipt")
	}
	return &receipt, nil
}

// CheckFirstOrder asks the backend whether this would be the buyer's first
// order. The answer feeds discount logic outside this service.
func (c *Client) CheckFirstOrder(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	endpoint := fmt.Sprintf("%s/checkout/check-first-order/%s", c.baseURL, url.PathEscape(userID.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build first-order request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check first order")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, c.readFailure(ctx, resp, "first-order check")
	}

	var first bool
	if err := json.NewDecoder(resp.Body).Decode(&first); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode first-order response")
	}
	return first, nil
}

func (c *Client) readFailure(ctx context.Context, resp *http.Response, action string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(raw))
	c.logger.Warn(ctx, fmt.Sprintf("%s returned status %d: %s", action, resp.StatusCode, msg))

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		if msg == "" {
			msg = fmt.Sprintf("%s rejected", action)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, msg)
	}
	return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("%s failed with status %d", action, resp.StatusCode))
}
