package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"restbucks/pkg/hal"
	"restbucks/pkg/jsonpath"
	"restbucks/pkg/logger"
)

// AccessRoot fetches the well-known root asking for HAL-FORMS, so the order form is
// included.
func (c *Client) AccessRoot(ctx context.Context) (*Response, error) {
	c.log.Info("accessing root resource", logger.NewField("url", c.baseURL+"/"))

	resp, err := c.do(ctx, request{method: http.MethodGet, url: c.baseURL + "/", accept: hal.MediaTypeHALForms})
	if err != nil {
		return nil, err
	}
	if err := expectStatus(resp, "root", http.StatusOK); err != nil {
		return nil, err
	}

	doc, err := parseDocument(resp, "root")
	if err != nil {
		return nil, err
	}
	if _, err := requireLink(doc, "root", RelOrders); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateOrder fills the root's order form: the first drink offered by the drinks options
// link and the first inline location.
func (c *Client) CreateOrder(ctx context.Context, root *Response) (*Response, error) {
	paths, err := root.JSONPath()
	if err != nil {
		return nil, fmt.Errorf("%w: create order: %v", ErrContractViolation, err)
	}

	drinksTemplate, err := paths.ReadString(drinksTemplateExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: create order: drinks options: %v", ErrContractViolation, err)
	}
	drinksURL, err := hal.Expand(drinksTemplate, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create order: %v", ErrContractViolation, err)
	}

	location, err := paths.ReadString(locationInlineExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: create order: location options: %v", ErrContractViolation, err)
	}

	optionsResp, err := c.get(ctx, drinksURL)
	if err != nil {
		return nil, err
	}
	if err := expectStatus(optionsResp, "drink options", http.StatusOK); err != nil {
		return nil, err
	}
	drinkURI, err := jsonpath.ReadString(optionsResp.Body, firstDrinkValueExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: drink options: %v", ErrContractViolation, err)
	}

	doc, err := parseDocument(root, "create order")
	if err != nil {
		return nil, err
	}
	ordersLink, err := requireLink(doc, "create order", RelOrders)
	if err != nil {
		return nil, err
	}
	ordersURL, err := expand(ordersLink)
	if err != nil {
		return nil, err
	}

	c.log.Info("placing order",
		logger.NewField("drink", drinkURI),
		logger.NewField("location", location),
	)

	created, err := c.do(ctx, request{
		method: http.MethodPost,
		url:    ordersURL,
		accept: hal.MediaTypeHAL,
		body: map[string]any{
			"drinks":   []string{drinkURI},
			"location": location,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := expectStatus(created, "create order", http.StatusCreated); err != nil {
		return nil, err
	}
	orderURL := created.Header.Get("Location")
	if orderURL == "" {
		return nil, violation("create order: missing Location header")
	}

	return c.get(ctx, orderURL)
}

func (c *Client) DiscoverOrders(ctx context.Context, root *Response) (*Response, error) {
	doc, err := parseDocument(root, "discover orders")
	if err != nil {
		return nil, err
	}
	ordersLink, err := requireLink(doc, "discover orders", RelOrders)
	if err != nil {
		return nil, err
	}
	ordersURL, err := expand(ordersLink)
	if err != nil {
		return nil, err
	}

	c.log.Info("following orders link", logger.NewField("url", ordersURL))

	resp, err := c.get(ctx, ordersURL)
	if err != nil {
		return nil, err
	}
	if err := expectStatus(resp, "discover orders", http.StatusOK); err != nil {
		return nil, err
	}
	return resp, nil
}

// AccessFirstOrder follows the self link of the first order still awaiting payment.
func (c *Client) AccessFirstOrder(ctx context.Context, orders *Response) (*Response, error) {
	paths, err := orders.JSONPath()
	if err != nil {
		return nil, fmt.Errorf("%w: first order: %v", ErrContractViolation, err)
	}
	nodes, err := paths.Read(firstOrderExpression)
	if err != nil {
		return nil, fmt.Errorf("%w: first order: %v", ErrContractViolation, err)
	}
	if len(nodes) == 0 {
		return nil, violation("first order: no order awaiting payment")
	}
	orderURL := nodes[0].Value

	c.log.Info("picking first order",
		logger.NewField("expression", firstOrderExpression),
		logger.NewField("url", orderURL),
	)

	resp, err := c.get(ctx, orderURL)
	if err != nil {
		return nil, err
	}
	if err := expectStatus(resp, "first order", http.StatusOK); err != nil {
		return nil, err
	}

	doc, err := parseDocument(resp, "first order")
	if err != nil {
		return nil, err
	}
	for _, rel := range []string{hal.RelSelf, RelCancel, RelUpdate, RelPayment} {
		if _, err := requireLink(doc, "first order", rel); err != nil {
			return nil, err
		}
	}
	if err := forbidLinks(doc, "first order", RelReceipt); err != nil {
		return nil, err
	}
	return resp, nil
}

// TriggerPayment pays the order and then checks that a paid order can no longer be
// cancelled through its self link.
func (c *Client) TriggerPayment(ctx context.Context, order *Response) (*Response, error) {
	doc, err := parseDocument(order, "payment")
	if err != nil {
		return nil, err
	}
	paymentLink, err := requireLink(doc, "payment", RelPayment)
	if err != nil {
		return nil, err
	}
	selfLink, err := requireLink(doc, "payment", hal.RelSelf)
	if err != nil {
		return nil, err
	}

	c.log.Info("triggering payment", logger.NewField("url", paymentLink.Href))

	payment, err := c.do(ctx, request{
		method: http.MethodPut,
		url:    paymentLink.Href,
		accept: hal.MediaTypeHAL,
		body:   map[string]string{"number": CardNumber},
	})
	if err != nil {
		return nil, err
	}
	if err := expectStatus(payment, "payment", http.StatusCreated); err != nil {
		return nil, err
	}
	paymentDoc, err := parseDocument(payment, "payment")
	if err != nil {
		return nil, err
	}
	if _, err := requireLink(paymentDoc, "payment", RelOrder); err != nil {
		return nil, err
	}

	c.log.Info("faking a cancel request on the paid order", logger.NewField("url", selfLink.Href))

	cancelled, err := c.do(ctx, request{method: http.MethodDelete, url: selfLink.Href})
	if err != nil {
		return nil, err
	}
	if err := expectStatus(cancelled, "cancel after payment", http.StatusMethodNotAllowed); err != nil {
		return nil, err
	}

	return payment, nil
}

// PollUntilReceipt follows the payment's order link until the receipt link shows up,
// revalidating with the last ETag so unchanged orders come back without a body.
func (c *Client) PollUntilReceipt(ctx context.Context, payment *Response) (*Response, error) {
	doc, err := parseDocument(payment, "poll")
	if err != nil {
		return nil, err
	}
	orderLink, err := requireLink(doc, "poll", RelOrder)
	if err != nil {
		return nil, err
	}
	orderURL, err := expand(orderLink)
	if err != nil {
		return nil, err
	}

	var etag string
	for {
		headers := map[string]string{}
		if etag != "" {
			headers["If-None-Match"] = etag
		}

		resp, err := c.do(ctx, request{method: http.MethodGet, url: orderURL, accept: hal.MediaTypeHAL, headers: headers})
		if err != nil {
			return nil, err
		}
		if tag := resp.Header.Get("ETag"); tag != "" {
			etag = tag
		}

		c.log.Info("polled order",
			logger.NewField("status", resp.StatusCode),
			logger.NewField("etag", etag),
		)

		switch resp.StatusCode {
		case http.StatusOK:
			order, err := parseDocument(resp, "poll")
			if err != nil {
				return nil, err
			}
			if _, err := requireLink(order, "poll", hal.RelSelf); err != nil {
				return nil, err
			}
			if err := forbidLinks(order, "poll", RelUpdate, RelCancel); err != nil {
				return nil, err
			}
			if order.Links.Has(RelReceipt) {
				return resp, nil
			}
		case http.StatusNoContent, http.StatusNotModified:
			if len(resp.Body) > 0 {
				return nil, violation("poll: status %d with a body", resp.StatusCode)
			}
		default:
			return nil, violation("poll: unexpected status %d: %s", resp.StatusCode, resp.Body)
		}

		if err := sleep(ctx, c.pollInterval); err != nil {
			return nil, fmt.Errorf("poll: %w", err)
		}
	}
}

// TakeReceipt reads the receipt and then deletes it, which hands the drinks over.
func (c *Client) TakeReceipt(ctx context.Context, order *Response) (*Response, error) {
	doc, err := parseDocument(order, "take receipt")
	if err != nil {
		return nil, err
	}
	receiptLink, err := requireLink(doc, "take receipt", RelReceipt)
	if err != nil {
		return nil, err
	}

	receipt, err := c.get(ctx, receiptLink.Href)
	if err != nil {
		return nil, err
	}
	if err := expectStatus(receipt, "read receipt", http.StatusOK); err != nil {
		return nil, err
	}

	c.log.Info("taking receipt", logger.NewField("receipt", string(receipt.Body)))

	taken, err := c.do(ctx, request{method: http.MethodDelete, url: receiptLink.Href, accept: hal.MediaTypeHAL})
	if err != nil {
		return nil, err
	}
	if err := expectStatus(taken, "take receipt", http.StatusOK); err != nil {
		return nil, err
	}
	return taken, nil
}

// VerifyOrderTaken checks the final order offers nothing but its self link.
func (c *Client) VerifyOrderTaken(ctx context.Context, receipt *Response) (*Response, error) {
	doc, err := parseDocument(receipt, "verify order")
	if err != nil {
		return nil, err
	}
	orderLink, err := requireLink(doc, "verify order", RelOrder)
	if err != nil {
		return nil, err
	}
	orderURL, err := expand(orderLink)
	if err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, orderURL)
	if err != nil {
		return nil, err
	}
	if err := expectStatus(resp, "verify order", http.StatusOK); err != nil {
		return nil, err
	}

	order, err := parseDocument(resp, "verify order")
	if err != nil {
		return nil, err
	}
	if _, err := requireLink(order, "verify order", hal.RelSelf); err != nil {
		return nil, err
	}
	if err := forbidLinks(order, "verify order", RelUpdate, RelCancel, RelPayment); err != nil {
		return nil, err
	}

	status, err := jsonpath.ReadString(resp.Body, statusExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: verify order: %v", ErrContractViolation, err)
	}
	if status != StatusDelivered {
		return nil, violation("verify order: expected status %q, got %q", StatusDelivered, status)
	}

	c.log.Info("final order state", logger.NewField("order", string(resp.Body)))
	return resp, nil
}

// CancelOrder deletes the order through its cancel link and checks it is gone.
func (c *Client) CancelOrder(ctx context.Context, order *Response) error {
	doc, err := parseDocument(order, "cancel")
	if err != nil {
		return err
	}
	selfLink, err := requireLink(doc, "cancel", hal.RelSelf)
	if err != nil {
		return err
	}
	cancelLink, err := requireLink(doc, "cancel", RelCancel)
	if err != nil {
		return err
	}

	c.log.Info("cancelling order", logger.NewField("url", cancelLink.Href))

	resp, err := c.do(ctx, request{method: http.MethodDelete, url: cancelLink.Href})
	if err != nil {
		return err
	}
	if err := expectStatus(resp, "cancel", http.StatusNoContent); err != nil {
		return err
	}

	gone, err := c.get(ctx, selfLink.Href)
	if err != nil {
		return err
	}
	return expectStatus(gone, "cancelled order", http.StatusNotFound)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
