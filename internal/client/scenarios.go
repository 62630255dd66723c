package client

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScenario = errors.New("unknown scenario")

const (
	ScenarioProcessExistingOrder     = "process-existing-order"
	ScenarioProcessNewOrder          = "process-new-order"
	ScenarioCancelOrderBeforePayment = "cancel-order-before-payment"
)

// ProcessExistingOrder pays for the first seeded order and walks it to delivery.
func (c *Client) ProcessExistingOrder(ctx context.Context) error {
	root, err := c.AccessRoot(ctx)
	if err != nil {
		return err
	}
	orders, err := c.DiscoverOrders(ctx, root)
	if err != nil {
		return err
	}
	order, err := c.AccessFirstOrder(ctx, orders)
	if err != nil {
		return err
	}
	return c.processOrder(ctx, order)
}

// ProcessNewOrder places an order through the root's form and walks it to delivery.
func (c *Client) ProcessNewOrder(ctx context.Context) error {
	root, err := c.AccessRoot(ctx)
	if err != nil {
		return err
	}
	order, err := c.CreateOrder(ctx, root)
	if err != nil {
		return err
	}
	return c.processOrder(ctx, order)
}

func (c *Client) CancelOrderBeforePayment(ctx context.Context) error {
	root, err := c.AccessRoot(ctx)
	if err != nil {
		return err
	}
	order, err := c.CreateOrder(ctx, root)
	if err != nil {
		return err
	}
	return c.CancelOrder(ctx, order)
}

func (c *Client) processOrder(ctx context.Context, order *Response) error {
	payment, err := c.TriggerPayment(ctx, order)
	if err != nil {
		return err
	}
	ready, err := c.PollUntilReceipt(ctx, payment)
	if err != nil {
		return err
	}
	receipt, err := c.TakeReceipt(ctx, ready)
	if err != nil {
		return err
	}
	_, err = c.VerifyOrderTaken(ctx, receipt)
	return err
}

func (c *Client) scenarios() map[string]func(context.Context) error {
	return map[string]func(context.Context) error{
		ScenarioProcessExistingOrder:     c.ProcessExistingOrder,
		ScenarioProcessNewOrder:          c.ProcessNewOrder,
		ScenarioCancelOrderBeforePayment: c.CancelOrderBeforePayment,
	}
}

// Scenarios lists the names accepted by Run.
func Scenarios() []string {
	names := make([]string, 0, 3)
	for name := range (&Client{}).scenarios() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Client) Run(ctx context.Context, scenario string) error {
	run, ok := c.scenarios()[scenario]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScenario, scenario)
	}
	return run(ctx)
}
