package account

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not created
// through NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client is a customer account. It carries only what the order core needs:
// identity, an active flag, and delivery coordinates. Profile data (addresses,
// phone numbers, credentials) lives outside the core.
type Client struct {
	id       kernel.UUID
	name     string
	active   bool
	location kernel.GeoPoint

	isConstructed bool
}

// NewClient creates an active client with the given identity and delivery
// coordinates.
func NewClient(id kernel.UUID, name string, location kernel.GeoPoint) (*Client, error) {
	return RestoreClient(id, name, true, location)
}

// RestoreClient reconstructs a client from persistence, including its
// active flag.
func RestoreClient(id kernel.UUID, name string, active bool, location kernel.GeoPoint) (*Client, error) {
	client := &Client{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		client.setID(id),
		client.setName(name),
		client.setLocation(location),
	); err != nil {
		return nil, err
	}

	return client, nil
}

// Validate ensures the Client was created through a constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// IsActive reports whether the client may place orders and reviews.
func (c *Client) IsActive() bool {
	return c.active
}

// Location returns the client's delivery coordinates.
func (c *Client) Location() kernel.GeoPoint {
	return c.location
}

// Deactivate marks the client inactive. Inactive clients cannot place orders.
func (c *Client) Deactivate() {
	c.active = false
}

// Activate marks the client active.
func (c *Client) Activate() {
	c.active = true
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
