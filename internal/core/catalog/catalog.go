// Package catalog holds the static courier registry and the rules for
// selecting a courier and service within a session.
package catalog

import (
	"fmt"
	"regexp"

	"github.com/99minutos/label-system/internal/core/domain"
)

// DefaultCourier is selected when a session has no courier yet.
const DefaultCourier = "royal-mail"

var prefixPattern = regexp.MustCompile(`^[A-Z0-9]{1,4}$`)

var defaultProfiles = []domain.CourierProfile{
	{
		Key:         "royal-mail",
		DisplayName: "Royal Mail",
		Services: []string{
			"First Class",
			"Second Class",
			"Special Delivery Guaranteed by 1pm",
			"Special Delivery Guaranteed by 9am",
			"Tracked 24",
			"Tracked 48",
			"Royal Mail 24",
			"Royal Mail 48",
		},
		TrackingPrefix: "RM",
	},
	{
		Key:            "ups",
		DisplayName:    "UPS",
		Services:       []string{"UPS Express", "UPS Express Saver", "UPS Standard", "UPS Expedited", "UPS Access Point"},
		TrackingPrefix: "1Z",
	},
	{
		Key:            "evri",
		DisplayName:    "Evri",
		Services:       []string{"Standard Delivery", "Next Day", "ParcelShop Drop-off", "Economy"},
		TrackingPrefix: "EV",
	},
	{
		Key:            "dpd",
		DisplayName:    "DPD",
		Services:       []string{"DPD Next Day", "DPD Express", "DPD Local", "DPD Saturday", "DPD Two Day"},
		TrackingPrefix: "DPD",
	},
	{
		Key:            "dhl",
		DisplayName:    "DHL",
		Services:       []string{"DHL Express", "DHL Economy", "DHL Parcel UK", "DHL Same Day"},
		TrackingPrefix: "JD",
	},
	{
		Key:            "yodel",
		DisplayName:    "Yodel",
		Services:       []string{"Yodel Direct", "Yodel Xpress 24", "Yodel Xpress 48", "Yodel Economy"},
		TrackingPrefix: "YOL",
	},
}

// Catalog is a read-only lookup table of courier profiles.
type Catalog struct {
	order    []string
	profiles map[string]domain.CourierProfile
}

// New builds a catalog, rejecting profiles that break the courier invariants.
func New(profiles ...domain.CourierProfile) (*Catalog, error) {
	c := &Catalog{profiles: make(map[string]domain.CourierProfile, len(profiles))}
	for _, p := range profiles {
		if p.Key == "" {
			return nil, fmt.Errorf("catalog: courier with empty key")
		}
		if len(p.Services) == 0 {
			return nil, fmt.Errorf("catalog: courier %q has no services", p.Key)
		}
		if !prefixPattern.MatchString(p.TrackingPrefix) {
			return nil, fmt.Errorf("catalog: courier %q has invalid tracking prefix %q", p.Key, p.TrackingPrefix)
		}
		if _, dup := c.profiles[p.Key]; dup {
			return nil, fmt.Errorf("catalog: duplicate courier %q", p.Key)
		}
		p.Services = append([]string(nil), p.Services...)
		c.profiles[p.Key] = p
		c.order = append(c.order, p.Key)
	}
	return c, nil
}

// Default returns the catalog of the six UK couriers the labels are styled after.
func Default() *Catalog {
	c, err := New(defaultProfiles...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the profile registered under key.
func (c *Catalog) Lookup(key string) (domain.CourierProfile, error) {
	p, ok := c.profiles[key]
	if !ok {
		return domain.CourierProfile{}, fmt.Errorf("%w: %q", domain.ErrUnknownCourier, key)
	}
	return clone(p), nil
}

// All returns every profile in declaration order.
func (c *Catalog) All() []domain.CourierProfile {
	out := make([]domain.CourierProfile, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, clone(c.profiles[k]))
	}
	return out
}

// Offers reports whether courier key lists service.
func (c *Catalog) Offers(key, service string) bool {
	p, ok := c.profiles[key]
	return ok && p.Offers(service)
}

// SelectCourier switches the session to courier key and resets the service
// to that courier's first listed service.
func (c *Catalog) SelectCourier(sess *domain.Session, key string) error {
	p, err := c.Lookup(key)
	if err != nil {
		return err
	}
	sess.Courier = p.Key
	sess.Service = p.DefaultService()
	return nil
}

// SelectService sets the session's service if the selected courier offers it.
// The session is left untouched otherwise.
func (c *Catalog) SelectService(sess *domain.Session, service string) error {
	p, err := c.Lookup(sess.Courier)
	if err != nil {
		return err
	}
	if !p.Offers(service) {
		return fmt.Errorf("%w: %q by %s", domain.ErrServiceNotOffered, service, p.DisplayName)
	}
	sess.Service = service
	return nil
}

// Resolve returns the profile for key and the service to use: the requested
// one when offered, the courier's first service otherwise.
func (c *Catalog) Resolve(key, service string) (domain.CourierProfile, string, error) {
	p, err := c.Lookup(key)
	if err != nil {
		return domain.CourierProfile{}, "", err
	}
	if p.Offers(service) {
		return p, service, nil
	}
	return p, p.DefaultService(), nil
}

func clone(p domain.CourierProfile) domain.CourierProfile {
	p.Services = append([]string(nil), p.Services...)
	return p
}
