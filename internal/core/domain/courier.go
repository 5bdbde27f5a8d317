package domain

// CourierProfile is the immutable description of a courier in the catalog.
type CourierProfile struct {
	Key            string   `json:"key"`
	DisplayName    string   `json:"display_name"`
	Services       []string `json:"services"`
	TrackingPrefix string   `json:"tracking_prefix"`
}

// DefaultService returns the first listed service, which becomes the selection
// whenever the courier is (re)selected.
func (c CourierProfile) DefaultService() string {
	if len(c.Services) == 0 {
		return ""
	}
	return c.Services[0]
}

// Offers reports whether service is one of the courier's services.
func (c CourierProfile) Offers(service string) bool {
	for _, s := range c.Services {
		if s == service {
			return true
		}
	}
	return false
}
