package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/label-system/internal/core/catalog"
	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/encoding"
	"github.com/99minutos/label-system/internal/core/layout"
	"github.com/99minutos/label-system/internal/core/ports"
)

// LabelService validates a shipment, derives its tracking identifier and
// barcode payloads and assembles the label document.
type LabelService struct {
	catalog  *catalog.Catalog
	tracking *encoding.TrackingGenerator
	mailmark *encoding.MailmarkEncoder
	builder  *layout.Builder
	clock    ports.Clock
	newID    func() string
	logger   zerolog.Logger
}

// NewLabelService wires the pipeline. rnd must be safe for concurrent use
// when the service is shared between goroutines.
func NewLabelService(cat *catalog.Catalog, clock ports.Clock, rnd ports.Rand, accountID string, logger zerolog.Logger) *LabelService {
	return &LabelService{
		catalog:  cat,
		tracking: encoding.NewTrackingGenerator(rnd),
		mailmark: encoding.NewMailmarkEncoder(accountID, clock, rnd),
		builder:  layout.NewBuilder(),
		clock:    clock,
		newID:    uuid.NewString,
		logger:   logger,
	}
}

// Generate runs the pipeline for one label. Mandatory recipient fields are
// checked before anything is encoded. The session's courier and service win
// over the ones carried by in; the session is updated with the final choice.
func (s *LabelService) Generate(ctx context.Context, sess *domain.Session, in domain.ShipmentInput) (*ports.LabelResult, error) {
	in = encoding.Normalize(in)

	if err := validateShipment(in); err != nil {
		return nil, err
	}

	if sess == nil {
		sess = &domain.Session{}
	}
	if err := s.selectInto(sess, in); err != nil {
		return nil, fmt.Errorf("generate label: %w", err)
	}
	courier, service, err := s.catalog.Resolve(sess.Courier, sess.Service)
	if err != nil {
		return nil, fmt.Errorf("generate label: %w", err)
	}
	sess.Service = service
	in.Courier, in.Service = courier.Key, service

	result := &ports.LabelResult{}

	tracking := encoding.CleanCode(in.Tracking)
	if tracking == "" {
		tracking = s.tracking.Generate(courier)
		result.Generated = true
	}

	desc := layout.For(courier.Key, service)
	linear := encoding.FormatLinear(tracking)
	now := s.clock.Now()

	var dataMatrix, qr string
	if desc.HasSymbology(domain.SymbologyDataMatrix) {
		payload, err := s.mailmark.Encode(encoding.MailmarkInput{
			Reference:         in.Reference,
			SignatureRequired: in.SignatureRequired,
			Postage:           in.Postage,
			RecipientPostcode: in.RecipientPostcode,
			SenderPostcode:    in.SenderPostcode,
			RoutingCode:       in.RoutingCode,
			Tracking:          tracking,
		})
		if err != nil {
			return nil, fmt.Errorf("generate label: %w", err)
		}
		for _, d := range payload.Degradations() {
			s.logger.Warn().Str("field", d.Field).Str("raw", d.Raw).Str("tracking", tracking).Msg("input coerced to default")
			result.Degradations = append(result.Degradations, d.String())
		}
		dataMatrix = payload.String()
	}
	if desc.HasSymbology(domain.SymbologyQR) {
		qr = encoding.NewQRPayload(tracking, courier.DisplayName, service, in.RecipientPostcode, in.RecipientName).String()
	}

	doc := s.builder.Build(layout.BuildInput{
		Descriptor: desc,
		Courier:    courier,
		Service:    service,
		Shipment:   in,
		Tracking:   tracking,
		Linear:     linear,
		DataMatrix: dataMatrix,
		QR:         qr,
		Date:       now,
	})
	doc.ID = s.newID()
	doc.GeneratedAt = now.UTC()
	result.Document = &doc

	s.logger.Info().
		Str("label_id", doc.ID).
		Str("courier", courier.Key).
		Str("layout", desc.Key).
		Str("tracking", tracking).
		Bool("generated_tracking", result.Generated).
		Msg("label generated")

	return result, nil
}

// TrackingNumber issues a synthetic tracking identifier for courier.
func (s *LabelService) TrackingNumber(_ context.Context, courier string) (string, error) {
	p, err := s.catalog.Lookup(courier)
	if err != nil {
		return "", err
	}
	return s.tracking.Generate(p), nil
}

// selectInto fills an empty session from the input's courier and service.
func (s *LabelService) selectInto(sess *domain.Session, in domain.ShipmentInput) error {
	if sess.Courier != "" {
		return nil
	}
	courier := in.Courier
	if courier == "" {
		courier = catalog.DefaultCourier
	}
	if err := s.catalog.SelectCourier(sess, courier); err != nil {
		return err
	}
	if in.Service == "" {
		return nil
	}
	if err := s.catalog.SelectService(sess, in.Service); err != nil {
		if !errors.Is(err, domain.ErrServiceNotOffered) {
			return err
		}
		s.logger.Debug().Str("courier", sess.Courier).Str("service", in.Service).Msg("service not offered, using default")
	}
	return nil
}

func validateShipment(in domain.ShipmentInput) error {
	var missing []string
	if in.RecipientName == "" {
		missing = append(missing, "recipient_name")
	}
	if in.RecipientAddr1 == "" {
		missing = append(missing, "recipient_addr1")
	}
	if in.RecipientPostcode == "" {
		missing = append(missing, "recipient_postcode")
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Fields: missing}
	}
	return nil
}
