package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/99minutos/label-system/internal/core/catalog"
	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

// TemplateService keeps named field sets in a TemplateStore and applies them
// to a labelling session.
type TemplateService struct {
	store   ports.TemplateStore
	catalog *catalog.Catalog
	clock   ports.Clock
	logger  zerolog.Logger
}

func NewTemplateService(store ports.TemplateStore, cat *catalog.Catalog, clock ports.Clock, logger zerolog.Logger) *TemplateService {
	return &TemplateService{store: store, catalog: cat, clock: clock, logger: logger}
}

// Save stores fields under name, replacing any template already there.
func (s *TemplateService) Save(ctx context.Context, name string, fields domain.ShipmentInput) (*domain.NamedTemplate, error) {
	name, err := templateName(name)
	if err != nil {
		return nil, err
	}
	t := &domain.NamedTemplate{Name: name, Fields: fields, UpdatedAt: s.clock.Now().UTC()}
	if err := s.store.Set(ctx, t); err != nil {
		return nil, fmt.Errorf("save template: %w", err)
	}
	s.logger.Info().Str("template", name).Msg("template saved")
	return t, nil
}

// Load returns the template stored under name, or ErrTemplateNotFound.
func (s *TemplateService) Load(ctx context.Context, name string) (*domain.NamedTemplate, error) {
	name, err := templateName(name)
	if err != nil {
		return nil, err
	}
	t, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load template: %w", err)
	}
	return t, nil
}

// Delete removes name. Removing a missing template is not an error; the
// boolean reports whether anything was removed.
func (s *TemplateService) Delete(ctx context.Context, name string) (bool, error) {
	name, err := templateName(name)
	if err != nil {
		return false, err
	}
	removed, err := s.store.Delete(ctx, name)
	if err != nil {
		return false, fmt.Errorf("delete template: %w", err)
	}
	if removed {
		s.logger.Info().Str("template", name).Msg("template deleted")
	}
	return removed, nil
}

func (s *TemplateService) List(ctx context.Context) ([]string, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return names, nil
}

// Apply loads name into sess. The stored courier is selected first so the
// service list is refreshed, then the stored service is selected when that
// courier still offers it. The returned fields carry the session's final
// courier and service.
func (s *TemplateService) Apply(ctx context.Context, sess *domain.Session, name string) (domain.ShipmentInput, error) {
	t, err := s.Load(ctx, name)
	if err != nil {
		return domain.ShipmentInput{}, err
	}
	fields := t.Fields

	if fields.Courier != "" {
		if err := s.catalog.SelectCourier(sess, fields.Courier); err != nil {
			s.logger.Warn().Err(err).Str("template", t.Name).Msg("stored courier ignored")
		}
	}
	if sess.Courier == "" {
		if err := s.catalog.SelectCourier(sess, catalog.DefaultCourier); err != nil {
			return domain.ShipmentInput{}, err
		}
	}
	if fields.Service != "" && s.catalog.Offers(sess.Courier, fields.Service) {
		sess.Service = fields.Service
	}
	sess.Template = t.Name

	fields.Courier, fields.Service = sess.Courier, sess.Service
	return fields, nil
}

// templateName rejects blank names. Non-blank names are used as given, so
// "Warehouse" and " warehouse" are distinct keys.
func templateName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", domain.ErrInvalidTemplateName
	}
	return name, nil
}
