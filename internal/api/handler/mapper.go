package handler

import (
	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

// --- Request → Service input ---

func toShipmentInput(f shipmentFields) domain.ShipmentInput {
	return domain.ShipmentInput{
		Courier:           f.Courier,
		Service:           f.Service,
		SenderName:        f.SenderName,
		SenderAddr1:       f.SenderAddr1,
		SenderAddr2:       f.SenderAddr2,
		SenderCity:        f.SenderCity,
		SenderPostcode:    f.SenderPostcode,
		SenderPhone:       f.SenderPhone,
		RecipientName:     f.RecipientName,
		RecipientAddr1:    f.RecipientAddr1,
		RecipientAddr2:    f.RecipientAddr2,
		RecipientCity:     f.RecipientCity,
		RecipientPostcode: f.RecipientPostcode,
		RecipientPhone:    f.RecipientPhone,
		Weight:            f.Weight,
		Reference:         f.Reference,
		Instructions:      f.Instructions,
		Tracking:          f.Tracking,
		SignatureRequired: f.SignatureRequired,
		ParcelType:        f.ParcelType,
		Postage:           f.Postage,
		PostByDate:        f.PostByDate,
		PrintedFrom:       f.PrintedFrom,
		SellerType:        f.SellerType,
		SortCode:          f.SortCode,
		RoutingCode:       f.RoutingCode,
	}
}

// --- Service result → HTTP response ---

func toShipmentFields(in domain.ShipmentInput) shipmentFields {
	return shipmentFields{
		Courier:           in.Courier,
		Service:           in.Service,
		SenderName:        in.SenderName,
		SenderAddr1:       in.SenderAddr1,
		SenderAddr2:       in.SenderAddr2,
		SenderCity:        in.SenderCity,
		SenderPostcode:    in.SenderPostcode,
		SenderPhone:       in.SenderPhone,
		RecipientName:     in.RecipientName,
		RecipientAddr1:    in.RecipientAddr1,
		RecipientAddr2:    in.RecipientAddr2,
		RecipientCity:     in.RecipientCity,
		RecipientPostcode: in.RecipientPostcode,
		RecipientPhone:    in.RecipientPhone,
		Weight:            in.Weight,
		Reference:         in.Reference,
		Instructions:      in.Instructions,
		Tracking:          in.Tracking,
		SignatureRequired: in.SignatureRequired,
		ParcelType:        in.ParcelType,
		Postage:           in.Postage,
		PostByDate:        in.PostByDate,
		PrintedFrom:       in.PrintedFrom,
		SellerType:        in.SellerType,
		SortCode:          in.SortCode,
		RoutingCode:       in.RoutingCode,
	}
}

func toLabelResponse(r *ports.LabelResult) labelResponse {
	return labelResponse{
		Label:             r.Document,
		GeneratedTracking: r.Generated,
		Degradations:      r.Degradations,
	}
}

func toTemplateResponse(t *domain.NamedTemplate) templateResponse {
	return templateResponse{
		Name:      t.Name,
		Fields:    toShipmentFields(t.Fields),
		UpdatedAt: t.UpdatedAt.UTC(),
	}
}

func toCourierResponse(p domain.CourierProfile) courierResponse {
	return courierResponse{
		Key:            p.Key,
		Name:           p.DisplayName,
		TrackingPrefix: p.TrackingPrefix,
		DefaultService: p.DefaultService(),
		Services:       p.Services,
	}
}
