package dto

import (
	"time"

	"fleetcare/internal/domain/entity"
)

// CreateVehicleRequest is the DTO for registering a vehicle.
type CreateVehicleRequest struct {
	Name           string   `json:"name"`
	CurrentMileage float64  `json:"current_mileage"`
	CurrentHours   *float64 `json:"current_hours,omitempty"`
}

// UpdateVehicleRequest is the DTO for a partial vehicle update.
type UpdateVehicleRequest struct {
	Name           *string  `json:"name,omitempty"`
	CurrentMileage *float64 `json:"current_mileage,omitempty"`
	CurrentHours   *float64 `json:"current_hours,omitempty"`
}

// VehicleResponse is the DTO for sending vehicle information to the client.
type VehicleResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	CurrentMileage float64  `json:"current_mileage"`
	CurrentHours   *float64 `json:"current_hours,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateServiceRecordRequest is the DTO for logging a completed service.
type CreateServiceRecordRequest struct {
	PerformedAt *time.Time `json:"performed_at,omitempty"` // defaults to now
	Mileage     float64    `json:"mileage"`
	Hours       *float64   `json:"hours,omitempty"`
	Description string     `json:"description,omitempty"`
}

// ServiceRecordResponse is the DTO for sending a service record to the client.
type ServiceRecordResponse struct {
	ID          uint      `json:"id"`
	VehicleID   uint      `json:"vehicle_id"`
	PerformedAt time.Time `json:"performed_at"`
	Mileage     float64   `json:"mileage"`
	Hours       *float64  `json:"hours,omitempty"`
	Description string    `json:"description,omitempty"`
}

// ToVehicleResponse converts an entity.Vehicle to a VehicleResponse DTO.
func ToVehicleResponse(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:             v.ID,
		Name:           v.Name,
		CurrentMileage: v.CurrentMileage,
		CurrentHours:   v.CurrentHours,
		CreatedAt:      v.CreatedAt,
	}
}

// ToVehicleResponseList converts a slice of vehicles to DTOs.
func ToVehicleResponseList(vehicles []*entity.Vehicle) []VehicleResponse {
	list := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		list[i] = ToVehicleResponse(v)
	}
	return list
}

// ToServiceRecordResponse converts an entity.ServiceRecord to a DTO.
func ToServiceRecordResponse(r *entity.ServiceRecord) ServiceRecordResponse {
	return ServiceRecordResponse{
		ID:          r.ID,
		VehicleID:   r.VehicleID,
		PerformedAt: r.PerformedAt,
		Mileage:     r.Mileage,
		Hours:       r.Hours,
		Description: r.Description,
	}
}

// ToServiceRecordResponseList converts a slice of service records to DTOs.
func ToServiceRecordResponseList(records []*entity.ServiceRecord) []ServiceRecordResponse {
	list := make([]ServiceRecordResponse, len(records))
	for i, r := range records {
		list[i] = ToServiceRecordResponse(r)
	}
	return list
}
