package responses

import "sirsak-service/internal/app/models"

type AdminDashboard struct {
	TotalRooms         int                  `json:"total_rooms"`
	TotalReservations  int                  `json:"total_reservations"`
	PendingApprovals   int                  `json:"pending_approvals"`
	ActiveReservations int                  `json:"active_reservations"`
	RecentReservations []models.Reservation `json:"recent_reservations"`
	RecentFeedback     []models.Feedback    `json:"recent_feedback"`
}
