package constvars

const (
	ResponseUnknown = "unknown"

	GetTimeGridSuccessMessage            = "get time grid successfully"
	GetReservationBuilderSuccessMessage  = "get reservation builder successfully"
	SelectRoomAndDateSuccessMessage      = "room availability loaded successfully"
	ChooseSlotSuccessMessage             = "time slot chosen successfully"
	UpdateReservationDetailsMessage      = "reservation details updated successfully"
	SubmitReservationSuccessMessage      = "reservation submitted successfully"
	ResetReservationBuilderMessage       = "reservation builder reset successfully"
	GetRoomsSuccessMessage               = "get rooms successfully"
	GetRoomSuccessMessage                = "get room successfully"
	GetLocationsSuccessMessage           = "get locations successfully"
	GetReservationsSuccessMessage        = "get reservations successfully"
	GetPendingReservationsSuccessMessage = "get pending reservations successfully"
	ApproveReservationSuccessMessage     = "reservation approved successfully"
	DeclineReservationSuccessMessage     = "reservation declined successfully"
	GetPendingFeedbackSuccessMessage     = "get reservations awaiting feedback successfully"
	GetMyFeedbackSuccessMessage          = "get feedback successfully"
	SubmitFeedbackSuccessMessage         = "feedback submitted successfully"
	GetAdminDashboardSuccessMessage      = "get admin dashboard successfully"
)
