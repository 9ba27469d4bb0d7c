package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "SRSK_SVC_"
)

// Roles as stored by the dashboards after login.
const (
	SirsakRoleUser  = "user"
	SirsakRoleAdmin = "admin"
)

// Remote API resources. Trailing slashes are required by the remote API.
const (
	ResourceRooms        = "/rooms/"
	ResourceLocations    = "/locations/"
	ResourceReservations = "/reservations/"
	ResourceFeedback     = "/feedback/"
	ResourceMyFeedback   = "/feedback/my_feedback/"
)

const (
	ResourceRoomAvailabilityFormat = "/rooms/%s/availability"
	ResourceRoomDetailFormat       = "/rooms/%s/"
	ResourceReservationFormat      = "/reservations/%s/"
)

const (
	ReservationStatusPending  = "PENDING"
	ReservationStatusApproved = "APPROVED"
	ReservationStatusDeclined = "DECLINED"
)

const (
	ReservationOrderingNewestFirst = "-created_at"
)

const (
	QueryParamPage     = "page"
	QueryParamSearch   = "search"
	QueryParamLocation = "location"
	QueryParamCapacity = "capacity"
	QueryParamStatus   = "status"
	QueryParamOrdering = "ordering"
	QueryParamStart    = "start"
	QueryParamEnd      = "end"
)

// Admin dashboard list sizes.
const (
	DashboardRecentReservationsLimit = 5
	DashboardRecentFeedbackLimit     = 4
)

// DrainPagesMaxPages bounds how many pages a single drain may follow.
const DrainPagesMaxPages = 500

const (
	URLParamRoomID        = "room_id"
	URLParamReservationID = "reservation_id"
)

const (
	JWTClaimUserID   = "user_id"
	JWTClaimUsername = "username"
	JWTClaimRole     = "role"
	JWTClaimExpiry   = "exp"
)
