package confirm_bookings

// ConfirmBookingsRequest HTTP request model
type ConfirmBookingsRequest struct {
	BookingIDs []string `json:"bookingIds"`
}
