package domain

// Тексты, которые видит пользователь
const (
	MsgLoadFailed        = "Failed to fetch data"
	MsgIncidentSubmitted = "Your incident declaration submitted successfully!"
	MsgIncidentFailed    = "Failed to declare incident. Please try again."
	MsgPaymentSubmitted  = "Your payment submitted successfully!"
	MsgPaymentFailed     = "Failed to submit your payment. Please try again."
	MsgReceiptGenerated  = "Receipt generated successfully!"
	MsgNotAssigned       = "Not assigned yet"
	MsgNoSpeciality      = "N/A"
	MsgNoIncidents       = "No incidents found"
)

// Business validation constants
const (
	MaxIncidentDescriptionLength = 2000
	MaxEmailLength               = 254
)
