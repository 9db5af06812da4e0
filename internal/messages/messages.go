package messages

// User-facing API messages. Kept in one place so handlers and tests agree on
// the exact wording.
const (
	UserRegistered      = "User registered successfully."
	LoginSuccess        = "Login successfully."
	LogoutSuccess       = "User logout successfully"
	Unauthorized        = "Unauthorised"
	CredentialsNotMatch = "Invalid email or password."
	SomethingWentWrong  = "Something went wrong, please try again."

	MaxDurationExceeded  = "Maximum booking duration is 2 hours."
	SlotUnavailable      = "Your requested time slot is already booked."
	AppointmentSuccess   = "Appointment booked successfully."
	AppointmentList      = "Appointment list."
	DoctorDetails        = "Doctor details with available slots"
	DataNotFound         = "Data not found!"
	AppointmentCancelled = "Appointment cancelled successfully."
	DoNotCancelled       = "You cannot cancel an appointment less than 24 hours before it starts"
	AppointmentCompleted = "Appointment mark as completed."
	AlreadyCancelled     = "This appointment has already been cancelled."
	AlreadyCompleted     = "This appointment has already been marked as completed."
)
