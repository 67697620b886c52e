package tool

// ValidationError is the error-style envelope used by check_availability and
// make_reservation when an argument fails validation before any state is
// touched.
type ValidationError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

const (
	msgPartySizeNotNumeric = "Invalid party size. Please provide a number."
	msgPartySizeNotPos     = "Party size must be a positive number."
	msgBadDateFormat       = "Invalid date format. Please use YYYY-MM-DD format."
	msgBadTimeFormat       = "Invalid time format. Please use HH:MM format (24-hour)."
	msgMissingUserName     = "Please provide your name for the reservation."
	msgMissingUserPhone    = "Please provide a contact phone number for the reservation."
)

// checkAvailability validates party_size, then date, then time, and only
// then delegates. The first failing field decides the surfaced message.
func checkAvailability(mgr DataManager, args map[string]any) any {
	partySize, verr := partySizeArg(args)
	if verr != nil {
		return *verr
	}
	date := stringArg(args, "date")
	if !validDate(date) {
		return ValidationError{Error: true, Message: msgBadDateFormat}
	}
	timeOfDay := stringArg(args, "time")
	if !validTime(timeOfDay) {
		return ValidationError{Error: true, Message: msgBadTimeFormat}
	}

	return mgr.CheckAvailability(stringArg(args, "restaurant_name"), date, timeOfDay, partySize)
}

// makeReservation validates party_size, user_name, user_phone, date, then
// time; the order determines which single message is surfaced when several
// fields are invalid.
func makeReservation(mgr DataManager, args map[string]any) any {
	partySize, verr := partySizeArg(args)
	if verr != nil {
		return *verr
	}
	userName := stringArg(args, "user_name")
	if userName == "" {
		return ValidationError{Error: true, Message: msgMissingUserName}
	}
	userPhone := stringArg(args, "user_phone")
	if userPhone == "" {
		return ValidationError{Error: true, Message: msgMissingUserPhone}
	}
	date := stringArg(args, "date")
	if !validDate(date) {
		return ValidationError{Error: true, Message: msgBadDateFormat}
	}
	timeOfDay := stringArg(args, "time")
	if !validTime(timeOfDay) {
		return ValidationError{Error: true, Message: msgBadTimeFormat}
	}

	return mgr.MakeReservation(stringArg(args, "restaurant_name"), date, timeOfDay, partySize, userName, userPhone)
}
