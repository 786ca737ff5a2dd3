package booking

// LoyaltyInterval is the booking ordinal at which the discount
// repeats: every 6th booking by the same phone number.
const LoyaltyInterval = 6

// DepositAmount is the minimum verified payment required to admit a
// booking, in currency units.
const DepositAmount = 100.0

// DiscountApplies decides loyalty discount eligibility for the
// booking about to be created, given how many confirmed bookings the
// phone number already has. The booking UI pre-check and the
// admission path both go through this function so they cannot
// diverge.
func DiscountApplies(priorBookingCount int64) bool {
	return (priorBookingCount+1)%LoyaltyInterval == 0
}
