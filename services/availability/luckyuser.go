package availability

import "timehuddle/models"

// SelectLuckyUser picks the round-robin host who should receive the next
// booking: the eligible host with the fewest bookings in the lookback
// window. On an exact tie the first host in input order wins, so callers
// must pass eligible hosts in a deterministic order, account creation then
// ID ascending as DefaultAvailabilityService.PickLuckyUser does. Selection
// is never random.
func SelectLuckyUser(eligible []models.EventHost, counts map[string]int) (models.EventHost, error) {
	if len(eligible) == 0 {
		return models.EventHost{}, NewConfigurationError("round-robin selection requires at least one eligible host")
	}
	lucky := eligible[0]
	for _, h := range eligible[1:] {
		if counts[h.ID] < counts[lucky.ID] {
			lucky = h
		}
	}
	return lucky, nil
}
