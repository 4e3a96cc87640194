package model

// Reservation holds a stay over the half-open day range [CheckIn, CheckOut).
type Reservation struct {
	ID       int `json:"id"`
	ClientID int `json:"client_id"`
	RoomID   int `json:"room_id"`
	CheckIn  int `json:"check_in"`
	CheckOut int `json:"check_out"`
}

// Nights is the billable length of the stay, never negative.
func (r Reservation) Nights() int {
	return max(0, r.CheckOut-r.CheckIn)
}
