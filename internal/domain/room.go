package domain

// RoomStatus operational status of a room
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room represents a bookable study room in the library
type Room struct {
	ID       string
	Name     string
	Capacity int
	Status   RoomStatus
}

// IsBookable returns true if the room accepts new booking requests
func (r *Room) IsBookable() bool {
	return r.Status == RoomAvailable
}
