package dto

// CreateRoomRequest is the manager-only payload for adding a room.
type CreateRoomRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity"`
	Price       float64  `json:"price"`
	Amenities   []string `json:"amenities"`
}

// UpdateRoomRequest carries partial room updates; nil fields are left
// unchanged.
type UpdateRoomRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}
