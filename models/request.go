package models

// RoomSelection is one room kind with the number of units requested.
type RoomSelection struct {
	Kind     RoomKind `bson:"kind" json:"kind" binding:"required"`
	Quantity int      `bson:"quantity" json:"quantity" binding:"required,gte=1"`
}

// AddonSelection is one add-on kind with the number of units requested.
type AddonSelection struct {
	Kind     AddonKind `bson:"kind" json:"kind" binding:"required"`
	Quantity int       `bson:"quantity" json:"quantity" binding:"required,gte=1"`
}

// BookingRequest is the caller-supplied job configuration. It carries no
// identity and is consumed once, to produce a quote or a booking.
type BookingRequest struct {
	ServiceType  ServiceType      `json:"serviceType" binding:"required"`
	PropertyType string           `json:"propertyType" binding:"omitempty,oneof=apartment house office other"`
	Rooms        []RoomSelection  `json:"rooms" binding:"required,min=1,dive"`
	Addons       []AddonSelection `json:"addons" binding:"omitempty,dive"`
	Frequency    Frequency        `json:"frequency" binding:"required,oneof=one-time weekly bi-weekly monthly"`
	Date         string           `json:"date" binding:"required,datetime=2006-01-02,futuredate"`
	StartTime    string           `json:"startTime" binding:"required,datetime=15:04"`
	HasPets      bool             `json:"hasPets"`
	Notes        string           `json:"notes" binding:"omitempty,max=2000"`
}
