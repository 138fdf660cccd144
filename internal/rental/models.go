// Package rental holds the domain operations of the game-rental store:
// users, catalog, rental orders with their line items, and tracking.
// All state lives in the external database; these types only carry
// transient values between prompts and statements.
package rental

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleEmployee || r == RoleManager
}

type User struct {
	Login           string
	Password        string
	Role            Role
	PhoneNum        string
	NumOverdueGames int
}

type CatalogItem struct {
	GameID      string
	GameName    string
	Genre       string
	Price       float64
	Description string
	ImageURL    string
}

type RentalOrder struct {
	RentalOrderID  string
	Login          string
	NoOfGames      int
	TotalPrice     float64
	OrderTimestamp time.Time
	DueDate        time.Time
}

type GameLineItem struct {
	RentalOrderID string
	GameID        string
	UnitsOrdered  int
}

type TrackingRecord struct {
	TrackingID         string
	RentalOrderID      string
	Status             string
	CurrentLocation    string
	CourierName        string
	AdditionalComments string
	LastUpdateDate     time.Time
}

// OrderLine is one prompted line item of an order being placed.
type OrderLine struct {
	GameID string
	Units  int
}
