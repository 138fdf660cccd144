package rental

// Tracking statuses a record moves through after an order is placed.
const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusInTransit  = "In Transit"
	StatusDelivered  = "Delivered"
	StatusReturned   = "Returned"
)

// Defaults written by PlaceOrder for the freshly created record.
const (
	initialLocation = "Warehouse"
	initialCourier  = "Default Courier"
)

var knownStatuses = map[string]bool{
	StatusProcessing: true,
	StatusShipped:    true,
	StatusInTransit:  true,
	StatusDelivered:  true,
	StatusReturned:   true,
}

func KnownStatus(s string) bool { return knownStatuses[s] }
