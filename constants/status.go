package constants

// OrderStatus is the canonical processing status for rows in purchase_orders.
type OrderStatus string

// Stable values (store these exact strings in DB).
const (
	StatusApproved    OrderStatus = "Approved"     // confident enough for straight-through processing
	StatusNeedsReview OrderStatus = "Needs Review" // a human looks at it first
	StatusRejected    OrderStatus = "Rejected"     // extraction too weak to act on
)

// PriorityLevel classifies how quickly an order should be handled.
type PriorityLevel string

const (
	PriorityNormal PriorityLevel = "Normal"
	PriorityUrgent PriorityLevel = "Urgent"
)

// SourceEmail is the only order source this core produces.
const SourceEmail = "Email"
