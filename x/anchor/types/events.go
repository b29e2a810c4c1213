package types

// Event types for the anchor module
const (
	EventTypePriceUpdated        = "anchor_price_updated"
	EventTypePriceGuarded        = "anchor_price_guarded"
	EventTypeFailoverActivated   = "anchor_failover_activated"
	EventTypeFailoverDeactivated = "anchor_failover_deactivated"
)

// Event attribute keys for the anchor module
const (
	AttributeKeySymbolHash    = "symbol_hash"
	AttributeKeyPrice         = "price"
	AttributeKeyReportedPrice = "reported_price"
	AttributeKeyAnchorPrice   = "anchor_price"
	AttributeKeyReporter      = "reporter"
	AttributeKeyActor         = "actor"
)
