package kafka

// Topic names are part of the wire compatibility surface and are fixed
// strings, never configurable per call.
const (
	TopicUserEvents    = "user-events"
	TopicProductEvents = "product-events"
	TopicOrderEvents   = "order-events"
	TopicAPIEvents     = "api-events"
	TopicAuditLogs     = "audit-logs"
)

// Event type tags, dot-namespaced by domain.
const (
	EventUserCreated     = "user.created"
	EventUserUpdated     = "user.updated"
	EventUserDeleted     = "user.deleted"
	EventUserDeactivated = "user.deactivated"

	EventProductCreated      = "product.created"
	EventProductUpdated      = "product.updated"
	EventProductDeleted      = "product.deleted"
	EventProductStockUpdated = "product.stock.updated"

	EventOrderCreated       = "order.created"
	EventOrderUpdated       = "order.updated"
	EventOrderCancelled     = "order.cancelled"
	EventOrderStatusChanged = "order.status.changed"

	EventAPIRequest  = "api.request"
	EventAPIResponse = "api.response"
	EventAPIError    = "api.error"

	EventAuditLog = "audit.log"
)

// Metadata keys used for correlation. Handlers may read them but never
// validate them beyond presence.
const (
	MetaCorrelationID = "correlationId"
	MetaUserID        = "userId"
	MetaSessionID     = "sessionId"
	MetaProductID     = "productId"
	MetaOrderID       = "orderId"
)

// GroupID builds the consumer group id for a topic. One group per
// (service-role, topic-domain) pair, so independent replicas of the same
// role share partition assignment while different roles do not compete.
func GroupID(prefix, topic string) string {
	return prefix + "-" + topic
}
