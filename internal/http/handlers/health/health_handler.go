package health

import (
	"net/http"
	"time"

	"mercato/internal/http/responses"
	"mercato/internal/kafka"
)

type kafkaStatus struct {
	Connected        bool                `json:"connected"`
	ConsumersRunning bool                `json:"consumersRunning"`
	Groups           []kafka.GroupStatus `json:"groups"`
}

type healthResponse struct {
	Status    string      `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Kafka     kafkaStatus `json:"kafka"`
}

type Handler struct {
	events       *kafka.Service
	kafkaEnabled bool
}

func NewHandler(events *kafka.Service, kafkaEnabled bool) *Handler {
	return &Handler{events: events, kafkaEnabled: kafkaEnabled}
}

// Check reports liveness plus the messaging layer's aggregate state. A
// disconnected producer or a stopped consumer group degrades the status
// rather than hiding behind a bare 200.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	st := h.events.Status()

	resp := healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Kafka: kafkaStatus{
			Connected:        st.ProducerConnected,
			ConsumersRunning: st.Running,
			Groups:           st.Groups,
		},
	}

	code := http.StatusOK
	if h.kafkaEnabled && (!st.ProducerConnected || !st.Running) {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	responses.WriteJSON(w, code, resp)
}
