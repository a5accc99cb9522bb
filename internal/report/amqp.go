package report

import (
	"encoding/json"
	"log/slog"

	"orderseed/internal/models"
)

// Publisher is the slice of the message queue client the event sink needs.
// *rabbitmq.Client satisfies it.
type Publisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// amqpReporter publishes the finished run as a message on the generated
// orders queue. The sink is observational: publish failures are logged and
// never fail the run.
type amqpReporter struct {
	pub Publisher
	log *slog.Logger
}

// NewAMQP creates a Reporter that publishes the run summary to a message broker.
func NewAMQP(pub Publisher, logger *slog.Logger) Reporter {
	return &amqpReporter{pub: pub, log: logger}
}

// Stage events stay local; only the finished order is worth a broker message.
func (r *amqpReporter) Stage(stage string, kv ...any) {}

func (r *amqpReporter) Summary(summary *models.RunSummary) {
	body, err := json.Marshal(summary)
	if err != nil {
		r.log.Warn("failed to marshal order event", "run_id", summary.RunID, "error", err)
		return
	}
	if err := r.pub.Publish("", "generated_orders", body); err != nil {
		r.log.Warn("failed to publish order event", "run_id", summary.RunID, "error", err)
		return
	}
	r.log.Info("published order event", "run_id", summary.RunID)
}
