package submit

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"orderdesk/src/model"
)

// Recorder receives assembled order intents. There is no execution venue
// behind this interface: recording is the end of the line for an intent.
type Recorder interface {
	Record(ctx context.Context, intent model.OrderIntent) error
}

// LogRecorder writes each intent to the structured log for diagnostics.
type LogRecorder struct {
	log *logger.Entry
}

func NewLogRecorder() *LogRecorder {
	return &LogRecorder{
		log: logger.WithField("component", "LogRecorder"),
	}
}

func (r *LogRecorder) Record(_ context.Context, intent model.OrderIntent) error {
	fields := logger.Fields{
		"client_order_id": intent.ClientOrderID,
		"symbol":          intent.Symbol,
		"side":            intent.Side,
		"type":            intent.Type,
		"size":            intent.Size,
		"leverage":        intent.Leverage,
		"reduce_only":     intent.ReduceOnly,
		"post_only":       intent.PostOnly,
		"time_in_force":   intent.TimeInForce,
	}
	if intent.Price != nil {
		fields["price"] = intent.Price
	}
	if intent.TriggerPrice != nil {
		fields["trigger_price"] = intent.TriggerPrice
	}
	if intent.TakeProfit != nil {
		fields["take_profit"] = intent.TakeProfit
	}
	if intent.StopLoss != nil {
		fields["stop_loss"] = intent.StopLoss
	}

	r.log.WithFields(fields).Info("Order intent recorded")
	return nil
}
