package rabbitmq

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetReceiptQueues возвращает очереди событий оплаченных заказов.
func GetReceiptQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "payment.recorded", RoutingKey: "recorded"},
	}
}
