// Package rabbitmq содержит подключение к RabbitMQ и публикацию событий
// сервиса: после записанного чекаута уходит событие с чеком для
// downstream-потребителей (уведомления, кухня).
package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// Conn держит соединение и канал RabbitMQ.
type Conn struct {
	Connection *amqp.Connection
	Channel    *amqp.Channel
}

// Connect устанавливает соединение с RabbitMQ, открывает канал
// и объявляет очереди событий.
func Connect(url string) (*Conn, error) {
	const op = "rabbitmq.Connect"

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, q := range GetReceiptQueues() {
		if _, err = ch.QueueDeclare(q.QueueName, true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return &Conn{Connection: conn, Channel: ch}, nil
}

// Close закрывает канал и соединение.
func (c *Conn) Close() error {
	if err := c.Channel.Close(); err != nil {
		return err
	}
	return c.Connection.Close()
}

// PublishReceipt публикует событие записанного чекаута в очередь чеков.
func (c *Conn) PublishReceipt(message any) error {
	return PublishMessage(c.Channel, "", GetReceiptQueues()[0].QueueName, message)
}

// PublishMessage публикует сообщение в RabbitMQ.
func PublishMessage(ch *amqp.Channel, exchange string, routingkey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingkey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
