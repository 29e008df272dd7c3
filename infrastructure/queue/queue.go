// Package queue publica e consome mensagens de tarefas no RabbitMQ.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

const (
	RetryHeader = "x-retry-count"
	MaxRetries  = 3
)

// ErrPermanent marca falhas que não adianta reprocessar
var ErrPermanent = errors.New("falha permanente")

// Permanent embrulha err para que a mensagem seja descartada sem novas tentativas
func Permanent(err error) error {
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

// Handler processa o corpo de uma mensagem
type Handler func(ctx context.Context, body []byte) error

// Channel é o subconjunto de *amqp.Channel usado pela fila
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type Queue struct {
	conn    *amqp.Connection
	channel Channel
	name    string
}

// Dial conecta ao broker e declara a fila durável
func Dial(url, name string) (*Queue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("erro ao abrir canal no RabbitMQ: %w", err)
	}

	q, err := NewWithChannel(ch, name)
	if err != nil {
		conn.Close()
		return nil, err
	}
	q.conn = conn

	return q, nil
}

func NewWithChannel(ch Channel, name string) (*Queue, error) {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao declarar fila %s: %w", name, err)
	}

	return &Queue{channel: ch, name: name}, nil
}

func (q *Queue) Name() string {
	return q.name
}

func (q *Queue) Publish(_ context.Context, body []byte) error {
	return q.publish(body, 0)
}

func (q *Queue) publish(body []byte, retries int32) error {
	err := q.channel.Publish("", q.name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      amqp.Table{RetryHeader: retries},
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("erro ao publicar mensagem na fila %s: %w", q.name, err)
	}
	return nil
}

// Consume entrega uma mensagem por vez ao handler até o contexto ser cancelado
func (q *Queue) Consume(ctx context.Context, handler Handler) error {
	if err := q.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("erro ao configurar prefetch: %w", err)
	}

	deliveries, err := q.channel.Consume(
		q.name,
		"",
		false, // autoAck desligado, confirmação manual
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("erro ao registrar consumidor: %w", err)
	}

	logrus.WithField("queue", q.name).Info("Consumidor aguardando mensagens")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Contexto cancelado, encerrando consumidor")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("canal de entregas fechado pelo broker")
			}
			q.handle(ctx, d, handler)
		}
	}
}

// handle confirma a mensagem em qualquer caso. Falhas temporárias são republicadas
// com o contador de tentativas incrementado até MaxRetries.
func (q *Queue) handle(ctx context.Context, d amqp.Delivery, handler Handler) {
	retries := RetryCount(d.Headers)
	logger := logrus.WithFields(logrus.Fields{
		"queue":   q.name,
		"retries": retries,
	})

	err := handler(ctx, d.Body)
	if err == nil {
		_ = d.Ack(false)
		return
	}

	if errors.Is(err, ErrPermanent) {
		logger.WithError(err).Error("Mensagem descartada por falha permanente")
		_ = d.Ack(false)
		return
	}

	if retries >= MaxRetries {
		logger.WithError(err).Error("Mensagem descartada após atingir o limite de tentativas")
		_ = d.Ack(false)
		return
	}

	if pubErr := q.publish(d.Body, retries+1); pubErr != nil {
		logger.WithError(pubErr).Warn("Erro ao republicar mensagem, devolvendo para a fila")
		_ = d.Nack(false, true)
		return
	}

	logger.WithError(err).Warn("Falha ao processar mensagem, nova tentativa agendada")
	_ = d.Ack(false)
}

func (q *Queue) Close() error {
	if err := q.channel.Close(); err != nil {
		return err
	}
	if q.conn != nil {
		return q.conn.Close()
	}
	return nil
}

// RetryCount lê o cabeçalho de tentativas aceitando os tipos inteiros do AMQP
func RetryCount(headers amqp.Table) int32 {
	switch v := headers[RetryHeader].(type) {
	case int32:
		return v
	case int64:
		return int32(v)
	case int:
		return int32(v)
	case int16:
		return int32(v)
	case int8:
		return int32(v)
	}
	return 0
}
