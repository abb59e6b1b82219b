// Package messaging provides a broker-agnostic publish/subscribe client with
// NATS, NSQ and Kafka drivers selected by configuration.
package messaging
