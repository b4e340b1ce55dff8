package mq

import (
	"context"

	"qrlink/internal/model"
)

// ProducerInterface defines the interface for scan event production
type ProducerInterface interface {
	SendScan(ctx context.Context, msg *model.ScanMessage) error
	Close() error
}

// ConsumerInterface defines the interface for scan event consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}
