package service

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type Health struct {
	DB *bun.DB
}

func NewHealth(db *bun.DB) *Health {
	return &Health{DB: db}
}

func (s *Health) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()
	return s.DB.PingContext(ctx)
}
