package service

import (
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

type GitfeedService struct {
	Config *Config
	DB     *bun.DB
	Logger *lecho.Logger
}
