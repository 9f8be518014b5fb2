package handlers

import (
	"gorm.io/gorm"

	"github.com/amal-dz/amal/internal/config"
	"github.com/amal-dz/amal/internal/convo"
	"github.com/amal-dz/amal/internal/store/redisstore"
)

type Handler struct {
	DB     *gorm.DB
	Cfg    config.Config
	Redis  *redisstore.Store
	Convos *convo.Store
}

func NewHandler(db *gorm.DB, cfg config.Config, r *redisstore.Store) *Handler {
	return &Handler{
		DB:     db,
		Cfg:    cfg,
		Redis:  r,
		Convos: convo.New(cfg.MaxConversations),
	}
}
