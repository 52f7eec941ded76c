package service

import (
	"gorm.io/gorm"

	"github.com/lumawallet/buyflow/buy"
	"github.com/lumawallet/buyflow/config"
)

type Service interface {
	Shutdown()

	GetProcessor() *buy.Processor
	GetReconciler() *buy.Reconciler
	GetDB() *gorm.DB
	GetConfig() config.Config
}
