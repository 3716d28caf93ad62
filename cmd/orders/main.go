package main

import (
	"fmt"

	"github.com/levushkin/orders-backend/internal/app"
	"github.com/levushkin/orders-backend/internal/config"
	"github.com/levushkin/orders-backend/internal/logger"
	"github.com/levushkin/orders-backend/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// создание и миграция хранилища
	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	defer database.Close()
	if err := database.Initialize(); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}
	// запуск сервера
	app.Run(config, storage.NewSubmissionsStorage(database))
}
