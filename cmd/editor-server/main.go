package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/golf-editor/internal/api"
	"github.com/annel0/golf-editor/internal/config"
	"github.com/annel0/golf-editor/internal/logging"
	"github.com/annel0/golf-editor/internal/render"
	"github.com/annel0/golf-editor/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "Путь к YAML-конфигу (или ENV GOLF_CONFIG)")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitLogger(); err != nil {
		log.Fatalf("Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()

	logging.LogInfo("Запуск сервера редактора полей...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.LogError("Ошибка чтения конфигурации: %v", err)
		log.Fatalf("Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	restPort := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())
	dataPath := cfg.Storage.GetDataPath()
	logging.LogInfo("Конфигурация: REST=%s, данные=%s", restPort, dataPath)

	store, err := storage.NewCourseStore(dataPath)
	if err != nil {
		logging.LogError("Ошибка открытия хранилища: %v", err)
		log.Fatalf("Ошибка открытия хранилища: %v", err)
	}
	defer store.Close()

	// Рендерер опционален: без тайлсета сервер работает,
	// но эндпоинт рендера отвечает 503.
	var renderer *render.Renderer
	if tileset, err := render.LoadTileset(cfg.Render.GetTilesetPath()); err == nil {
		renderer = render.NewRenderer(tileset, cfg.Render.GetScale())
		logging.LogInfo("Тайлсет загружен: %d тайлов", tileset.NumTiles())
	} else {
		logging.LogWarn("Тайлсет недоступен, рендер отключён: %v", err)
	}

	server := api.NewRestServer(api.Config{
		Port:     restPort,
		Store:    store,
		Renderer: renderer,
	})

	go func() {
		if err := server.Start(); err != nil {
			logging.LogError("Ошибка REST сервера: %v", err)
			os.Exit(1)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.LogInfo("Остановка сервера редактора...")
}
