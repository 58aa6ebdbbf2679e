package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/annel0/golf-editor/internal/course"
	"github.com/annel0/golf-editor/internal/forest"
	"github.com/annel0/golf-editor/internal/gen"
	"github.com/annel0/golf-editor/internal/logging"
	"github.com/annel0/golf-editor/internal/middleware"
	"github.com/annel0/golf-editor/internal/render"
	"github.com/annel0/golf-editor/internal/storage"
	"github.com/gin-gonic/gin"
)

// RestServer представляет REST API сервер редактора
type RestServer struct {
	router   *gin.Engine
	store    *storage.CourseStore
	tiler    *forest.Tiler
	renderer *render.Renderer
	port     string
	metrics  *TilingMetrics
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port     string               // порт для запуска сервера
	Store    *storage.CourseStore // хранилище лунок
	Renderer *render.Renderer     // рендерер лунок, может быть nil
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8088"
	}

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	loggerMw := middleware.NewRequestLogger()
	router.Use(loggerMw.Handler())

	promMw := middleware.NewPrometheusMiddleware("golf_editor")
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	server := &RestServer{
		router:   router,
		store:    config.Store,
		tiler:    forest.NewTiler(forest.MustDefaultCatalog()),
		renderer: config.Renderer,
		port:     config.Port,
		metrics:  NewTilingMetrics(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	// Middleware для CORS
	rs.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := rs.router.Group("/api")
	{
		courses := api.Group("/courses/:course")
		{
			courses.GET("/holes", rs.handleListHoles)
			courses.GET("/holes/:num", rs.handleGetHole)
			courses.PUT("/holes/:num", rs.handleSaveHole)
			courses.DELETE("/holes/:num", rs.handleDeleteHole)
			courses.POST("/holes/:num/forest", rs.handleTileForest)
			courses.GET("/holes/:num/render", rs.handleRenderHole)
		}
		api.POST("/generate", rs.handleGenerate)
	}

	// Health check
	rs.router.GET("/health", rs.handleHealth)
}

func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// holeParams извлекает имя поля и номер лунки из пути
func holeParams(c *gin.Context) (string, int, bool) {
	courseName := c.Param("course")
	num, err := strconv.Atoi(c.Param("num"))
	if err != nil || num < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный номер лунки"})
		return "", 0, false
	}
	return courseName, num, true
}

func (rs *RestServer) handleListHoles(c *gin.Context) {
	nums, err := rs.store.ListHoles(c.Param("course"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if nums == nil {
		nums = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"holes": nums})
}

func (rs *RestServer) handleGetHole(c *gin.Context) {
	courseName, num, ok := holeParams(c)
	if !ok {
		return
	}

	hole, err := rs.store.LoadHole(courseName, num)
	if errors.Is(err, storage.ErrHoleNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "лунка не найдена"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hole)
}

func (rs *RestServer) handleSaveHole(c *gin.Context) {
	courseName, num, ok := holeParams(c)
	if !ok {
		return
	}

	var hole course.HoleData
	if err := c.ShouldBindJSON(&hole); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := rs.store.SaveHole(courseName, num, &hole); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.LogInfo("Лунка %s/%02d сохранена", courseName, num)
	c.JSON(http.StatusOK, gin.H{"saved": num})
}

func (rs *RestServer) handleDeleteHole(c *gin.Context) {
	courseName, num, ok := holeParams(c)
	if !ok {
		return
	}

	if err := rs.store.DeleteHole(courseName, num); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": num})
}

// handleTileForest разбирает лесной регион лунки по каталогу и
// записывает результат обратно в хранилище.
func (rs *RestServer) handleTileForest(c *gin.Context) {
	courseName, num, ok := holeParams(c)
	if !ok {
		return
	}

	hole, err := rs.store.LoadHole(courseName, num)
	if errors.Is(err, storage.ErrHoleNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "лунка не найдена"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mask := course.ForestMask(hole.Terrain)
	resolved, err := rs.tiler.TileRegion(mask)
	if err != nil {
		rs.respondTilingError(c, err)
		return
	}

	course.ApplyResolved(hole.Terrain, resolved)
	if err := rs.store.SaveHole(courseName, num, hole); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rs.metrics.ObserveResult("ok")
	logging.LogInfo("Лес лунки %s/%02d разобран: %d клеток", courseName, num, mask.Count())
	c.JSON(http.StatusOK, gin.H{"tiled": mask.Count()})
}

// respondTilingError переводит ошибки разбора леса в HTTP-ответы.
// Ошибки формы региона - вина клиента, нарушение согласованности
// результата - внутренний дефект.
func (rs *RestServer) respondTilingError(c *gin.Context, err error) {
	var unreal *forest.UnrealizableShapeError
	var corner *forest.CornerAmbiguityError
	var inconsistent *forest.ConsistencyError

	switch {
	case errors.As(err, &unreal):
		rs.metrics.ObserveResult("unrealizable")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "регион не разбирается по каталогу",
			"x":      unreal.Pos.X,
			"y":      unreal.Pos.Y,
			"family": int(unreal.Family),
			"target": unreal.Target.String(),
		})
	case errors.As(err, &corner):
		rs.metrics.ObserveResult("corner_ambiguity")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "неоднозначный диагональный сосед",
			"x":        corner.Pos.X,
			"y":        corner.Pos.Y,
			"family":   int(corner.Family),
			"target":   corner.Target.String(),
			"diagonal": corner.Missing.String(),
		})
	case errors.As(err, &inconsistent):
		rs.metrics.ObserveResult("inconsistent")
		logging.LogError("Нарушение согласованности результата: %v", inconsistent)
		c.JSON(http.StatusInternalServerError, gin.H{"error": inconsistent.Error()})
	default:
		rs.metrics.ObserveResult("error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GenerateRequest представляет запрос на генерацию лунки
type GenerateRequest struct {
	Seed   int64  `json:"seed"`
	Hole   int    `json:"hole"`
	Height int    `json:"height"`
	Course string `json:"course,omitempty"` // если задано, лунка сохраняется
}

func (rs *RestServer) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Hole < 1 {
		req.Hole = 1
	}
	if req.Height < 8 || req.Height > 64 {
		req.Height = 32
	}

	hole := gen.NewHoleGenerator(req.Seed).GenerateHole(req.Hole, req.Height)

	// Сгенерированный лес всегда тайлится, но результат всё равно
	// проходит общий разбор с валидацией.
	resolved, err := rs.tiler.TileRegion(course.ForestMask(hole.Terrain))
	if err != nil {
		rs.respondTilingError(c, err)
		return
	}
	course.ApplyResolved(hole.Terrain, resolved)

	if req.Course != "" {
		if err := rs.store.SaveHole(req.Course, req.Hole, hole); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		logging.LogInfo("Сгенерирована и сохранена лунка %s/%02d", req.Course, req.Hole)
	}

	c.JSON(http.StatusOK, hole)
}

func (rs *RestServer) handleRenderHole(c *gin.Context) {
	if rs.renderer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "тайлсет не загружен"})
		return
	}

	courseName, num, ok := holeParams(c)
	if !ok {
		return
	}

	hole, err := rs.store.LoadHole(courseName, num)
	if errors.Is(err, storage.ErrHoleNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "лунка не найдена"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := rs.renderer.RenderPNG(c.Writer, hole); err != nil {
		logging.LogError("Рендер лунки %s/%02d: %v", courseName, num, err)
	}
}

// Router возвращает роутер для тестов
func (rs *RestServer) Router() *gin.Engine {
	return rs.router
}

// Start запускает REST сервер
func (rs *RestServer) Start() error {
	logging.LogInfo("REST API слушает %s", rs.port)
	return rs.router.Run(rs.port)
}
