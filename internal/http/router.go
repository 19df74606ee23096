package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/portfolio-backend/internal/http/handlers"
	httpMW "github.com/yungbote/portfolio-backend/internal/http/middleware"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

const defaultMaxMultipartMemory = 32 << 20

type RouterConfig struct {
	Log                *logger.Logger
	AllowedOrigins     []string
	FilesRequireAuth   bool
	MaxMultipartMemory int64
	Metrics            *observability.Metrics
	TracingEnabled     bool
	ServiceName        string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler   *httpH.HealthHandler
	AuthHandler     *httpH.AuthHandler
	CourseHandler   *httpH.CourseHandler
	FileHandler     *httpH.FileHandler
	ProfileHandler  *httpH.ProfileHandler
	ResearchHandler *httpH.ResearchHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxMultipartMemory
	if r.MaxMultipartMemory <= 0 {
		r.MaxMultipartMemory = defaultMaxMultipartMemory
	}

	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	var gate gin.HandlerFunc
	if cfg.AuthMiddleware != nil {
		gate = cfg.AuthMiddleware.RequireAuth()
	}
	for _, route := range cfg.Routes() {
		if route.Capability == CapabilityAdmin {
			if gate == nil {
				panic(fmt.Sprintf("http: admin route %s %s registered without an auth middleware", route.Method, route.Path))
			}
			r.Handle(route.Method, route.Path, gate, route.Handler)
			continue
		}
		r.Handle(route.Method, route.Path, route.Handler)
	}

	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	return r
}
