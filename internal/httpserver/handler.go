package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"advisor-edge/config"
	"advisor-edge/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.allowedOrigins)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

// registerMiddlewares installs the global chain. It also runs for NoRoute,
// so preflight requests to any path get the CORS answer.
func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(
		mw.Recovery(),
		mw.RequestID(),
		mw.AccessLog(),
		mw.CORS(),
	)
	srv.gin.NoRoute(mw.NotFound())

	srv.l.Infof(context.Background(), "CORS: %d allowed origin(s), environment=%s", len(srv.allowedOrigins), srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)

	if srv.environment == config.EnvironmentProduction {
		return
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	if err := srv.setupChatDomain(ctx, mw); err != nil {
		return err
	}

	if srv.contactUC == nil {
		srv.l.Infof(ctx, "Contact use case not configured, skipping contact route")
		return nil
	}
	return srv.setupContactDomain(ctx, mw)
}
