package pkg

import (
	"fmt"

	"boatyard/internal/app/config"
	"boatyard/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
	}
}

// Address - адрес, на котором слушает сервер
func (a *Application) Address() string {
	return fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.Handler.SetupRoutes(a.Router)

	serverAddress := a.Address()
	logrus.Infof("listening on %s", serverAddress)
	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("Server down")
}
