// Package api serves the HTTP control interface for the running show, plus
// the static web client.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/matt-g-everett/ledtween/stream"
	"github.com/matt-g-everett/ledtween/tween"
)

// Controls runs show commands. *stream.Controller implements it.
type Controls interface {
	Do(ctx context.Context, cmd stream.Command) (stream.Status, error)
}

// ApiResponse is the envelope of every API reply.
type ApiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// SpeedRequest is the body of POST /api/show/speed.
type SpeedRequest struct {
	Multiplier float64 `json:"multiplier" binding:"required"`
}

// commandTimeout bounds how long a request waits for the tick loop.
const commandTimeout = 5 * time.Second

var routeCommands = map[string]stream.CommandKind{
	"pause":       stream.CommandPause,
	"resume":      stream.CommandResume,
	"fastforward": stream.CommandFastForward,
	"abort":       stream.CommandAbort,
	"reverse":     stream.CommandReverse,
	"reload":      stream.CommandLoad,
}

// Api is the control server.
type Api struct {
	controls Controls
	router   *gin.Engine
}

// NewApi creates an instance of an Api. Paths outside /api are served from
// the static directory.
func NewApi(controls Controls, static string) *Api {
	a := new(Api)
	a.controls = controls

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	show := r.Group("/api/show")
	{
		show.GET("", a.handleStatus)
		show.POST("/speed", a.handleSpeed)
		for name, kind := range routeCommands {
			show.POST("/"+name, a.handleCommand(kind))
		}
	}

	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(static))))

	a.router = r
	return a
}

// Handler returns the router.
func (a *Api) Handler() http.Handler {
	return a.router
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.router}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s...", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *Api) handleStatus(c *gin.Context) {
	a.run(c, stream.Command{Kind: stream.CommandStatus})
}

func (a *Api) handleSpeed(c *gin.Context) {
	var req SpeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ApiResponse{
			Status: "error",
			Error:  "invalid speed request: " + err.Error(),
		})
		return
	}
	a.run(c, stream.Command{Kind: stream.CommandSpeed, Multiplier: req.Multiplier})
}

func (a *Api) handleCommand(kind stream.CommandKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.run(c, stream.Command{Kind: kind})
	}
}

func (a *Api) run(c *gin.Context, cmd stream.Command) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), commandTimeout)
	defer cancel()

	status, err := a.controls.Do(ctx, cmd)
	if err != nil {
		c.JSON(httpStatus(err), ApiResponse{
			Status: "error",
			Error:  err.Error(),
			Data:   status,
		})
		return
	}

	c.JSON(http.StatusOK, ApiResponse{
		Status:  "success",
		Message: cmd.Kind.String(),
		Data:    status,
	})
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, stream.ErrInvalidSpeed):
		return http.StatusBadRequest
	case errors.Is(err, stream.ErrNoShow),
		errors.Is(err, tween.ErrNotPlaying),
		errors.Is(err, tween.ErrNotStarted),
		errors.Is(err, tween.ErrInvalid),
		errors.Is(err, tween.ErrInfiniteInstant):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
