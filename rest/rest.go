package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"voyager.com/craps/craps"
	"voyager.com/craps/game"
	"voyager.com/craps/logging"
)

var restLogger = log.With().Str("logger_name", "rest::rest").Logger()

// appError is the JSON body of every error response.
type appError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

type tableStatus struct {
	Code         string            `json:"code"`
	Phase        string            `json:"phase"`
	Point        int               `json:"point,omitempty"`
	Shooter      string            `json:"shooter"`
	ShooterIndex int               `json:"shooterIndex"`
	RollCount    uint64            `json:"rollCount"`
	Players      []game.PlayerView `json:"players"`
}

// betInput is the wire form of a placement. Amount is a pointer so a missing
// amount is told apart from zero.
type betInput struct {
	Player string `json:"player" binding:"required"`
	Type   string `json:"type" binding:"required"`
	Number int    `json:"number"`
	Amount *int64 `json:"amount" binding:"required"`
	TurnOn bool   `json:"turnOn"`
}

type betResult struct {
	Player  game.PlayerView `json:"player"`
	Message string          `json:"message"`
}

type server struct {
	table *game.Table
}

func NewRouter(table *game.Table) *gin.Engine {
	s := &server{table: table}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/table", s.getTable)
	r.GET("/players/:name", s.getPlayer)
	r.POST("/bets", s.placeBet)
	r.POST("/roll", s.roll)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func RunRestServer(table *game.Table, port int) error {
	restLogger.Info().Str(logging.TableCodeKey, table.Code()).Msgf("REST server listening on port %d", port)
	err := NewRouter(table).Run(fmt.Sprintf(":%d", port))
	return errors.Wrap(err, "REST server stopped")
}

func (s *server) getTable(c *gin.Context) {
	snapshot := s.table.Snapshot()
	status := tableStatus{
		Code:         snapshot.Code,
		Phase:        snapshot.Phase,
		Point:        snapshot.Point,
		ShooterIndex: snapshot.ShooterIndex,
		RollCount:    snapshot.RollCount,
		Players:      snapshot.Players,
	}
	status.Shooter = snapshot.Players[snapshot.ShooterIndex].Name
	c.JSON(http.StatusOK, status)
}

func (s *server) getPlayer(c *gin.Context) {
	name := c.Param("name")
	player, ok := s.table.Player(name)
	if !ok {
		c.JSON(http.StatusNotFound, appError{
			Code:    http.StatusNotFound,
			Message: (&game.UnknownPlayerError{Name: name}).Error(),
		})
		return
	}
	c.JSON(http.StatusOK, player)
}

func (s *server) placeBet(c *gin.Context) {
	var input betInput
	err := c.ShouldBindJSON(&input)
	if err != nil {
		badRequest(c, fmt.Sprintf("Failed to parse bet: %v", err))
		return
	}
	betType, err := craps.ParseBetType(input.Type)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	req := game.BetRequest{
		Player: input.Player,
		Type:   betType,
		Number: input.Number,
		Amount: *input.Amount,
		TurnOn: input.TurnOn,
	}
	err = req.CheckInput()
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	err = s.table.PlaceBet(req)
	if err != nil {
		var playerErr *game.UnknownPlayerError
		var ruleErr *game.RuleViolationError
		switch {
		case errors.As(err, &playerErr):
			c.JSON(http.StatusNotFound, appError{Code: http.StatusNotFound, Message: err.Error()})
		case errors.As(err, &ruleErr):
			c.JSON(http.StatusUnprocessableEntity, appError{
				Code:    http.StatusUnprocessableEntity,
				Message: err.Error(),
				Reason:  ruleErr.Reason,
			})
		default:
			restLogger.Error().Str(logging.TableCodeKey, s.table.Code()).Msgf("Unexpected placement error: %v", err)
			c.JSON(http.StatusInternalServerError, appError{Code: http.StatusInternalServerError, Message: err.Error()})
		}
		return
	}

	player, _ := s.table.Player(input.Player)
	c.JSON(http.StatusOK, betResult{
		Player:  player,
		Message: fmt.Sprintf("%s bet accepted", betType.Title()),
	})
}

func (s *server) roll(c *gin.Context) {
	result := s.table.Roll()
	c.JSON(http.StatusOK, result)
}

func badRequest(c *gin.Context, message string) {
	restLogger.Debug().Msg(message)
	c.JSON(http.StatusBadRequest, appError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
