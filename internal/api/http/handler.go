package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"lgame/internal/game"
	"lgame/internal/match"
	"lgame/internal/shared"
)

func writeError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, match.ErrMatchNotFound):
		status = http.StatusNotFound
	case errors.Is(err, match.ErrNotYourTurn),
		errors.Is(err, match.ErrGameOver),
		errors.Is(err, match.ErrNotComputer):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func lookup(c *gin.Context, mgr *match.Manager, id string) (*match.Match, bool) {
	mt, ok := mgr.Get(id)
	if !ok {
		writeError(c, match.ErrMatchNotFound)
	}
	return mt, ok
}

// @Summary Create a match
// @Description Start a match between two controllers, optionally from a custom layout
// @Tags Match
// @Accept json
// @Produce json
// @Param request body CreateMatchRequest true "Match options"
// @Success 200 {object} map[string]interface{}
// @Router /create-match [post]
func CreateMatchHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, err)
			return
		}
		mt, err := mgr.CreateMatch(match.Options{
			Player1: match.Controller(req.Player1),
			Player2: match.Controller(req.Player2),
			First:   game.Player(req.First),
			Depth:   req.Depth,
			Layout:  req.Layout.Layout(),
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"matchId": mt.ID, "match": mt.View()})
	}
}

// @Summary Get match state
// @Tags Match
// @Produce json
// @Param matchId query string true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		mt, ok := lookup(c, mgr, c.Query("matchId"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"match": mt.View()})
	}
}

// @Summary List legal placements
// @Description Returns every placement the player may move their L-piece to; defaults to the side to move
// @Tags Game
// @Produce json
// @Param matchId query string true "Match ID"
// @Param player query int false "Player (1 or 2)"
// @Success 200 {object} map[string]interface{}
// @Router /possible-moves [get]
func PossibleMovesHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		mt, ok := lookup(c, mgr, c.Query("matchId"))
		if !ok {
			return
		}
		player := mt.View().ToMove
		if raw := c.Query("player"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || (n != int(game.Player1) && n != int(game.Player2)) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "player must be 1 or 2"})
				return
			}
			player = game.Player(n)
		}
		moves := mt.LegalMoves(player)
		out := make([][]shared.Coord, 0, len(moves))
		for _, m := range moves {
			out = append(out, shared.PlacementCoords(m))
		}
		c.JSON(http.StatusOK, gin.H{"player": player, "moves": out})
	}
}

// @Summary Player makes a move
// @Description Submit the four cells of the new L placement and an optional neutral relocation
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, err)
			return
		}
		mt, ok := lookup(c, mgr, req.MatchID)
		if !ok {
			return
		}
		mv, err := req.Move()
		if err == nil {
			err = mgr.ApplyMove(mt, mv)
		}
		if err != nil {
			log.Debug().Err(err).Str("match", req.MatchID).Msg("move rejected")
			writeError(c, err)
			return
		}
		view := mt.View()
		c.JSON(http.StatusOK, gin.H{"ok": true, "match": view, "winner": view.Winner})
	}
}

// @Summary Let the computer move
// @Description The side to move searches for its best placement and neutral relocation
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveBotRequest true "Match"
// @Success 200 {object} map[string]interface{}
// @Router /move-bot [post]
func MoveBotHandler(mgr *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveBotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, err)
			return
		}
		mt, ok := lookup(c, mgr, req.MatchID)
		if !ok {
			return
		}
		mv, err := mgr.BotMove(mt)
		if err != nil {
			writeError(c, err)
			return
		}
		view := mt.View()
		c.JSON(http.StatusOK, gin.H{"move": mv.View(), "match": view, "winner": view.Winner})
	}
}
