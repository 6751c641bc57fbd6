package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"lgame/internal/config"
	"lgame/internal/game"
	"lgame/internal/match"
	"lgame/internal/store"
)

// Self-play: two computer players on one board until someone is stuck or the
// ply limit runs out. Prints the finished match as JSON.
func main() {
	app := &cli.App{
		Name:  "lgame",
		Usage: "play the L-game computer against computer",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "depth", Aliases: []string{"d"}, Usage: "search depth (0 uses SEARCH_DEPTH)"},
			&cli.IntFlag{Name: "plies", Value: 40, Usage: "stop after this many plies"},
			&cli.IntFlag{Name: "first", Value: 1, Usage: "player to move first (1 or 2)"},
		},
		Action: selfPlay,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
}

func selfPlay(c *cli.Context) error {
	cfg := config.Get()
	config.SetupLogging(*cfg)

	mgr := match.NewManager(store.NewMemoryStore(), *cfg, nil)
	mt, err := play(mgr, game.Player(c.Int("first")), c.Int("depth"), c.Int("plies"))
	if err != nil {
		return err
	}

	js, err := json.MarshalIndent(mt.View(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(js))
	return nil
}

// play runs a computer-against-computer match for at most plies moves.
func play(mgr *match.Manager, first game.Player, depth, plies int) (*match.Match, error) {
	mt, err := mgr.CreateMatch(match.Options{
		Player1: match.Computer,
		Player2: match.Computer,
		First:   first,
		Depth:   depth,
	})
	if err != nil {
		return nil, err
	}

	for i := 0; i < plies; i++ {
		mv, err := mgr.BotMove(mt)
		if err != nil {
			return nil, err
		}
		log.Info().Int("ply", i+1).Stringer("player", mv.Player).Interface("piece", mv.Piece).Msg("move")
		if mt.View().Winner != 0 {
			break
		}
	}
	return mt, nil
}
