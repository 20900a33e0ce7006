package main

import (
	"flag"
	"pokerdeck/internal/config"
	"pokerdeck/internal/rng"
	"pokerdeck/internal/util"
	"pokerdeck/pkg/deck"
	"pokerdeck/pkg/playable/scoregame"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

var (
	players = flag.Int("players", 0, "number of players, overrides the configuration")
	cards   = flag.Int("cards", 0, "cards dealt to each player, overrides the configuration")
	names   = flag.String("names", "", "comma-separated player names, overrides -players")
	seed    = flag.Int64("seed", 0, "shuffle seed, overrides the configuration (0 for a random shuffle)")
)

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := util.SetupLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	opts := cfg.Game
	if *players > 0 {
		opts.Players = *players
	}

	if *cards > 0 {
		opts.CardsPerPlayer = *cards
	}

	if *seed > 0 {
		cfg.Seed = *seed
	}

	var gen rng.Generator = rng.Crypto{}
	if cfg.Seed > 0 {
		gen = rng.NewSeeded(cfg.Seed)
	}

	seats := scoregame.RandomSeats(opts.Players)
	if *names != "" {
		seats = scoregame.NamedSeats(strings.Split(*names, ","))
	}

	game, err := scoregame.NewGame(deck.NewShuffled(gen), seats, opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	if err := game.Deal(); err != nil {
		logrus.WithError(err).Fatal("could not deal")
	}

	res, err := game.Result()
	if err != nil {
		logrus.WithError(err).Fatal("could not score the game")
	}

	data := pterm.TableData{{"Player", "Name", "Cards", "Score"}}
	for _, score := range res.Scores {
		data = append(data, []string{
			strconv.FormatInt(score.Participant.GetPlayerID(), 10),
			score.Participant.GetName(),
			score.Hand.Display(),
			strconv.Itoa(score.Score),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		logrus.WithError(err).Fatal("could not render results")
	}

	winners := make([]string, len(res.Winners))
	for i, w := range res.Winners {
		winners[i] = w.GetName()
	}

	pterm.Success.Printfln("Winner: %s (%d)", strings.Join(winners, ", "), res.HighScore)
}
