package main

import (
	"flag"
	"pokerdeck/internal/config"
	"pokerdeck/internal/rng"
	"pokerdeck/internal/util"
	"pokerdeck/pkg/deck"
	"pokerdeck/pkg/playable/suitdraw"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

var (
	seed  = flag.Int64("seed", 0, "shuffle seed, overrides the configuration (0 for a random shuffle)")
	count = flag.Int("count", 0, "draw this many cards instead of drawing until every suit is seen")
)

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := util.SetupLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	if *seed > 0 {
		cfg.Seed = *seed
	}

	var gen rng.Generator = rng.Crypto{}
	if cfg.Seed > 0 {
		gen = rng.NewSeeded(cfg.Seed)
	}

	d := deck.NewShuffled(gen)
	if *count > 0 {
		res, err := suitdraw.DrawSorted(d, *count)
		if err != nil {
			logrus.WithError(err).Fatal("could not draw cards")
		}

		pterm.Info.Printfln("Drew %d cards", len(res.Cards))
		pterm.Println(res.Cards.Display())
		return
	}

	res, err := suitdraw.Run(d)
	if err != nil {
		logrus.WithError(err).Fatal("could not draw every suit")
	}

	pterm.Info.Printfln("Drew %d cards to see every suit", len(res.Cards))
	pterm.Println(res.Cards.Display())
}
