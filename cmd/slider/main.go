package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/pdrpinto/slider"
)

func main() {
	size := flag.Int("size", 3, "board side length")
	boardSpec := flag.String("board", "", "comma-separated tiles in row-major order, 0 for the blank")
	scramble := flag.Int("scramble", 0, "solve a random board scrambled this many slides instead of -board")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var board slider.Board
	switch {
	case *scramble > 0:
		board = slider.Scramble(*size, *scramble)
	case *boardSpec != "":
		tiles, err := parseTiles(*boardSpec)
		if err != nil {
			log.Fatal().Err(err).Msg("bad -board")
		}
		board = slider.NewBoard(*size, tiles)
	default:
		flag.Usage()
		os.Exit(2)
	}

	fmt.Println(board)
	result, err := slider.Search(context.Background(), board)
	if err != nil {
		log.Fatal().Err(err).Int("expanded", result.Expanded).Msg("search failed")
	}
	log.Info().
		Int("expanded", result.Expanded).
		Int("moves", len(result.Moves)).
		Msg("solved")
	fmt.Println(strings.Join(lo.Map(result.Moves, func(tile int, _ int) string {
		return strconv.Itoa(tile)
	}), " "))
}

func parseTiles(spec string) ([]int, error) {
	fields := strings.Split(spec, ",")
	tiles := make([]int, 0, len(fields))
	for _, field := range fields {
		tile, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", field, err)
		}
		tiles = append(tiles, tile)
	}
	return tiles, nil
}
