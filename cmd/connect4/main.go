package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("connect4 failed")
		os.Exit(cli.GetExitCode(err))
	}
}
