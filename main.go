package main

import (
	"github.com/rs/zerolog/log"

	"github.com/lthummus/timefmt/ainit"
	"github.com/lthummus/timefmt/internal/cmd"
)

func main() {
	log.Debug().Bool("loaded", ainit.Loaded()).Str("revision", ainit.Revision()).Msg("starting timefmt")
	cmd.Execute()
}
