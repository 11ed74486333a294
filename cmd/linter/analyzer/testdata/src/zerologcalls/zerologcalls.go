package zerologcalls

import (
	"errors"

	"github.com/rs/zerolog/log"
)

func main() {
	log.Fatal().Msg("allowed in main") // No want
}

func Serve() {
	log.Info().Msg("starting") // No want

	log.Fatal().Err(errors.New("boom")).Msg("serve failed") // want "zerolog log.Fatal is forbidden outside main function"
}

func Recover() {
	log.Panic().Msg("unrecoverable") // want "zerolog log.Panic is forbidden outside main function"
}
