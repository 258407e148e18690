package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the global zap logger. "development" gets the human-readable
// console encoder, everything else gets production JSON.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	if environment == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
