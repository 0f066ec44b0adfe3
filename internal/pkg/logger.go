package pkg

import (
	"go.uber.org/zap"
)

var Log *zap.Logger

// InitLogger sets the process-wide logger. debug switches to the
// development encoder.
func InitLogger(debug bool) error {
	var err error
	if debug {
		Log, err = zap.NewDevelopment()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(Log)
	return nil
}
