package cmd

import (
	"fmt"

	"github.com/jsphweid/chordex/chorddb"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/engine"
	"github.com/jsphweid/chordex/progression"
)

// eng is the process-wide engine. All resolvers reject calls until
// LoadEngine (or UseEngine in tests) has run.
var eng *engine.Engine

var (
	s3Region string
	s3Bucket string
	s3Key    string
)

// LoadEngine performs the one-time startup load: chord database (local
// file or S3 object), progression catalog, then the derived index.
// Nothing serves until it returns.
func LoadEngine() error {
	var (
		db  *chorddb.DB
		err error
	)
	if s3Bucket != "" {
		logger.Info("loading chord database from S3", "bucket", s3Bucket, "key", s3Key)
		db, err = chorddb.LoadS3(s3Region, s3Bucket, s3Key)
	} else {
		db, err = chorddb.Load(constants.GetChordDBPath())
	}
	if err != nil {
		return fmt.Errorf("loading chord database: %w", err)
	}

	catalog, err := progression.LoadCatalog(constants.GetProgressionsPath())
	if err != nil {
		return fmt.Errorf("loading progression catalog: %w", err)
	}

	eng = engine.New(db, catalog)
	logger.Info("engine ready", "voicings", db.NumVoicings())
	return nil
}

// UseEngine injects a prebuilt engine; the e2e tests drive the HTTP
// handlers through this.
func UseEngine(e *engine.Engine) {
	eng = e
}
