// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/divinosdoces/contratos-api/internal/config"
	"github.com/divinosdoces/contratos-api/internal/core"
	db "github.com/divinosdoces/contratos-api/internal/core/database"
	"github.com/divinosdoces/contratos-api/internal/core/extraction"
	objectclient "github.com/divinosdoces/contratos-api/internal/core/object-client"
	"github.com/divinosdoces/contratos-api/internal/core/tagger"
)

type App struct {
	DBClient     core.DbClient
	ObjectClient core.ObjectClient
	Dispatcher   *extraction.Dispatcher
	Server       *Server

	tagger   *tagger.GeminiTagger
	embedder *tagger.GeminiEmbedder
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	appCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	dbClient, err := db.NewDatabaseClient(appCtx, cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Database initialized and ready.")

	a := &App{DBClient: dbClient}

	// Contract archiving is optional; the panel still extracts and renders
	// without S3 credentials.
	if cfg.AwsAccessKey != "" && cfg.AwsSecretKey != "" {
		objClient, err := objectclient.NewS3Client(appCtx, cfg)
		if err != nil {
			return nil, err
		}
		a.ObjectClient = objClient
	} else {
		log.Println("WARN: AWS credentials not set; uploaded contracts will not be archived.")
	}

	// The NLP model is optional at startup: without it the pattern analysis
	// still works and only the statistical mode fails, on use.
	var entityTagger core.EntityTagger
	var embedder core.EmbeddingProvider
	if cfg.AIAPIKey != "" {
		gt, err := tagger.NewGeminiTagger(appCtx, cfg.AIAPIKey, cfg.TaggerModel)
		if err != nil {
			return nil, fmt.Errorf("couldn't initialize the entity tagger: %w", err)
		}
		a.tagger = gt
		entityTagger = gt

		ge, err := tagger.NewGeminiEmbedder(appCtx, cfg.AIAPIKey, cfg.EmbedModel)
		if err != nil {
			return nil, fmt.Errorf("couldn't initialize the embedder: %w", err)
		}
		a.embedder = ge
		embedder = ge
	} else {
		log.Println("WARN: GEMINI_API_KEY not set; statistical analysis and order search are unavailable.")
	}

	a.Dispatcher = extraction.NewDispatcher(extraction.NewDocconvSource(), entityTagger)
	a.Server = NewServer(cfg, dbClient, a.ObjectClient, a.Dispatcher, embedder)

	return a, nil
}

func (a *App) Close() {
	if a.tagger != nil {
		_ = a.tagger.Close()
	}
	if a.embedder != nil {
		_ = a.embedder.Close()
	}
	if a.DBClient != nil {
		_ = a.DBClient.Close()
	}
}
