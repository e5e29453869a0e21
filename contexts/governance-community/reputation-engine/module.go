package reputationengine

import (
	"log/slog"

	httpadapter "quorum/contexts/governance-community/reputation-engine/adapters/http"
	"quorum/contexts/governance-community/reputation-engine/adapters/memory"
	"quorum/contexts/governance-community/reputation-engine/application/commands"
	"quorum/contexts/governance-community/reputation-engine/application/queries"
	"quorum/contexts/governance-community/reputation-engine/domain/entities"
	"quorum/contexts/governance-community/reputation-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo        ports.Repository
	Config      ports.ConfigProvider
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	engine := commands.UseCase{
		Repo:   deps.Repo,
		Config: deps.Config,
		Outbox: deps.Outbox,
		Clock:  deps.Clock,
		IDGen:  deps.IDGenerator,
		Logger: deps.Logger,
	}
	reads := queries.ReputationQueries{
		Repo:   deps.Repo,
		Config: deps.Config,
		Clock:  deps.Clock,
	}
	return Module{
		Handler: httpadapter.Handler{
			Engine:  engine,
			Queries: reads,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(config entities.ConfigSnapshot, logger *slog.Logger) Module {
	store := memory.NewStore(config)
	module := NewModule(Dependencies{
		Repo:        store,
		Config:      store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
