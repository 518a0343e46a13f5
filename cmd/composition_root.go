package cmd

import (
	"fmt"
	"log/slog"

	httpin "github.com/townkitchenn/fnp-delivery-backend/internal/adapters/in/http"
	"github.com/townkitchenn/fnp-delivery-backend/internal/adapters/out/disk"
	"github.com/townkitchenn/fnp-delivery-backend/internal/adapters/out/postgres"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/commands"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/queries"
	"github.com/townkitchenn/fnp-delivery-backend/internal/jobs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/token"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	fileStore  *disk.FileStore
	tokens     *token.Issuer
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	fileStore, err := disk.NewFileStore(configs.UploadDir)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create file store: %w", err)
	}

	tokens, err := token.NewIssuer(configs.JWTSecret, token.DefaultTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create token issuer: %w", err)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		fileStore:  fileStore,
		tokens:     tokens,
	}, nil
}

func (c *CompositionRoot) itemUoWFactory() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.itemUoWFactory(), c.fileStore)
}

func (c *CompositionRoot) CreateEditItemCommandHandler() commands.EditItemCommandHandler {
	return commands.NewEditItemCommandHandler(c.itemUoWFactory(), c.fileStore)
}

func (c *CompositionRoot) CreateDeleteItemCommandHandler() commands.DeleteItemCommandHandler {
	return commands.NewDeleteItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateChangeItemStatusCommandHandler() commands.ChangeItemStatusCommandHandler {
	return commands.NewChangeItemStatusCommandHandler(c.itemUoWFactory(), c.fileStore)
}

func (c *CompositionRoot) CreateUnassignItemCommandHandler() commands.UnassignItemCommandHandler {
	return commands.NewUnassignItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateAssignItemCommandHandler() commands.AssignItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllItemsQueryHandler() queries.GetAllItemsQueryHandler {
	return queries.NewGetAllItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingItemsQueryHandler() queries.GetPendingItemsQueryHandler {
	return queries.NewGetPendingItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemQueryHandler() queries.GetItemQueryHandler {
	return queries.NewGetItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentItemsQueryHandler() queries.GetAgentItemsQueryHandler {
	return queries.NewGetAgentItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllAgentsQueryHandler() queries.GetAllAgentsQueryHandler {
	return queries.NewGetAllAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountItemsByStatusQueryHandler() queries.CountItemsByStatusQueryHandler {
	return queries.NewCountItemsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.fileStore, logger)
}

func (c *CompositionRoot) CreateHTTPServer(logger *slog.Logger) *httpin.Server {
	return httpin.NewServer(httpin.ServerDeps{
		CreateItemHandler:      c.CreateCreateItemCommandHandler(),
		EditItemHandler:        c.CreateEditItemCommandHandler(),
		DeleteItemHandler:      c.CreateDeleteItemCommandHandler(),
		AssignItemHandler:      c.CreateAssignItemCommandHandler(),
		ChangeStatusHandler:    c.CreateChangeItemStatusCommandHandler(),
		UnassignItemHandler:    c.CreateUnassignItemCommandHandler(),
		RegisterAccountHandler: c.CreateRegisterAccountCommandHandler(),

		AuthenticateHandler:  c.CreateAuthenticateQueryHandler(),
		GetAllItemsHandler:   c.CreateGetAllItemsQueryHandler(),
		GetPendingHandler:    c.CreateGetPendingItemsQueryHandler(),
		GetItemHandler:       c.CreateGetItemQueryHandler(),
		GetAgentItemsHandler: c.CreateGetAgentItemsQueryHandler(),
		GetAllAgentsHandler:  c.CreateGetAllAgentsQueryHandler(),
		CountByStatusHandler: c.CreateCountItemsByStatusQueryHandler(),

		Tokens:        c.tokens,
		PublicBaseURL: c.configs.PublicBaseURL,
		DevMode:       c.configs.DevMode,
		Logger:        logger,
	})
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
