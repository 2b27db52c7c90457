package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/MarcSteiner/BaseForge/app/controllers"
	"github.com/MarcSteiner/BaseForge/app/repository"
	"github.com/MarcSteiner/BaseForge/internal/pkg/clock"
	"github.com/MarcSteiner/BaseForge/internal/pkg/database"
	"github.com/MarcSteiner/BaseForge/internal/pkg/env"
	"github.com/MarcSteiner/BaseForge/internal/pkg/upgrade"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	db := database.GetDB()
	repository.InitializeFactory(db)
	factory := repository.GetGlobalFactory()

	clk := clock.RealClock{}
	engine := upgrade.NewEngine(
		factory.GetRepositories(),
		factory.GetTransactor(),
		clk,
		upgrade.Options{
			DurationOffset:        time.Duration(env.GetEnvInt("UPGRADE_DURATION_OFFSET_SECONDS", 0)) * time.Second,
			CreateMissingAccounts: env.GetEnvBool("CREATE_MISSING_ACCOUNTS", true),
		},
	)

	controllers.InitializeUpgradeController(engine)
	controllers.InitializeEconomyController(factory.GetAccountRepository(), clk)
	controllers.InitializeBaseController(factory.GetStructureRepository())

	api := app.Group("/api", limiter.New())

	api.Get("/healthcheck", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	userEconomy := api.Group("/user-economy")
	userEconomy.Post("/start-upgrade", controllers.HandleStartUpgrade)
	userEconomy.Post("/complete", controllers.HandleCompleteUpgrade)
	userEconomy.Post("/update", controllers.HandleUpdateEconomy)
	userEconomy.Get("/:userId", controllers.HandleGetEconomy)

	upgrades := api.Group("/upgrades")
	upgrades.Get("/", controllers.HandleInProgressUpgrades)
	upgrades.Get("/available", controllers.HandleAvailableUpgrades)
	upgrades.Get("/stats", controllers.HandleUpgradeStats)

	api.Get("/economy/status", controllers.HandleEconomyStatus)
	api.Get("/user-base-data", controllers.HandleListBaseData)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
