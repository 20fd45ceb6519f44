package cli

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/database"
	"github.com/themizzi/shopcheck/internal/handlers"
	"github.com/themizzi/shopcheck/internal/repository"
	"github.com/themizzi/shopcheck/internal/services"
)

// Store is the demo shop's persistence backend
type Store struct {
	Customers services.CustomerRepository
	Orders    services.OrderRepository
	db        *sql.DB
}

// OpenStore opens the backend selected by cfg. The postgres schema is migrated before use.
func OpenStore(cfg config.ServerConfig, getenv func(string) string) (*Store, error) {
	if cfg.Backend != config.BackendPostgres {
		return &Store{
			Customers: repository.NewMemoryCustomerRepository(),
			Orders:    repository.NewMemoryOrderRepository(),
		}, nil
	}

	pgConfig, err := config.LoadPostgresConfig(getenv)
	if err != nil {
		return nil, fmt.Errorf("missing required postgres configuration: %w", err)
	}
	db, err := database.Connect(pgConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Connected to database successfully")

	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return &Store{
		Customers: repository.NewCustomerRepository(db),
		Orders:    repository.NewOrderRepository(db),
		db:        db,
	}, nil
}

// Close releases the database pool, if any
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DemoAccount is the customer created at startup for scenarios that log in with configured credentials
type DemoAccount struct {
	Email    string
	Password string
}

// BuildServerDependencies wires the storefront over store and seeds demo when it is set
func BuildServerDependencies(cfg config.ServerConfig, store *Store, accounts services.AccountService, demo DemoAccount) (ServerDependencies, error) {
	if demo.Email != "" && demo.Password != "" {
		if err := accounts.SeedCustomer(demo.Email, demo.Password); err != nil {
			return ServerDependencies{}, err
		}
		log.Printf("Demo account ready: %s", demo.Email)
	}

	shop, err := handlers.NewShop(
		accounts,
		services.NewOrderService(store.Orders),
		services.NewCatalog(services.DefaultProducts),
		services.NewCartStore(),
	)
	if err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create storefront: %w", err)
	}

	return ServerDependencies{
		ServerConfig: cfg,
		Storefront:   handlers.NewRouter(shop),
	}, nil
}
