// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/customer"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/product"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/documents/sale"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/registers/inventory"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres/document_repo"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres/register_repo"
	"github.com/muhammadrohan3/storeManagementSystem/pkg/logger"
)

type seedProduct struct {
	code    string
	name    string
	rate    int64
	opening int64
}

type seedCustomer struct {
	name    string
	phone   string
	address string
}

type seedSale struct {
	phone    string
	code     string
	quantity int64
	rate     int64
	paid     int64
}

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)

	inventoryService := inventory.NewService(register_repo.NewInventoryRepo(txManager))
	productService := product.NewService(catalog_repo.NewProductRepo(txManager), inventoryService, txManager)
	customerService := customer.NewService(catalog_repo.NewCustomerRepo(txManager), txManager)
	saleService := sale.NewService(
		document_repo.NewSaleRepo(txManager),
		productService,
		customerService,
		inventoryService,
		postgres.NewOutboxPublisher(txManager),
		txManager,
	)

	if err := seedProducts(ctx, productService, log); err != nil {
		log.Fatalw("failed to seed products", "error", err)
	}
	if err := seedCustomers(ctx, customerService, log); err != nil {
		log.Fatalw("failed to seed customers", "error", err)
	}

	if os.Getenv("SEED_DEMO_SALES") == "true" {
		if err := seedSales(ctx, saleService, log); err != nil {
			log.Fatalw("failed to seed sales", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedProducts(ctx context.Context, service *product.Service, log *logger.Logger) error {
	items := []seedProduct{
		{code: "P-001", name: "Basmati Rice 5kg", rate: 1450, opening: 120},
		{code: "P-002", name: "Sunflower Oil 1L", rate: 580, opening: 200},
		{code: "P-003", name: "Sugar 1kg", rate: 145, opening: 350},
		{code: "P-004", name: "Black Tea 500g", rate: 620, opening: 80},
		{code: "P-005", name: "Wheat Flour 10kg", rate: 1150, opening: 60},
	}

	for _, item := range items {
		p := product.New(item.code, item.name, types.Amount(item.rate))
		err := service.Create(ctx, p, types.Quantity(item.opening))
		if err != nil {
			if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeDuplicate {
				log.Infow("product already exists", "code", item.code)
				continue
			}
			return err
		}
		log.Infow("product created", "code", item.code, "id", p.ID)
	}
	return nil
}

func seedCustomers(ctx context.Context, service *customer.Service, log *logger.Logger) error {
	items := []seedCustomer{
		{name: "Ahmed Khan", phone: "03001234567", address: "12 Mall Road, Lahore"},
		{name: "Sara Malik", phone: "03219876543", address: "4 Canal View, Karachi"},
		{name: "Bilal Sheikh", phone: "03335550001", address: "78 GT Road, Rawalpindi"},
	}

	for _, item := range items {
		c := customer.New(item.name, item.phone)
		c.Address = item.address
		err := service.Create(ctx, c)
		if err != nil {
			if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeDuplicate {
				log.Infow("customer already exists", "phone", item.phone)
				continue
			}
			return err
		}
		log.Infow("customer created", "phone", item.phone, "id", c.ID)
	}
	return nil
}

func seedSales(ctx context.Context, service *sale.Service, log *logger.Logger) error {
	items := []seedSale{
		{phone: "03001234567", code: "P-001", quantity: 2, rate: 1450, paid: 2900},
		{phone: "03001234567", code: "P-003", quantity: 5, rate: 145, paid: 500},
		{phone: "03335550001", code: "P-002", quantity: 3, rate: 580, paid: 1000},
	}

	for _, item := range items {
		doc, err := service.Create(ctx, sale.CreateInput{
			CustomerPhone: item.phone,
			ProductCode:   item.code,
			Quantity:      types.Quantity(item.quantity),
			Rate:          types.Amount(item.rate),
			Paid:          types.Amount(item.paid),
		})
		if err != nil {
			return err
		}
		log.Infow("sale created", "id", doc.ID, "amount", doc.Amount)
	}
	return nil
}
