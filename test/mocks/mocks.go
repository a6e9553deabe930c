// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/product_catalog.go -destination=product_catalog_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/sale_repository.go -destination=sale_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/exchange_rates.go -destination=exchange_rates_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/checkout_service.go -destination=checkout_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/tasks.go -destination=task_enqueuer_mock.go -package=mocks
