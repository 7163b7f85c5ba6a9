package app

import (
	"context"
	"fmt"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	auditHTTP "github.com/allisson/cardcheck/internal/audit/http"
	auditRepository "github.com/allisson/cardcheck/internal/audit/repository"
	auditService "github.com/allisson/cardcheck/internal/audit/service"
	auditUseCase "github.com/allisson/cardcheck/internal/audit/usecase"
	"github.com/allisson/cardcheck/internal/config"
)

// Hasher returns the card number hasher for the configured algorithm.
func (c *Container) Hasher() (auditService.Hasher, error) {
	var err error
	c.hasherInit.Do(func() {
		c.hasher, err = c.initHasher()
		if err != nil {
			c.setInitError("hasher", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("hasher"); storedErr != nil {
		return nil, storedErr
	}
	return c.hasher, nil
}

// AuditRepository returns the audit record repository based on the audit driver.
func (c *Container) AuditRepository() (auditUseCase.RecordRepository, error) {
	var err error
	c.auditRepositoryInit.Do(func() {
		c.auditRepository, err = c.initAuditRepository()
		if err != nil {
			c.setInitError("auditRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("auditRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.auditRepository, nil
}

// AuditUseCase returns the audit use case.
func (c *Container) AuditUseCase() (auditUseCase.AuditUseCase, error) {
	var err error
	c.auditUseCaseInit.Do(func() {
		c.auditUseCase, err = c.initAuditUseCase()
		if err != nil {
			c.setInitError("auditUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("auditUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.auditUseCase, nil
}

// AuditRecordHandler returns the HTTP handler for listing audit records.
func (c *Container) AuditRecordHandler() (*auditHTTP.AuditRecordHandler, error) {
	var err error
	c.auditRecordHandlerInit.Do(func() {
		c.auditRecordHandler, err = c.initAuditRecordHandler()
		if err != nil {
			c.setInitError("auditRecordHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("auditRecordHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.auditRecordHandler, nil
}

func (c *Container) initHasher() (auditService.Hasher, error) {
	algorithm, err := auditDomain.ParseAlgorithm(c.config.AuditHashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid audit hash algorithm: %w", err)
	}
	return auditService.NewHasher(algorithm)
}

// initAuditRepository creates the audit record repository based on the audit driver.
func (c *Container) initAuditRepository() (auditUseCase.RecordRepository, error) {
	if err := checkAuditDriver(c.config.AuditDriver); err != nil {
		return nil, err
	}
	if c.config.AuditDriver == config.AuditDriverCSV {
		return auditRepository.NewCSVRecordRepository(c.config.AuditLogPath), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for audit repository: %w", err)
	}

	if c.config.AuditDriver == config.AuditDriverMySQL {
		return auditRepository.NewMySQLRecordRepository(db), nil
	}
	return auditRepository.NewPostgreSQLRecordRepository(db), nil
}

// initAuditUseCase creates the audit use case with all its dependencies.
func (c *Container) initAuditUseCase() (auditUseCase.AuditUseCase, error) {
	hasher, err := c.Hasher()
	if err != nil {
		return nil, fmt.Errorf("failed to get hasher for audit use case: %w", err)
	}

	recordRepository, err := c.AuditRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit repository for audit use case: %w", err)
	}

	baseUseCase := auditUseCase.NewAuditUseCase(hasher, recordRepository)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for audit use case: %w", err)
		}
		return auditUseCase.NewAuditUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initAuditRecordHandler() (*auditHTTP.AuditRecordHandler, error) {
	useCase, err := c.deferredAuditUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit use case for audit record handler: %w", err)
	}
	return auditHTTP.NewAuditRecordHandler(useCase, c.Logger()), nil
}

// deferredAuditUseCase checks the hasher and the audit driver now and builds the
// audit use case, and with it any database connection, on first use.
func (c *Container) deferredAuditUseCase() (auditUseCase.AuditUseCase, error) {
	if _, err := c.Hasher(); err != nil {
		return nil, err
	}
	if err := checkAuditDriver(c.config.AuditDriver); err != nil {
		return nil, err
	}
	return &lazyAuditUseCase{resolve: c.AuditUseCase}, nil
}

func checkAuditDriver(driver string) error {
	switch driver {
	case config.AuditDriverCSV, config.AuditDriverPostgres, config.AuditDriverMySQL:
		return nil
	default:
		return fmt.Errorf("unsupported audit driver: %s", driver)
	}
}

// lazyAuditUseCase resolves the audit use case on every call. A failure to
// build it is reported by Record as ErrAuditWriteFailed.
type lazyAuditUseCase struct {
	resolve func() (auditUseCase.AuditUseCase, error)
}

func (l *lazyAuditUseCase) Record(
	ctx context.Context,
	cardNumber string,
	valid bool,
	cardType string,
) (*auditDomain.Record, error) {
	useCase, err := l.resolve()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", auditDomain.ErrAuditWriteFailed, err)
	}
	return useCase.Record(ctx, cardNumber, valid, cardType)
}

func (l *lazyAuditUseCase) List(ctx context.Context, offset, limit int) ([]*auditDomain.Record, error) {
	useCase, err := l.resolve()
	if err != nil {
		return nil, err
	}
	return useCase.List(ctx, offset, limit)
}
