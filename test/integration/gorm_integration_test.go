package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
	"ai-bankassist-be/internal/repository/unitofwork"
	"ai-bankassist-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.AccountRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Knowledge Document Repository", func(t *testing.T) {
		// Count implies table check
		docs, err := uow.KnowledgeDocumentRepository().FindAll(context.Background())
		assert.NoError(t, err)
		t.Logf("Knowledge document count: %d", len(docs))
	})

	t.Run("Check Transactional Account Creation", func(t *testing.T) {
		suffix := time.Now().UnixNano()
		user := &entity.User{
			Username:  fmt.Sprintf("it_user_%d", suffix),
			Email:     fmt.Sprintf("it_%d@example.com", suffix),
			FullName:  "Integration Test User",
			Status:    entity.UserStatusActive,
			RiskLevel: entity.RiskLevelModerate,
		}

		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		// Transaction Test
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		account := &entity.Account{
			UserId:           user.Id,
			AccountNumber:    fmt.Sprintf("6226%012d", suffix%1000000000000),
			AccountType:      entity.AccountTypeSavings,
			Currency:         "CNY",
			Balance:          1000,
			AvailableBalance: 1000,
			Status:           entity.AccountStatusActive,
			OpenedDate:       time.Now(),
		}

		err = uow.AccountRepository().Create(ctx, account)
		assert.NoError(t, err)

		found, err := uow.AccountRepository().FindOne(ctx, specification.ByAccountNumber{Number: account.AccountNumber})
		assert.NoError(t, err)
		assert.NotNil(t, found)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Account in Transaction")
	})
}
