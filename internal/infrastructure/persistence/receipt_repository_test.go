package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopbooks/backend/internal/domain/receipt"
	"github.com/shopbooks/backend/internal/domain/shared"
	"github.com/shopbooks/backend/internal/infrastructure/persistence/models"
)

func setupReceiptTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ReceiptModel{}, &models.ReceiptItemModel{})
	require.NoError(t, err)

	return db
}

func mustReceipt(t *testing.T, number, customerName string, kind receipt.Kind, total int64) *receipt.Receipt {
	t.Helper()
	r, err := receipt.NewReceipt(number, customerName, kind, decimal.NewFromInt(total))
	require.NoError(t, err)
	return r
}

func TestGormReceiptRepository_SaveAndFindByID(t *testing.T) {
	db := setupReceiptTestDB(t)
	repo := NewGormReceiptRepository(db)
	ctx := context.Background()

	t.Run("saves receipt with items and loads them back", func(t *testing.T) {
		rcpt := mustReceipt(t, "R-1001", "Ali Hassan", receipt.KindCash, 150)
		require.NoError(t, rcpt.AddItem("Cement bag", 3, decimal.NewFromInt(40)))
		require.NoError(t, rcpt.AddItem("Sand", 1, decimal.NewFromInt(30)))

		require.NoError(t, repo.Save(ctx, rcpt))

		found, err := repo.FindByID(ctx, rcpt.ID)
		require.NoError(t, err)
		assert.Equal(t, "R-1001", found.Number)
		assert.Equal(t, receipt.KindCash, found.Kind)
		assert.True(t, found.TotalPrice.Equal(decimal.NewFromInt(150)))
		require.Len(t, found.Items, 2)
	})

	t.Run("returns ErrNotFound for unknown ID", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormReceiptRepository_SaveReplacesItems(t *testing.T) {
	db := setupReceiptTestDB(t)
	repo := NewGormReceiptRepository(db)
	ctx := context.Background()

	rcpt := mustReceipt(t, "R-2001", "Mona Said", receipt.KindCredit, 300)
	require.NoError(t, rcpt.AddItem("Paint", 2, decimal.NewFromInt(100)))
	require.NoError(t, rcpt.AddItem("Brush", 4, decimal.NewFromInt(25)))
	require.NoError(t, repo.Save(ctx, rcpt))

	removedID := rcpt.Items[1].ID
	keptID := rcpt.Items[0].ID
	require.NoError(t, rcpt.RemoveItem(removedID))
	require.NoError(t, rcpt.UpsertItem(keptID, "Paint premium", 2, decimal.NewFromInt(120)))
	require.NoError(t, rcpt.AddItem("Roller", 1, decimal.NewFromInt(35)))

	require.NoError(t, repo.Save(ctx, rcpt))

	found, err := repo.FindByID(ctx, rcpt.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)

	byID := make(map[uuid.UUID]receipt.Item, len(found.Items))
	for _, item := range found.Items {
		byID[item.ID] = item
	}
	assert.NotContains(t, byID, removedID)
	require.Contains(t, byID, keptID)
	assert.Equal(t, "Paint premium", byID[keptID].Description)
	assert.True(t, byID[keptID].UnitPrice.Equal(decimal.NewFromInt(120)))
}

func TestGormReceiptRepository_FindByNumber(t *testing.T) {
	db := setupReceiptTestDB(t)
	repo := NewGormReceiptRepository(db)
	ctx := context.Background()

	rcpt := mustReceipt(t, "R-3001", "Omar Farouk", receipt.KindCash, 80)
	require.NoError(t, repo.Save(ctx, rcpt))

	found, err := repo.FindByNumber(ctx, "R-3001")
	require.NoError(t, err)
	assert.Equal(t, rcpt.ID, found.ID)

	_, err = repo.FindByNumber(ctx, "R-9999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormReceiptRepository_List(t *testing.T) {
	db := setupReceiptTestDB(t)
	repo := NewGormReceiptRepository(db)
	ctx := context.Background()

	cash := mustReceipt(t, "R-4001", "Ali Hassan", receipt.KindCash, 50)
	cash.WithDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	credit := mustReceipt(t, "R-4002", "Mona Said", receipt.KindCredit, 90)
	credit.WithDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, cash))
	require.NoError(t, repo.Save(ctx, credit))

	t.Run("returns all receipts", func(t *testing.T) {
		page, err := repo.List(ctx, receipt.ReceiptFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		assert.Len(t, page.Items, 2)
	})

	t.Run("filters by kind", func(t *testing.T) {
		kind := receipt.KindCredit
		page, err := repo.List(ctx, receipt.ReceiptFilter{Kind: &kind})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "R-4002", page.Items[0].Number)
	})

	t.Run("filters by customer name", func(t *testing.T) {
		name := "Ali"
		page, err := repo.List(ctx, receipt.ReceiptFilter{CustomerName: &name})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "R-4001", page.Items[0].Number)
	})

	t.Run("filters by date range", func(t *testing.T) {
		from := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		page, err := repo.List(ctx, receipt.ReceiptFilter{DateFrom: &from})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "R-4002", page.Items[0].Number)
	})

	t.Run("date range keeps the upper bound exclusive", func(t *testing.T) {
		to := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		page, err := repo.List(ctx, receipt.ReceiptFilter{DateTo: &to})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "R-4001", page.Items[0].Number)
	})
}

func TestGormReceiptRepository_Delete(t *testing.T) {
	db := setupReceiptTestDB(t)
	repo := NewGormReceiptRepository(db)
	ctx := context.Background()

	t.Run("deletes receipt together with items", func(t *testing.T) {
		rcpt := mustReceipt(t, "R-5001", "Ali Hassan", receipt.KindCash, 60)
		require.NoError(t, rcpt.AddItem("Nails", 2, decimal.NewFromInt(30)))
		require.NoError(t, repo.Save(ctx, rcpt))

		require.NoError(t, repo.Delete(ctx, rcpt.ID))

		_, err := repo.FindByID(ctx, rcpt.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		var itemCount int64
		require.NoError(t, db.Model(&models.ReceiptItemModel{}).
			Where("receipt_id = ?", rcpt.ID).
			Count(&itemCount).Error)
		assert.Equal(t, int64(0), itemCount)
	})

	t.Run("returns ErrNotFound for unknown ID", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormReceiptRepository_ExistsByNumber(t *testing.T) {
	db := setupReceiptTestDB(t)
	repo := NewGormReceiptRepository(db)
	ctx := context.Background()

	rcpt := mustReceipt(t, "R-6001", "Omar Farouk", receipt.KindCash, 10)
	require.NoError(t, repo.Save(ctx, rcpt))

	exists, err := repo.ExistsByNumber(ctx, "R-6001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByNumber(ctx, "R-0000")
	require.NoError(t, err)
	assert.False(t, exists)
}
