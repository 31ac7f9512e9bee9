package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/rub-converter/internal/model/storage/mock"
)

func fileConfig(t *testing.T, path string) *mock.ConfigMock {
	t.Helper()
	m := minimock.NewController(t)
	t.Cleanup(m.Finish)

	return mock.NewConfigMock(m).
		DriverMock.Return("sqlite3").
		PathMock.Return(path)
}

func openTemp(t *testing.T) (*Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bicycle_shop.db")
	s, err := NewStorage(fileConfig(t, path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func Test_OnEnsureSchema_ShouldCreateExactlyFourTables(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)

	require.NoError(t, s.EnsureSchema(ctx))

	tables, err := s.Tables(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Products", "Customers", "Orders", "Order_Items"}, tables)
	assert.ElementsMatch(t, ShopTables(), tables)
}

func Test_OnEnsureSchemaTwice_ShouldLeaveSchemaUnchanged(t *testing.T) {
	ctx := context.Background()
	s, path := openTemp(t)

	require.NoError(t, s.EnsureSchema(ctx))
	before := snapshot(t, s)

	require.NoError(t, s.Close())
	reopened, err := NewStorage(fileConfig(t, path))
	require.NoError(t, err)
	defer reopened.Close()

	require.NoError(t, reopened.EnsureSchema(ctx))
	assert.Equal(t, before, snapshot(t, reopened))
}

func Test_OnEnsureSchema_ShouldDeclareColumns(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	require.NoError(t, s.EnsureSchema(ctx))

	want := map[string][]Column{
		"Products": {
			{Name: "product_id", Type: "INTEGER", PrimaryKey: true},
			{Name: "name", Type: "TEXT"},
			{Name: "description", Type: "TEXT"},
			{Name: "price", Type: "REAL"},
			{Name: "stock", Type: "INTEGER"},
		},
		"Customers": {
			{Name: "customer_id", Type: "INTEGER", PrimaryKey: true},
			{Name: "first_name", Type: "TEXT"},
			{Name: "last_name", Type: "TEXT"},
			{Name: "email", Type: "TEXT"},
			{Name: "phone", Type: "TEXT"},
		},
		"Orders": {
			{Name: "order_id", Type: "INTEGER", PrimaryKey: true},
			{Name: "customer_id", Type: "INTEGER"},
			{Name: "order_date", Type: "TEXT"},
			{Name: "total", Type: "REAL"},
		},
		"Order_Items": {
			{Name: "order_item_id", Type: "INTEGER", PrimaryKey: true},
			{Name: "order_id", Type: "INTEGER"},
			{Name: "product_id", Type: "INTEGER"},
			{Name: "quantity", Type: "INTEGER"},
			{Name: "price", Type: "REAL"},
		},
	}

	for table, cols := range want {
		got, err := s.Columns(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, cols, got, table)
	}
}

func Test_OnEnsureSchema_ShouldDeclareForeignKeys(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	require.NoError(t, s.EnsureSchema(ctx))

	orders, err := s.ForeignKeys(ctx, "Orders")
	require.NoError(t, err)
	assert.Equal(t, []ForeignKey{{Column: "customer_id", RefTable: "Customers", RefColumn: "customer_id"}}, orders)

	items, err := s.ForeignKeys(ctx, "Order_Items")
	require.NoError(t, err)
	assert.ElementsMatch(t, []ForeignKey{
		{Column: "order_id", RefTable: "Orders", RefColumn: "order_id"},
		{Column: "product_id", RefTable: "Products", RefColumn: "product_id"},
	}, items)

	products, err := s.ForeignKeys(ctx, "Products")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func Test_OnEnsureSchema_ShouldNotInsertRows(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	require.NoError(t, s.EnsureSchema(ctx))

	for _, table := range ShopTables() {
		var n int
		err := sqlite.Select("count(*)").From(table).RunWith(s.db).QueryRowContext(ctx).Scan(&n)
		require.NoError(t, err)
		assert.Zero(t, n, table)
	}
}

func Test_OnCancelledContext_ShouldFailWithoutTables(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, _ := openTemp(t)

	assert.Error(t, s.EnsureSchema(ctx))

	tables, err := s.Tables(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func Test_OnUnknownDriver_ShouldFail(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	config := mock.NewConfigMock(m)

	config.DriverMock.Return("nosuchdriver")
	config.PathMock.Return(filepath.Join(t.TempDir(), "bicycle_shop.db"))

	_, err := NewStorage(config)
	assert.Error(t, err)
}

type schemaSnapshot map[string][]Column

func snapshot(t *testing.T, s *Storage) schemaSnapshot {
	t.Helper()
	ctx := context.Background()

	tables, err := s.Tables(ctx)
	require.NoError(t, err)

	res := make(schemaSnapshot, len(tables))
	for _, table := range tables {
		cols, err := s.Columns(ctx, table)
		require.NoError(t, err)
		res[table] = cols
	}
	return res
}
