package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_ProductPriceRejectsNaN(t *testing.T) {
	t.Parallel()

	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, names, "migrations/00002_products_price_finite.sql")

	body, err := fs.ReadFile(migrations, "migrations/00002_products_price_finite.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "CHECK (price >= 0 AND price <> 'NaN')")
}
