package usecase

import (
	"inventory_dashboard/internal/domain"
	"inventory_dashboard/internal/repository"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

func newTestStore(t *testing.T, products []domain.Product) domain.ProductRepository {
	t.Helper()
	repo, err := repository.NewMemoryProductRepository(products, newTestLogger())
	require.NoError(t, err)
	return repo
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
