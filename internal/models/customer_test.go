package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// A deduplicação por telefone depende de o banco rejeitar o segundo insert
// concorrente, então o índice (tenant_id, phone) precisa ser único.
func TestCustomerPhoneIndexIsUnique(t *testing.T) {
	s, err := schema.Parse(&Customer{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	var found bool
	for _, idx := range s.ParseIndexes() {
		if idx.Name != "idx_customers_tenant_phone" {
			continue
		}
		found = true
		require.Equal(t, "UNIQUE", idx.Class)
		require.Len(t, idx.Fields, 2)
	}
	require.True(t, found, "índice idx_customers_tenant_phone ausente")
}
