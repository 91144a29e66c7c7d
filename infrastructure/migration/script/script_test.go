package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// As colunas declaradas aqui são as que os repositórios em
// infrastructure/repository leem e escrevem; se o esquema divergir,
// cadastro e login quebram em tempo de execução.
func TestSchemaStatements(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		columns []string
	}{
		{
			name:    "Tabela products cobre as colunas do ProductRepository",
			table:   "CREATE TABLE IF NOT EXISTS products",
			columns: []string{"id", "name", "stock", "base_price", "created_at", "updated_at"},
		},
		{
			name:    "Tabela barbers cobre as colunas do BarberRepository",
			table:   "CREATE TABLE IF NOT EXISTS barbers",
			columns: []string{"id", "name", "services", "rating", "balance", "created_at", "updated_at"},
		},
		{
			name:    "Tabela service_records cobre as colunas do ServiceRecordRepository",
			table:   "CREATE TABLE IF NOT EXISTS service_records",
			columns: []string{"id", "barber_id", "name", "price", "timestamp", "created_at"},
		},
		{
			name:    "Tabela users cobre as colunas do UserRepository",
			table:   "CREATE TABLE IF NOT EXISTS users",
			columns: []string{"id", "name", "lastname", "email", "password_hash", "role_id", "barber_id", "active", "deleted", "created_at", "updated_at"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ddl := findStatement(t, test.table)

			for _, column := range test.columns {
				assert.Contains(t, ddl, column, "coluna %s ausente no DDL", column)
			}
		})
	}
}

func TestSchemaStatementsUsersSemColunaAntiga(t *testing.T) {
	ddl := findStatement(t, "CREATE TABLE IF NOT EXISTS users")

	// O UserRepository persiste password_hash; uma coluna password NOT NULL
	// sem default faria todo INSERT de usuário falhar
	assert.NotContains(t, ddl, "password VARCHAR")
	assert.Contains(t, ddl, "password_hash VARCHAR(255) NOT NULL")
	assert.Contains(t, ddl, "lastname VARCHAR(255)")
}

func findStatement(t *testing.T, prefix string) string {
	t.Helper()

	for _, stmt := range schemaStatements {
		if strings.HasPrefix(stmt, prefix) {
			return stmt
		}
	}

	require.Failf(t, "statement não encontrado", "nenhum statement começa com %q", prefix)
	return ""
}
