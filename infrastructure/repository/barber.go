package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/cortesdelisboa/barbershop-api/infrastructure/database/postgres"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
)

const barbersTable = "barbers"

// BarberRepository é somente leitura do ponto de vista da API: os saldos são
// alimentados pelo registro de serviços e pelos pagamentos da gerência.
type BarberRepository interface {
	ListBarbers() ([]*domain.Barber, error)
	GetBarberByID(barberID string) (*domain.Barber, error)
}

type barberRepository struct {
	conn *postgres.Connection
}

func NewBarberRepository(conn *postgres.Connection) BarberRepository {
	return &barberRepository{
		conn: conn,
	}
}

func (r *barberRepository) ListBarbers() ([]*domain.Barber, error) {
	query, args, err := squirrel.
		Select("id, name, services, rating, balance, created_at, updated_at").
		From(barbersTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		barber := &domain.Barber{}
		if err := rows.Scan(
			&barber.ID,
			&barber.Name,
			&barber.Services,
			&barber.Rating,
			&barber.Balance,
			&barber.CreatedAt,
			&barber.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear barbeiro: %w", err)
		}
		barbers = append(barbers, barber)
	}

	return barbers, rows.Err()
}

func (r *barberRepository) GetBarberByID(barberID string) (*domain.Barber, error) {
	query, args, err := squirrel.
		Select("id, name, services, rating, balance, created_at, updated_at").
		From(barbersTable).
		Where(squirrel.Eq{"id": barberID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	barber := &domain.Barber{}
	err = r.conn.QueryRow(query, args...).Scan(
		&barber.ID,
		&barber.Name,
		&barber.Services,
		&barber.Rating,
		&barber.Balance,
		&barber.CreatedAt,
		&barber.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar barbeiro: %w", err)
	}

	return barber, nil
}
