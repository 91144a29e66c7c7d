package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/cortesdelisboa/barbershop-api/infrastructure/database/postgres"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/cortesdelisboa/barbershop-api/pkg/utils"
)

const serviceRecordsTable = "service_records"

type ServiceRecordRepository interface {
	// ListServiceRecords lista os serviços registrados; barberID vazio lista todos
	ListServiceRecords(barberID string) ([]*domain.ServiceRecord, error)
	CreateServiceRecordWithAccrual(record *domain.ServiceRecord, commission float64) (*domain.ServiceRecord, error)
}

type serviceRecordRepository struct {
	conn *postgres.Connection
}

func NewServiceRecordRepository(conn *postgres.Connection) ServiceRecordRepository {
	return &serviceRecordRepository{
		conn: conn,
	}
}

func (r *serviceRecordRepository) ListServiceRecords(barberID string) ([]*domain.ServiceRecord, error) {
	queryBuilder := squirrel.
		Select("id, barber_id, name, price, timestamp, created_at").
		From(serviceRecordsTable).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	if barberID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"barber_id": barberID})
	}

	query, args, err := queryBuilder.ToSql()
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

	records := make([]*domain.ServiceRecord, 0)
	for rows.Next() {
		record := &domain.ServiceRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.BarberID,
			&record.Name,
			&record.Price,
			&record.Timestamp,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// CreateServiceRecordWithAccrual persiste o serviço e acumula a comissão no
// saldo do barbeiro dentro da mesma transação; falha em qualquer etapa
// desfaz as duas, para que nenhum registro fique sem saldo correspondente.
func (r *serviceRecordRepository) CreateServiceRecordWithAccrual(record *domain.ServiceRecord, commission float64) (*domain.ServiceRecord, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do serviço: %w", err)
	}

	record.ID = id
	record.CreatedAt = time.Now()

	insertQuery, insertArgs, err := squirrel.
		Insert(serviceRecordsTable).
		Columns("id", "barber_id", "name", "price", "timestamp", "created_at").
		Values(record.ID, record.BarberID, record.Name, record.Price, record.Timestamp, record.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	updateQuery, updateArgs, err := squirrel.
		Update(barbersTable).
		Set("services", squirrel.Expr("services + 1")).
		Set("balance", squirrel.Expr("balance + ?", commission)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": record.BarberID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir serviço: %w", err)
		}
		if _, err := tx.Exec(updateQuery, updateArgs...); err != nil {
			return fmt.Errorf("erro ao acumular comissão do barbeiro: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
