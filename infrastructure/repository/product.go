package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/cortesdelisboa/barbershop-api/infrastructure/database/postgres"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/cortesdelisboa/barbershop-api/pkg/utils"
)

const productsTable = "products"

type ProductRepository interface {
	ListProducts() ([]*domain.Product, error)
	GetProductByID(productID string) (*domain.Product, error)
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(update *domain.UpdateProductRequest) error
	DeleteProduct(productID string) error
	ListProductsBelowStock(threshold int) ([]*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListProducts() ([]*domain.Product, error) {
	return r.listProducts(squirrel.Select("id, name, stock, base_price, created_at, updated_at").
		From(productsTable).
		OrderBy("name ASC"))
}

func (r *productRepository) ListProductsBelowStock(threshold int) ([]*domain.Product, error) {
	return r.listProducts(squirrel.Select("id, name, stock, base_price, created_at, updated_at").
		From(productsTable).
		Where(squirrel.Lt{"stock": threshold}).
		OrderBy("stock ASC"))
}

func (r *productRepository) listProducts(queryBuilder squirrel.SelectBuilder) ([]*domain.Product, error) {
	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Stock,
			&product.BasePrice,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *productRepository) GetProductByID(productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("id, name, stock, base_price, created_at, updated_at").
		From(productsTable).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.Product{}
	err = r.conn.QueryRow(query, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Stock,
		&product.BasePrice,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do produto: %w", err)
	}

	now := time.Now()
	product.ID = id
	product.CreatedAt = now
	product.UpdatedAt = now

	query, args, err := squirrel.
		Insert(productsTable).
		Columns("id", "name", "stock", "base_price", "created_at", "updated_at").
		Values(product.ID, product.Name, product.Stock, product.BasePrice, product.CreatedAt, product.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(update *domain.UpdateProductRequest) error {
	queryBuilder := squirrel.
		Update(productsTable).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": update.ID})

	if update.Name != nil {
		queryBuilder = queryBuilder.Set("name", *update.Name)
	}

	if update.Stock != nil {
		queryBuilder = queryBuilder.Set("stock", *update.Stock)
	}

	if update.BasePrice != nil {
		queryBuilder = queryBuilder.Set("base_price", *update.BasePrice)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	return nil
}

func (r *productRepository) DeleteProduct(productID string) error {
	query, args, err := squirrel.
		Delete(productsTable).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	return nil
}
