package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/divinosdoces/contratos-api/internal/config"
	"github.com/divinosdoces/contratos-api/internal/core"
	"github.com/divinosdoces/contratos-api/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(ctx context.Context, cfg *config.Config) (core.DbClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database client configuration is nil")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Sensible pool settings for an API service; adjust as needed.
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := EnsureBootstrapped(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (c *DatabaseClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *DatabaseClient) CreateUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	const q = `
		INSERT INTO users (id, first_name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()), COALESCE($6, now()))
	`
	_, err := c.db.ExecContext(ctx, q,
		user.ID, user.FirstName, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	return err
}

func (c *DatabaseClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
		SELECT id, first_name, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1
	`
	var u models.User
	err := c.db.QueryRowContext(ctx, q, email).Scan(
		&u.ID, &u.FirstName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *DatabaseClient) CreateOrder(ctx context.Context, order *models.Order) error {
	if order == nil {
		return errors.New("nil order")
	}
	const q = `
		INSERT INTO orders
			(id, user_id, client_name, client_cpf, client_phone, client_email,
			 event_date, event_location, items_json, order_total,
			 payment_date, payment_method, responsible, referral_source,
			 source_url, embedding, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			 COALESCE($17, now()), COALESCE($18, now()))
	`
	var vec any
	if len(order.Embedding) > 0 {
		vec = pgvector.NewVector(order.Embedding)
	}
	_, err := c.db.ExecContext(ctx, q,
		order.ID, order.UserID, order.ClientName, order.ClientCPF, order.ClientPhone, order.ClientEmail,
		order.EventDate, order.EventLocation, order.ItemsJSON, order.OrderTotal,
		order.PaymentDate, order.PaymentMethod, order.Responsible, order.ReferralSource,
		order.SourceURL, vec, order.CreatedAt, order.UpdatedAt)
	return err
}

func (c *DatabaseClient) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	const q = `
		SELECT id, user_id, client_name, client_cpf, client_phone, client_email,
		       event_date, event_location, items_json, order_total,
		       payment_date, payment_method, responsible, referral_source,
		       source_url, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	var o models.Order
	err := c.db.QueryRowContext(ctx, q, id).Scan(
		&o.ID, &o.UserID, &o.ClientName, &o.ClientCPF, &o.ClientPhone, &o.ClientEmail,
		&o.EventDate, &o.EventLocation, &o.ItemsJSON, &o.OrderTotal,
		&o.PaymentDate, &o.PaymentMethod, &o.Responsible, &o.ReferralSource,
		&o.SourceURL, &o.CreatedAt, &o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *DatabaseClient) ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	const q = `
		SELECT id, user_id, client_name, client_cpf, client_phone, client_email,
		       event_date, event_location, items_json, order_total,
		       payment_date, payment_method, responsible, referral_source,
		       source_url, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := c.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.ClientName, &o.ClientCPF, &o.ClientPhone, &o.ClientEmail,
			&o.EventDate, &o.EventLocation, &o.ItemsJSON, &o.OrderTotal,
			&o.PaymentDate, &o.PaymentMethod, &o.Responsible, &o.ReferralSource,
			&o.SourceURL, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// SearchOrders finds the user's orders nearest to a query embedding.
func (c *DatabaseClient) SearchOrders(ctx context.Context, userID string, queryVec []float32, limit int) ([]models.Order, error) {
	const q = `
		SELECT id, user_id, client_name, client_cpf, client_phone, client_email,
		       event_date, event_location, items_json, order_total,
		       payment_date, payment_method, responsible, referral_source,
		       source_url, created_at, updated_at
		FROM orders
		WHERE user_id = $1 AND embedding IS NOT NULL
		ORDER BY embedding <-> $2
		LIMIT $3
	`
	vec := pgvector.NewVector(queryVec)
	rows, err := c.db.QueryContext(ctx, q, userID, vec, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.ClientName, &o.ClientCPF, &o.ClientPhone, &o.ClientEmail,
			&o.EventDate, &o.EventLocation, &o.ItemsJSON, &o.OrderTotal,
			&o.PaymentDate, &o.PaymentMethod, &o.Responsible, &o.ReferralSource,
			&o.SourceURL, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

var _ core.DbClient = (*DatabaseClient)(nil)
