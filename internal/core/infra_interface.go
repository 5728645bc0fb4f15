package core

import (
	"context"

	"github.com/divinosdoces/contratos-api/internal/models"
)

// DbClient defines all persistence operations the handlers need. It
// abstracts Postgres/pgvector so higher layers never depend on a specific DB.
type DbClient interface {
	CreateUser(ctx context.Context, user *models.User) (err error)
	GetUserByEmail(ctx context.Context, email string) (user *models.User, err error)

	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	SearchOrders(ctx context.Context, userID string, queryVec []float32, limit int) ([]models.Order, error)

	Close() error
}

// ObjectClient defines interactions with S3 or any object storage, used to
// archive uploaded contract PDFs.
type ObjectClient interface {
	UploadFile(ctx context.Context, bucket, key string, data []byte, contentType string) (url string, err error)
	GetFile(ctx context.Context, bucket, key string) ([]byte, error)
	DeleteFile(ctx context.Context, bucket, key string) error
}
