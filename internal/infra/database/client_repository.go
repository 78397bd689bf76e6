package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xavierca1/ligue-leads/internal/entity"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, email, lead_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(ctx, query,
		client.ID,
		client.Email,
		client.LeadID,
		client.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}

		log.Printf("client insert failed: %v", err)
		return err
	}

	return nil
}

func (r *ClientRepository) EmailExists(ctx context.Context, email, excludingLeadID string) (bool, error) {
	var exists bool
	var err error

	if excludingLeadID == "" {
		query := `SELECT EXISTS (SELECT 1 FROM clients WHERE email = $1)`
		err = r.DB.QueryRowContext(ctx, query, email).Scan(&exists)
	} else {
		query := `SELECT EXISTS (SELECT 1 FROM clients WHERE email = $1 AND lead_id <> $2)`
		err = r.DB.QueryRowContext(ctx, query, email, excludingLeadID).Scan(&exists)
	}

	return exists, err
}
