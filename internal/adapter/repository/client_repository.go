package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/client"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrClientNotFound  = errors.New("cliente não encontrado")
	ErrAddressNotFound = errors.New("endereço não encontrado")
	ErrClientInUse     = errors.New("cliente possui orçamentos e não pode ser removido")
)

const addressColumns = `
	id, client_id, street, house_number, complement, neighborhood, city, state,
	zip_code, is_primary, created_at`

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{db: db}
}

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO clients (id, name, phone, whatsapp, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Phone, c.WhatsApp, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	var c client.Client
	err := r.db.QueryRow(ctx,
		`SELECT id, name, phone, whatsapp, created_at, updated_at FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.WhatsApp, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	addresses, err := r.ListAddresses(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Addresses = addresses
	return &c, nil
}

// Search implementa client.Repository.Search
func (r *ClientRepository) Search(ctx context.Context, query string, limit, offset int) ([]*client.Client, int, error) {
	where := `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%'`
	args := []interface{}{query}
	if digits := client.OnlyDigits(query); digits != "" {
		args = append(args, digits)
		where += ` OR whatsapp LIKE '%' || $2 || '%' OR phone LIKE '%' || $2 || '%'`
	}
	where += `)`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	n := len(args)
	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT id, name, phone, whatsapp, created_at, updated_at FROM clients `+where+
			fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, n+1, n+2),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.WhatsApp, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		clients = append(clients, &c)
	}
	return clients, total, rows.Err()
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clients SET name = $2, phone = $3, whatsapp = $4, updated_at = $5 WHERE id = $1`,
		c.ID, c.Name, c.Phone, c.WhatsApp, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrClientInUse
		}
		return fmt.Errorf("erro ao remover cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

// AddAddress implementa client.Repository.AddAddress
func (r *ClientRepository) AddAddress(ctx context.Context, a *client.Address) error {
	// o primeiro endereço do cliente vira o principal
	err := r.db.QueryRow(ctx,
		`INSERT INTO client_addresses (`+addressColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			NOT EXISTS (SELECT 1 FROM client_addresses WHERE client_id = $2), $10)
		RETURNING is_primary`,
		a.ID, a.ClientID, a.Street, a.Number, a.Complement, a.Neighborhood, a.City, a.State,
		a.ZipCode, a.CreatedAt).Scan(&a.IsPrimary)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrClientNotFound
		}
		return fmt.Errorf("erro ao criar endereço: %w", err)
	}
	return nil
}

func scanAddress(row pgx.Row) (client.Address, error) {
	var a client.Address
	err := row.Scan(&a.ID, &a.ClientID, &a.Street, &a.Number, &a.Complement, &a.Neighborhood,
		&a.City, &a.State, &a.ZipCode, &a.IsPrimary, &a.CreatedAt)
	return a, err
}

// ListAddresses implementa client.Repository.ListAddresses
func (r *ClientRepository) ListAddresses(ctx context.Context, clientID string) ([]client.Address, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+addressColumns+` FROM client_addresses WHERE client_id = $1
		ORDER BY is_primary DESC, created_at ASC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar endereços: %w", err)
	}
	defer rows.Close()

	addresses := []client.Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler endereço: %w", err)
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

// FindAddress implementa client.Repository.FindAddress
func (r *ClientRepository) FindAddress(ctx context.Context, id string) (*client.Address, error) {
	a, err := scanAddress(r.db.QueryRow(ctx, `SELECT `+addressColumns+` FROM client_addresses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("erro ao buscar endereço: %w", err)
	}
	return &a, nil
}
