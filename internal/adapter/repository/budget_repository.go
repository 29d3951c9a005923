package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/budget"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/infrastructure/database"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrBudgetNotFound     = errors.New("orçamento não encontrado")
	ErrOrderNotFound      = errors.New("pedido não encontrado")
	ErrOrderAlreadyExists = errors.New("orçamento já possui pedido")
)

const budgetColumns = `
	id, client_id, address_id, status, delivery_fee, discount, subtotal, total_amount,
	notes, COALESCE(created_by::text, ''), created_at, updated_at`

// BudgetRepository implementa a interface budget.Repository
type BudgetRepository struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewBudgetRepository cria uma nova instância de BudgetRepository
func NewBudgetRepository(db *pgxpool.Pool, log logger.Logger) budget.Repository {
	return &BudgetRepository{db: db, logger: log}
}

// Create implementa budget.Repository.Create
func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	return database.Transaction(ctx, r.db, r.logger, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO budgets (
				id, client_id, address_id, status, delivery_fee, discount, subtotal, total_amount,
				notes, created_by, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, '')::uuid, $11, $12)`,
			b.ID, b.ClientID, b.AddressID, b.Status, b.DeliveryFee, b.Discount, b.Subtotal,
			b.TotalAmount, b.Notes, b.CreatedBy, b.CreatedAt, b.UpdatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrClientNotFound
			}
			return fmt.Errorf("erro ao criar orçamento: %w", err)
		}

		for i := range b.Items {
			if err := insertItem(ctx, tx, &b.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertItem(ctx context.Context, tx pgx.Tx, it *budget.Item) error {
	// Converter atributos para JSON
	attrs, err := json.Marshal(it.Attributes)
	if err != nil {
		return fmt.Errorf("erro ao converter atributos para JSON: %w", err)
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO budget_items (
			id, budget_id, product_id, product_name, quantity, unit_price, total_price,
			attributes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		it.ID, it.BudgetID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice,
		it.TotalPrice, attrs, it.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrProductNotFound
		}
		return fmt.Errorf("erro ao gravar item do orçamento: %w", err)
	}
	return nil
}

func scanBudget(row pgx.Row) (*budget.Budget, error) {
	var b budget.Budget
	err := row.Scan(&b.ID, &b.ClientID, &b.AddressID, &b.Status, &b.DeliveryFee, &b.Discount,
		&b.Subtotal, &b.TotalAmount, &b.Notes, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByID implementa budget.Repository.FindByID
func (r *BudgetRepository) FindByID(ctx context.Context, id string) (*budget.Budget, error) {
	b, err := scanBudget(r.db.QueryRow(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("erro ao buscar orçamento: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, budget_id, product_id, product_name, quantity, unit_price, total_price,
			attributes, created_at
		FROM budget_items WHERE budget_id = $1 ORDER BY created_at ASC, id ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens do orçamento: %w", err)
	}
	defer rows.Close()

	b.Items = []budget.Item{}
	for rows.Next() {
		var (
			it    budget.Item
			attrs []byte
		)
		if err := rows.Scan(&it.ID, &it.BudgetID, &it.ProductID, &it.ProductName, &it.Quantity,
			&it.UnitPrice, &it.TotalPrice, &attrs, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler item do orçamento: %w", err)
		}
		if err := json.Unmarshal(attrs, &it.Attributes); err != nil {
			return nil, fmt.Errorf("erro ao converter atributos do item: %w", err)
		}
		b.Items = append(b.Items, it)
	}
	return b, rows.Err()
}

// List implementa budget.Repository.List
func (r *BudgetRepository) List(ctx context.Context, filter budget.Filter, limit, offset int) ([]*budget.Budget, int, error) {
	where := `WHERE ($1 = '' OR status = $1) AND ($2 = '' OR client_id::text = $2)`

	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM budgets `+where,
		string(filter.Status), filter.ClientID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao contar orçamentos: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+budgetColumns+` FROM budgets `+where+`
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		string(filter.Status), filter.ClientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar orçamentos: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao ler orçamento: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, total, rows.Err()
}

func execHeader(ctx context.Context, tx pgx.Tx, b *budget.Budget) error {
	tag, err := tx.Exec(ctx,
		`UPDATE budgets SET
			status = $2, delivery_fee = $3, discount = $4, subtotal = $5, total_amount = $6,
			notes = $7, updated_at = $8
		WHERE id = $1`,
		b.ID, b.Status, b.DeliveryFee, b.Discount, b.Subtotal, b.TotalAmount, b.Notes, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar orçamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// UpdateHeader implementa budget.Repository.UpdateHeader
func (r *BudgetRepository) UpdateHeader(ctx context.Context, b *budget.Budget) error {
	return database.Transaction(ctx, r.db, r.logger, func(tx pgx.Tx) error {
		return execHeader(ctx, tx, b)
	})
}

// UpdateItem implementa budget.Repository.UpdateItem
func (r *BudgetRepository) UpdateItem(ctx context.Context, b *budget.Budget, item *budget.Item) error {
	attrs, err := json.Marshal(item.Attributes)
	if err != nil {
		return fmt.Errorf("erro ao converter atributos para JSON: %w", err)
	}
	return database.Transaction(ctx, r.db, r.logger, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE budget_items SET quantity = $3, total_price = $4, attributes = $5
			WHERE id = $1 AND budget_id = $2`,
			item.ID, b.ID, item.Quantity, item.TotalPrice, attrs)
		if err != nil {
			return fmt.Errorf("erro ao atualizar item do orçamento: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return budget.ErrItemNotFound
		}
		return execHeader(ctx, tx, b)
	})
}

// DeleteItem implementa budget.Repository.DeleteItem
func (r *BudgetRepository) DeleteItem(ctx context.Context, b *budget.Budget, itemID string) error {
	return database.Transaction(ctx, r.db, r.logger, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM budget_items WHERE id = $1 AND budget_id = $2`, itemID, b.ID)
		if err != nil {
			return fmt.Errorf("erro ao remover item do orçamento: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return budget.ErrItemNotFound
		}
		return execHeader(ctx, tx, b)
	})
}

// CreateOrder implementa budget.Repository.CreateOrder
func (r *BudgetRepository) CreateOrder(ctx context.Context, o *budget.Order) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO orders (id, budget_id, client_id, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, o.BudgetID, o.ClientID, o.TotalAmount, o.Status, o.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrOrderAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("erro ao criar pedido: %w", err)
	}
	return nil
}

// FindOrderByBudget implementa budget.Repository.FindOrderByBudget
func (r *BudgetRepository) FindOrderByBudget(ctx context.Context, budgetID string) (*budget.Order, error) {
	var o budget.Order
	err := r.db.QueryRow(ctx,
		`SELECT id, budget_id, client_id, total_amount, status, created_at
		FROM orders WHERE budget_id = $1`, budgetID).
		Scan(&o.ID, &o.BudgetID, &o.ClientID, &o.TotalAmount, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}
	return &o, nil
}
