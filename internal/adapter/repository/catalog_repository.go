package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/catalog"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/infrastructure/database"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Erros específicos do repositório
var (
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrCategoryNotFound = errors.New("categoria não encontrada")
	ErrGroupNotFound    = errors.New("grupo de opções não encontrado")
	ErrOptionNotFound   = errors.New("opção não encontrada")
)

const productColumns = `
	id, name, image_url, COALESCE(category_id::text, ''), base_price, type, product_type,
	combo_capacity, box_size, visible_in_budget, active, created_at, updated_at`

// CatalogRepository implementa a interface catalog.Repository
type CatalogRepository struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewCatalogRepository cria uma nova instância de CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool, log logger.Logger) catalog.Repository {
	return &CatalogRepository{db: db, logger: log}
}

// CreateCategory implementa catalog.Repository.CreateCategory
func (r *CatalogRepository) CreateCategory(ctx context.Context, c *catalog.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, name, measurement_unit, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.MeasurementUnit, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar categoria: %w", err)
	}
	return nil
}

// ListCategories implementa catalog.Repository.ListCategories
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, measurement_unit, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	var categories []*catalog.Category
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.MeasurementUnit, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// CreateProduct implementa catalog.Repository.CreateProduct
func (r *CatalogRepository) CreateProduct(ctx context.Context, p *catalog.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, image_url, category_id, base_price, type, product_type,
			combo_capacity, box_size, visible_in_budget, active, created_at, updated_at
		) VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Name, p.ImageURL, p.CategoryID, p.BasePrice, p.SaleUnit, p.Mode,
		p.ComboCapacity, p.BoxCapacity, p.VisibleInBudget, p.Active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}
	return nil
}

// UpdateProduct implementa catalog.Repository.UpdateProduct
func (r *CatalogRepository) UpdateProduct(ctx context.Context, p *catalog.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $2, category_id = NULLIF($3, '')::uuid, base_price = $4, type = $5,
			product_type = $6, combo_capacity = $7, box_size = $8, visible_in_budget = $9,
			updated_at = $10
		WHERE id = $1`,
		p.ID, p.Name, p.CategoryID, p.BasePrice, p.SaleUnit, p.Mode,
		p.ComboCapacity, p.BoxCapacity, p.VisibleInBudget, p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.ImageURL, &p.CategoryID, &p.BasePrice, &p.SaleUnit, &p.Mode,
		&p.ComboCapacity, &p.BoxCapacity, &p.VisibleInBudget, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProductByID implementa catalog.Repository.FindProductByID
func (r *CatalogRepository) FindProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return p, nil
}

// ListProducts implementa catalog.Repository.ListProducts
func (r *CatalogRepository) ListProducts(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, error) {
	var (
		conds []string
		args  []interface{}
	)
	if !filter.IncludeInactive {
		conds = append(conds, "active = TRUE")
	}
	if filter.OnlyBudget {
		conds = append(conds, "visible_in_budget = TRUE")
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	var products []*catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// DeactivateProduct implementa catalog.Repository.DeactivateProduct
func (r *CatalogRepository) DeactivateProduct(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao desativar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// UpdateImageURL implementa catalog.Repository.UpdateImageURL
func (r *CatalogRepository) UpdateImageURL(ctx context.Context, id, url string) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET image_url = $2, updated_at = NOW() WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("erro ao atualizar imagem do produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// SetComboProducts implementa catalog.Repository.SetComboProducts
func (r *CatalogRepository) SetComboProducts(ctx context.Context, comboID string, productIDs []string) error {
	return database.Transaction(ctx, r.db, r.logger, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM combo_allowed_products WHERE combo_product_id = $1`, comboID); err != nil {
			return fmt.Errorf("erro ao limpar produtos do combo: %w", err)
		}
		for _, id := range productIDs {
			_, err := tx.Exec(ctx,
				`INSERT INTO combo_allowed_products (combo_product_id, allowed_product_id)
				VALUES ($1, $2) ON CONFLICT DO NOTHING`, comboID, id)
			if err != nil {
				if isForeignKeyViolation(err) {
					return ErrProductNotFound
				}
				return fmt.Errorf("erro ao vincular produto ao combo: %w", err)
			}
		}
		return nil
	})
}

// ListComboProducts implementa catalog.Repository.ListComboProducts
func (r *CatalogRepository) ListComboProducts(ctx context.Context, comboID string) ([]pricing.AllowedProduct, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.name, p.base_price
		FROM combo_allowed_products cap
		JOIN products p ON p.id = cap.allowed_product_id
		WHERE cap.combo_product_id = $1 AND p.active = TRUE
		ORDER BY p.name ASC`, comboID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos do combo: %w", err)
	}
	defer rows.Close()

	var allowed []pricing.AllowedProduct
	for rows.Next() {
		var a pricing.AllowedProduct
		if err := rows.Scan(&a.ProductID, &a.Name, &a.BasePrice); err != nil {
			return nil, fmt.Errorf("erro ao ler produto do combo: %w", err)
		}
		allowed = append(allowed, a)
	}
	return allowed, rows.Err()
}

// ListBuilderGroups implementa catalog.Repository.ListBuilderGroups
func (r *CatalogRepository) ListBuilderGroups(ctx context.Context, productID string) ([]catalog.BuilderGroup, error) {
	rows, err := r.db.Query(ctx,
		`SELECT g.id, g.product_id, g.title, g.selection_limit, g.display_order,
			o.id, o.name, o.extra_cost, o.display_order
		FROM builder_component_groups g
		LEFT JOIN builder_component_options o ON o.group_id = g.id
		WHERE g.product_id = $1
		ORDER BY g.display_order ASC, g.title ASC, o.display_order ASC, o.name ASC`, productID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar grupos: %w", err)
	}
	defer rows.Close()

	var groups []catalog.BuilderGroup
	for rows.Next() {
		var (
			g          catalog.BuilderGroup
			optID      *string
			optName    *string
			optCost    decimal.NullDecimal
			optDisplay *int
		)
		if err := rows.Scan(&g.ID, &g.ProductID, &g.Title, &g.SelectionLimit, &g.DisplayOrder,
			&optID, &optName, &optCost, &optDisplay); err != nil {
			return nil, fmt.Errorf("erro ao ler grupo: %w", err)
		}
		if n := len(groups); n == 0 || groups[n-1].ID != g.ID {
			g.Options = []catalog.BuilderOption{}
			groups = append(groups, g)
		}
		if optID != nil {
			last := &groups[len(groups)-1]
			opt := catalog.BuilderOption{ID: *optID, GroupID: g.ID, ExtraCost: optCost.Decimal}
			if optName != nil {
				opt.Name = *optName
			}
			if optDisplay != nil {
				opt.DisplayOrder = *optDisplay
			}
			last.Options = append(last.Options, opt)
		}
	}
	return groups, rows.Err()
}

// CreateBuilderGroup implementa catalog.Repository.CreateBuilderGroup
func (r *CatalogRepository) CreateBuilderGroup(ctx context.Context, g *catalog.BuilderGroup) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO builder_component_groups (id, product_id, title, selection_limit, display_order)
		VALUES ($1, $2, $3, $4, $5)`,
		g.ID, g.ProductID, g.Title, g.SelectionLimit, g.DisplayOrder)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrProductNotFound
		}
		return fmt.Errorf("erro ao criar grupo: %w", err)
	}
	return nil
}

// DeleteBuilderGroup implementa catalog.Repository.DeleteBuilderGroup
func (r *CatalogRepository) DeleteBuilderGroup(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM builder_component_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover grupo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGroupNotFound
	}
	return nil
}

// CreateBuilderOption implementa catalog.Repository.CreateBuilderOption
func (r *CatalogRepository) CreateBuilderOption(ctx context.Context, o *catalog.BuilderOption) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO builder_component_options (id, group_id, name, extra_cost, display_order)
		VALUES ($1, $2, $3, $4, $5)`,
		o.ID, o.GroupID, o.Name, o.ExtraCost, o.DisplayOrder)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("erro ao criar opção: %w", err)
	}
	return nil
}

// DeleteBuilderOption implementa catalog.Repository.DeleteBuilderOption
func (r *CatalogRepository) DeleteBuilderOption(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM builder_component_options WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover opção: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOptionNotFound
	}
	return nil
}
