package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rfm-dashboard/internal/domain"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/internal/domain/repository"
)

var (
	_ repository.CustomerSource   = (*CustomerRepo)(nil)
	_ repository.CustomerImporter = (*CustomerRepo)(nil)
)

const customersTable = "rfm_customers"

// CustomerRepo lee (y, desde la CLI, importa) el dataset segmentado en PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Name identifica la fuente.
func (r *CustomerRepo) Name() string { return "postgres:" + customersTable }

// Load devuelve todas las filas en el orden del archivo original (row_no).
func (r *CustomerRepo) Load(ctx context.Context) ([]entity.Customer, error) {
	const query = `
	SELECT customer_id, recency, frequency, monetary, cluster
	FROM rfm_customers
	ORDER BY row_no`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: customers.Load: %v", domain.ErrDataSource, err)
	}
	defer rows.Close()

	var customers []entity.Customer
	for rows.Next() {
		var (
			id                          string
			recency, frequency, cluster int
			monetary                    decimal.Decimal
		)
		if err := rows.Scan(&id, &recency, &frequency, &monetary, &cluster); err != nil {
			return nil, fmt.Errorf("%w: customers.Load scan: %v", domain.ErrDataSource, err)
		}
		customers = append(customers, entity.NewCustomer(id, recency, frequency, monetary, cluster))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: customers.Load: %v", domain.ErrDataSource, err)
	}
	return customers, nil
}

// Import reemplaza el contenido de la tabla por el snapshot dado (TRUNCATE + COPY en una transacción).
func (r *CustomerRepo) Import(ctx context.Context, customers []entity.Customer) (int64, error) {
	rows := make([][]any, 0, len(customers))
	for i, c := range customers {
		rows = append(rows, []any{i + 1, c.CustomerID, c.Recency, c.Frequency, c.Monetary, c.Cluster})
	}

	var n int64
	err := NewTxRunner(r.pool).Run(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+customersTable); err != nil {
			return fmt.Errorf("customers.Import: truncate: %w", err)
		}
		copied, err := tx.CopyFrom(ctx,
			pgx.Identifier{customersTable},
			[]string{"row_no", "customer_id", "recency", "frequency", "monetary", "cluster"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("customers.Import: CustomerID duplicado: %w", err)
			}
			return fmt.Errorf("customers.Import: copy: %w", err)
		}
		n = copied
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
