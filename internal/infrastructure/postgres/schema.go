package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen, con las constraints que el
// ledger da por sentadas:
//
//   - products.stock_quantity con CHECK >= 0: la base rechaza cualquier
//     decremento que intente dejar stock negativo, aun si un bug saltara el
//     UPDATE condicional.
//   - sales.product_id RESTRICT: un producto con ventas no se puede borrar.
//   - activity_logs.actor_id RESTRICT: el actor debe existir.
//   - activity_logs.product_id SET NULL: la entrada sobrevive al borrado del
//     producto con la referencia en NULL.
//   - sales.idempotency_key UNIQUE (NULL permitido): deduplica reintentos.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS users (
	    id SERIAL PRIMARY KEY,
	    email TEXT NOT NULL UNIQUE,
	    password TEXT NOT NULL,
	    role TEXT NOT NULL CHECK (role IN ('OWNER','CASHIER')),
	    name TEXT,
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS products (
	    id SERIAL PRIMARY KEY,
	    name TEXT NOT NULL,
	    price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
	    stock_quantity INTEGER NOT NULL CHECK (stock_quantity >= 0),
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_products_created_at ON products (created_at);

	CREATE TABLE IF NOT EXISTS sales (
	    id SERIAL PRIMARY KEY,
	    product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
	    cashier_id INTEGER NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
	    quantity INTEGER NOT NULL CHECK (quantity > 0),
	    unit_price NUMERIC(12,2) NOT NULL,
	    total_price NUMERIC(14,2) NOT NULL,
	    idempotency_key UUID UNIQUE,
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales (created_at);
	CREATE INDEX IF NOT EXISTS idx_sales_cashier_id ON sales (cashier_id);
	CREATE INDEX IF NOT EXISTS idx_sales_product_id ON sales (product_id);

	CREATE TABLE IF NOT EXISTS activity_logs (
	    id SERIAL PRIMARY KEY,
	    actor_id INTEGER NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
	    actor_role TEXT NOT NULL CHECK (actor_role IN ('OWNER','CASHIER')),
	    action TEXT NOT NULL CHECK (action IN ('PRODUCT_ADD','PRODUCT_UPDATE','PRODUCT_DELETE','SALE_RECORD')),
	    product_id INTEGER REFERENCES products(id) ON DELETE SET NULL,
	    details JSONB NOT NULL DEFAULT '{}'::jsonb,
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_activity_logs_created_at ON activity_logs (created_at);
	CREATE INDEX IF NOT EXISTS idx_activity_logs_actor_id ON activity_logs (actor_id);
	CREATE INDEX IF NOT EXISTS idx_activity_logs_product_id ON activity_logs (product_id);
	`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
