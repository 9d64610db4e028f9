package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dcherreria/taller-api/internal/domain"
	"github.com/dcherreria/taller-api/internal/domain/entity"
	"github.com/dcherreria/taller-api/internal/domain/repository"
)

var _ repository.PresupuestoRepository = (*PresupuestoRepo)(nil)

// PresupuestoRepo implementación de PresupuestoRepository sobre la tabla
// presupuestos (items como jsonb). Usable con pool o tx (Querier).
type PresupuestoRepo struct {
	q Querier
}

// NewPresupuestoRepository construye el adaptador.
func NewPresupuestoRepository(q Querier) *PresupuestoRepo {
	return &PresupuestoRepo{q: q}
}

// Create persiste un presupuesto nuevo con todos sus campos.
func (r *PresupuestoRepo) Create(ctx context.Context, p *entity.Presupuesto) error {
	itemsJSON, err := json.Marshal(p.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO presupuestos (id, cliente, items, mano_obra, anticipo, total_final, saldo, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(ctx, query,
		p.ID, p.Cliente, itemsJSON, p.ManoObra, p.Anticipo, p.TotalFinal, p.Saldo, string(p.Status), p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert presupuesto: %w", err)
	}
	return nil
}

// GetByID obtiene un presupuesto por ID. Devuelve (nil, nil) si no existe.
func (r *PresupuestoRepo) GetByID(ctx context.Context, id string) (*entity.Presupuesto, error) {
	query := `
		SELECT id, cliente, items, mano_obra, anticipo, total_final, saldo, status, created_at
		FROM presupuestos WHERE id = $1`
	p, err := scanPresupuesto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get presupuesto: %w", err)
	}
	return p, nil
}

// ListAll lista la cartera completa ordenada por fecha de creación descendente.
func (r *PresupuestoRepo) ListAll(ctx context.Context) ([]*entity.Presupuesto, error) {
	query := `
		SELECT id, cliente, items, mano_obra, anticipo, total_final, saldo, status, created_at
		FROM presupuestos ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list presupuestos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Presupuesto
	for rows.Next() {
		p, err := scanPresupuesto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan presupuesto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdatePago escribe anticipo, saldo y status en un único UPDATE parcial.
// Los tres campos derivados viajan juntos para mantener los invariantes.
func (r *PresupuestoRepo) UpdatePago(ctx context.Context, id string, anticipo, saldo decimal.Decimal, status entity.Status) error {
	query := `
		UPDATE presupuestos SET anticipo = $2, saldo = $3, status = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, anticipo, saldo, string(status))
	if err != nil {
		return fmt.Errorf("update pago: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el presupuesto de forma definitiva.
func (r *PresupuestoRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM presupuestos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete presupuesto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanPresupuesto lee una fila; items llega como jsonb y se decodifica con la
// coerción leniente de entity.Item (precios no numéricos valen 0).
func scanPresupuesto(row pgx.Row) (*entity.Presupuesto, error) {
	var p entity.Presupuesto
	var itemsJSON []byte
	var status string
	if err := row.Scan(
		&p.ID, &p.Cliente, &itemsJSON, &p.ManoObra, &p.Anticipo, &p.TotalFinal, &p.Saldo, &status, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.Status = entity.Status(status)
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &p.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	return &p, nil
}
