package repository

import (
	"context"
	"time"

	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
)

type QuotaRepository struct{}

func NewQuotaRepository() *QuotaRepository {
	return &QuotaRepository{}
}

// Single conditional statement so two concurrent requests can never both
// slip under the cap. No row comes back when the cap would be exceeded.
const consumeQuotaSQL = `
INSERT INTO generation_quotas (day, used)
VALUES ($1, $2)
ON CONFLICT (day) DO UPDATE
SET used = generation_quotas.used + EXCLUDED.used
WHERE generation_quotas.used + EXCLUDED.used <= $3
RETURNING used
`

func (r *QuotaRepository) TryConsume(ctx context.Context, tx db.DBTX, day time.Time, n, cap int) (int, bool, error) {
	if n > cap {
		return 0, false, nil
	}

	var used int
	err := tx.QueryRow(ctx, consumeQuotaSQL, day, n, cap).Scan(&used)
	if err != nil {
		if db.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to consume generation quota", err)
	}
	return used, true, nil
}
