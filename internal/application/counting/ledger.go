package counting

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// CountLedger acumula observaciones de cantidad por clave compuesta
// (código, corredor, coluna, andar, tipo). Una observación para una clave
// existente suma a la cantidad guardada en lugar de reemplazarla.
//
// Todas las escrituras pasan por mu (único escritor) y por una transacción del
// almacenamiento, de modo que dos Record concurrentes para la misma clave no
// pierden incrementos.
type CountLedger struct {
	mu     sync.Mutex
	tx     LedgerTxRunner
	counts repository.CountRepository
	log    *logger.Logger
	now    func() time.Time
}

// NewCountLedger construye el libro de contagens.
func NewCountLedger(tx LedgerTxRunner, counts repository.CountRepository, log *logger.Logger) *CountLedger {
	return &CountLedger{
		tx:     tx,
		counts: counts,
		log:    log,
		now:    time.Now,
	}
}

// Record normaliza la clave y hace el merge-upsert: si existe una entrada con la
// misma clave suma entry.Quantity a la existente (la descripción guardada se
// conserva); si no, inserta una nueva. Devuelve la entrada resultante.
func (l *CountLedger) Record(ctx context.Context, entry entity.CountEntry) (*entity.CountEntry, error) {
	key := entry.Key.Normalize()
	desc := entity.CountDescription{
		SystemCode: strings.ToUpper(strings.TrimSpace(entry.Description.SystemCode)),
		Name:       strings.ToUpper(strings.TrimSpace(entry.Description.Name)),
		Packaging:  strings.ToUpper(strings.TrimSpace(entry.Description.Packaging)),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var result *entity.CountEntry
	err := l.tx.RunLedger(ctx, func(counts repository.CountRepository) error {
		now := l.now()
		existing, err := counts.GetByKeyForUpdate(ctx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Quantity = existing.Quantity.Add(entry.Quantity)
			existing.UpdatedAt = now
			if err := counts.UpdateQuantity(ctx, existing.ID, existing.Quantity, now); err != nil {
				return err
			}
			result = existing
			return nil
		}
		created := &entity.CountEntry{
			Key:         key,
			Quantity:    entry.Quantity,
			Description: desc,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := counts.Create(ctx, created); err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		l.log.Error().Err(err).Str("codigo", key.Code).Msg("registrar contagem")
		return nil, domain.StorageError("registrar contagem", err)
	}
	l.log.Debug().
		Int64("id", result.ID).
		Str("codigo", key.Code).
		Str("corredor", key.Corridor).
		Str("quantidade", result.Quantity.String()).
		Msg("contagem registrada")
	return result, nil
}

// ExportAll devuelve todas las entradas en orden de almacenamiento. No modifica nada.
func (l *CountLedger) ExportAll(ctx context.Context) ([]*entity.CountEntry, error) {
	list, err := l.counts.List(ctx)
	if err != nil {
		return nil, domain.StorageError("listar contagens", err)
	}
	return list, nil
}

// Reset borra todas las contagens (acción administrativa "limpar banco").
func (l *CountLedger) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.counts.DeleteAll(ctx); err != nil {
		return domain.StorageError("limpar contagens", err)
	}
	l.log.Info().Msg("contagens removidas")
	return nil
}
