package repository

import (
	"time"

	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
)

// CashCountRepository define el puerto de persistencia para los arqueos de caja.
type CashCountRepository interface {
	Create(count *entity.CashCount) error
	// List devuelve todos los arqueos ordenados por fecha descendente.
	List() ([]*entity.CashCount, error)
	// GetByDay devuelve el arqueo cuya fecha cae dentro del día civil (UTC)
	// indicado, o nil, nil si no hay arqueo ese día.
	GetByDay(day time.Time) (*entity.CashCount, error)
	// ListByRange devuelve los arqueos con fecha dentro de [start, end],
	// ordenados por fecha descendente.
	ListByRange(start, end time.Time) ([]*entity.CashCount, error)
	// UpdateFields aplica una actualización parcial bajo la misma disciplina de
	// lista permitida que ProductRepository.UpdateFields.
	UpdateFields(id string, fields map[string]any) (*entity.CashCount, error)
}

// CashCountLogRepository define el puerto para la bitácora de arqueos.
// Solo inserta y lista: los registros nunca se mutan.
type CashCountLogRepository interface {
	Create(log *entity.CashCountLog) error
	ListByCashCount(cashCountID string) ([]*entity.CashCountLog, error)
}
