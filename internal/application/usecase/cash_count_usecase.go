package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pos/internal/application/dto"
	"github.com/tu-usuario/almacen-pos/internal/domain"
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
	"github.com/tu-usuario/almacen-pos/internal/domain/repository"
)

// CashCountUseCase casos de uso de arqueos de caja y su bitácora. El arqueo es
// mutable; cada corrección debería acompañarse de un registro en la bitácora
// (eso lo decide el cliente, aquí solo se persisten ambos).
type CashCountUseCase struct {
	counts repository.CashCountRepository
	logs   repository.CashCountLogRepository
}

// NewCashCountUseCase construye el caso de uso.
func NewCashCountUseCase(counts repository.CashCountRepository, logs repository.CashCountLogRepository) *CashCountUseCase {
	return &CashCountUseCase{counts: counts, logs: logs}
}

// Create registra un arqueo nuevo con id generado y timestamps del servidor.
func (uc *CashCountUseCase) Create(in dto.CreateCashCountRequest) (*dto.CashCountResponse, error) {
	now := time.Now().UTC()
	count := &entity.CashCount{
		ID:        uuid.New().String(),
		Date:      in.Date,
		Notes:     in.Notes,
		Coins:     in.Coins,
		Total:     in.Total,
		CreatedAt: now,
		UpdatedAt: now,
		Comments:  in.Comments,
	}
	if err := uc.counts.Create(count); err != nil {
		return nil, err
	}
	return toCashCountResponse(count), nil
}

// List devuelve todos los arqueos por fecha descendente.
func (uc *CashCountUseCase) List() ([]dto.CashCountResponse, error) {
	list, err := uc.counts.List()
	if err != nil {
		return nil, err
	}
	return toCashCountResponses(list), nil
}

// GetByDay devuelve el arqueo del día indicado, o nil, nil si no existe.
func (uc *CashCountUseCase) GetByDay(day time.Time) (*dto.CashCountResponse, error) {
	count, err := uc.counts.GetByDay(day)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, nil
	}
	return toCashCountResponse(count), nil
}

// History devuelve los arqueos del rango [start, end] por fecha descendente.
func (uc *CashCountUseCase) History(start, end time.Time) ([]dto.CashCountResponse, error) {
	list, err := uc.counts.ListByRange(start, end)
	if err != nil {
		return nil, err
	}
	return toCashCountResponses(list), nil
}

// Update aplica una actualización parcial y estampa updated_at del lado del
// servidor. Claves no permitidas producen domain.ErrInvalidInput; un id
// inexistente, nil, nil.
func (uc *CashCountUseCase) Update(id string, fields map[string]any) (*dto.CashCountResponse, error) {
	if len(fields) == 0 {
		return nil, domain.ErrInvalidInput
	}
	patched := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		patched[k] = v
	}
	patched["updated_at"] = time.Now().UTC()

	count, err := uc.counts.UpdateFields(id, patched)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, nil
	}
	return toCashCountResponse(count), nil
}

// AddLog registra un asiento de bitácora para un arqueo.
func (uc *CashCountUseCase) AddLog(in dto.CreateCashCountLogRequest) (*dto.CashCountLogResponse, error) {
	date := time.Now().UTC()
	if in.Date != nil {
		date = *in.Date
	}
	log := &entity.CashCountLog{
		ID:            uuid.New().String(),
		CashCountID:   in.CashCountID,
		Date:          date,
		Type:          in.Type,
		PreviousTotal: in.PreviousTotal,
		NewTotal:      in.NewTotal,
		PreviousDate:  in.PreviousDate,
		NewDate:       in.NewDate,
		Notes:         in.Notes,
		Coins:         in.Coins,
		Comments:      in.Comments,
	}
	if err := uc.logs.Create(log); err != nil {
		return nil, err
	}
	return toCashCountLogResponse(log), nil
}

// Logs devuelve la bitácora de un arqueo por fecha descendente.
func (uc *CashCountUseCase) Logs(cashCountID string) ([]dto.CashCountLogResponse, error) {
	list, err := uc.logs.ListByCashCount(cashCountID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashCountLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toCashCountLogResponse(l))
	}
	return items, nil
}

func toCashCountResponse(c *entity.CashCount) *dto.CashCountResponse {
	return &dto.CashCountResponse{
		ID:        c.ID,
		Date:      c.Date,
		Notes:     c.Notes,
		Coins:     c.Coins,
		Total:     c.Total,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Comments:  c.Comments,
	}
}

func toCashCountResponses(list []*entity.CashCount) []dto.CashCountResponse {
	items := make([]dto.CashCountResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCashCountResponse(c))
	}
	return items
}

func toCashCountLogResponse(l *entity.CashCountLog) *dto.CashCountLogResponse {
	return &dto.CashCountLogResponse{
		ID:            l.ID,
		CashCountID:   l.CashCountID,
		Date:          l.Date,
		Type:          l.Type,
		PreviousTotal: l.PreviousTotal,
		NewTotal:      l.NewTotal,
		PreviousDate:  l.PreviousDate,
		NewDate:       l.NewDate,
		Notes:         l.Notes,
		Coins:         l.Coins,
		Comments:      l.Comments,
	}
}
