package counting

import (
	"context"
	"regexp"
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

var accessCodePattern = regexp.MustCompile(`^\d{8,14}$`)

// RecordCountInput datos de una contagem tal como los escribe el operador.
type RecordCountInput struct {
	Code      string
	Quantity  string
	Corridor  string
	Column    string
	Floor     string
	CountType string
}

// RecordCountResult entrada acumulada y producto contado (para mostrar el último item contado).
type RecordCountResult struct {
	Entry   *entity.CountEntry
	Product *entity.Product
}

// RecordCountUseCase valida la contagem, completa la descripción con el producto del
// lote y la registra en el CountLedger.
type RecordCountUseCase struct {
	ledger   *CountLedger
	resolver *ProductResolver
}

// NewRecordCountUseCase construye el caso de uso.
func NewRecordCountUseCase(ledger *CountLedger, resolver *ProductResolver) *RecordCountUseCase {
	return &RecordCountUseCase{ledger: ledger, resolver: resolver}
}

// Validate aplica las reglas de la pantalla de contagem. Los errores no tocan el almacenamiento.
func (in RecordCountInput) Validate() error {
	if strings.Join(strings.Fields(in.Quantity), "") == "" {
		return domain.NewValidationError("quantidade", "O campo Quantidade não pode ser vazio.")
	}
	if !accessCodePattern.MatchString(strings.TrimSpace(in.Code)) {
		return domain.NewValidationError("codigo", "Selecione um produto da lista antes de salvar a contagem!")
	}
	return nil
}

// Record valida y registra la contagem.
func (uc *RecordCountUseCase) Record(ctx context.Context, in RecordCountInput) (*RecordCountResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(in.Code)
	product, err := uc.resolver.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	entry := entity.CountEntry{
		Key: entity.CountKey{
			Code:      code,
			Corridor:  in.Corridor,
			Column:    in.Column,
			Floor:     in.Floor,
			CountType: in.CountType,
		},
		Quantity: ParseQuantity(in.Quantity),
	}
	if product != nil {
		entry.Description = entity.CountDescription{
			SystemCode: product.ProductID,
			Name:       product.FullDescription,
			Packaging:  product.Packaging(),
		}
	}

	saved, err := uc.ledger.Record(ctx, entry)
	if err != nil {
		return nil, err
	}
	return &RecordCountResult{Entry: saved, Product: product}, nil
}
